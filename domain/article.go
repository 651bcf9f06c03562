package domain

import "time"

// Article is the persistent read-it-later record. ID and CreatedAt are
// assigned by the active store backend and never change afterwards.
type Article struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	IsRead      bool      `json:"isRead"`
	Archived    bool      `json:"archived"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertArticle carries the caller-supplied fields for a create operation.
// ID and CreatedAt are intentionally absent: the store assigns them.
type InsertArticle struct {
	URL         string
	Title       string
	Description *string
	Content     *string
	IsRead      bool
	Archived    bool
	Tags        []string
}

// ArticleUpdate is a partial update payload. Only non-nil fields are merged
// into the stored record.
type ArticleUpdate struct {
	URL         *string
	Title       *string
	Description *string
	Content     *string
	IsRead      *bool
	Archived    *bool
	Tags        *[]string
}

// IsEmpty reports whether the update carries no fields at all.
func (u ArticleUpdate) IsEmpty() bool {
	return u.URL == nil && u.Title == nil && u.Description == nil &&
		u.Content == nil && u.IsRead == nil && u.Archived == nil && u.Tags == nil
}

// ExtractedContent is the transient result of readable-content extraction.
// It is never persisted on its own; it only fills gaps in a submitted article.
type ExtractedContent struct {
	Title       string
	Description string
	Content     string
	SiteName    string
}
