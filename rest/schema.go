package rest

// createArticleRequest is the body for POST /api/articles. Everything but
// url is optional; a missing title falls back to the URL and may be
// replaced by extraction.
type createArticleRequest struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	IsRead      bool     `json:"isRead"`
	Archived    bool     `json:"archived"`
	Tags        []string `json:"tags"`
}

// updateArticleRequest is the body for PATCH /api/articles/:id. Absent
// fields are left untouched; id and createdAt are not accepted at all.
type updateArticleRequest struct {
	URL         *string   `json:"url"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	IsRead      *bool     `json:"isRead"`
	Archived    *bool     `json:"archived"`
	Tags        *[]string `json:"tags"`
}

// importArticle mirrors the backup file format. Unknown fields in the
// backup are ignored by decoding; id and createdAt present in old backups
// are deliberately not mapped.
type importArticle struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	IsRead      bool     `json:"isRead"`
	Archived    bool     `json:"archived"`
	Tags        []string `json:"tags"`
}

type importRequest struct {
	Articles []importArticle `json:"articles"`
}

type importResponse struct {
	Count int `json:"count"`
}

type extractRequest struct {
	URL string `json:"url"`
}

type extractResponse struct {
	OK          bool   `json:"ok"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}
