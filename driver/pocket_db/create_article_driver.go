package pocket_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pocket/domain"
	"pocket/utils/logger"
)

const createArticleQuery = `
	INSERT INTO articles (url, title, description, content, is_read, archived, tags)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + articleColumns + `
`

// CreateArticle inserts a new article. id and created_at come back from the
// database; caller-supplied values for them never reach this driver.
func (r *Repository) CreateArticle(ctx context.Context, input domain.InsertArticle) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	cleanURL := strings.TrimSpace(input.URL)
	if cleanURL == "" {
		return nil, errors.New("article url cannot be empty")
	}
	cleanTitle := strings.TrimSpace(input.Title)
	if cleanTitle == "" {
		return nil, errors.New("article title cannot be empty")
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, createArticleQuery,
		cleanURL,
		cleanTitle,
		input.Description,
		input.Content,
		input.IsRead,
		input.Archived,
		tags,
	))
	if err != nil {
		err = fmt.Errorf("create article: %w", err)
		logger.SafeErrorContext(ctx, "failed to create article", "url", cleanURL, "error", err)
		return nil, err
	}

	logger.SafeInfoContext(ctx, "article created", "id", article.ID, "url", article.URL)
	return article, nil
}
