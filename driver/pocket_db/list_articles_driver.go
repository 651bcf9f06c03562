package pocket_db

import (
	"context"
	"errors"
	"fmt"

	"pocket/domain"
	"pocket/utils/logger"
)

// Newest first; id breaks created_at ties so the order is a stable total
// order even when timestamps collide.
const listArticlesQuery = `
	SELECT ` + articleColumns + `
	FROM articles
	ORDER BY created_at DESC, id DESC
`

// ListArticles returns every stored article, newest first.
func (r *Repository) ListArticles(ctx context.Context) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, listArticlesQuery)
	if err != nil {
		err = fmt.Errorf("list articles: %w", err)
		logger.SafeErrorContext(ctx, "failed to list articles", "error", err)
		return nil, err
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}
