package pocket_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pocket/domain"
	"pocket/utils/logger"
)

const getArticleQuery = `
	SELECT ` + articleColumns + `
	FROM articles
	WHERE id = $1
`

// GetArticle retrieves one article by id. Returns nil without error when
// the id does not exist; absence is a recoverable outcome for callers.
func (r *Repository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, getArticleQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.SafeInfoContext(ctx, "article not found in database", "id", id)
			return nil, nil
		}
		err = fmt.Errorf("get article by id: %w", err)
		logger.SafeErrorContext(ctx, "failed to get article", "id", id, "error", err)
		return nil, err
	}

	return article, nil
}
