package pocket_db

import (
	"context"
	"errors"
	"fmt"

	"pocket/domain"
	"pocket/utils/logger"
)

const deleteArticleQuery = `
	DELETE FROM articles
	WHERE id = $1
`

// DeleteArticle removes an article permanently; there is no tombstone.
// Deleting an absent id surfaces domain.ErrArticleNotFound: the shared
// store tells callers when the row was already gone.
func (r *Repository) DeleteArticle(ctx context.Context, id int64) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, deleteArticleQuery, id)
	if err != nil {
		err = fmt.Errorf("delete article: %w", err)
		logger.SafeErrorContext(ctx, "failed to delete article", "id", id, "error", err)
		return err
	}

	if tag.RowsAffected() == 0 {
		logger.SafeInfoContext(ctx, "article to delete not found", "id", id)
		return domain.ErrArticleNotFound
	}

	logger.SafeInfoContext(ctx, "article deleted", "id", id)
	return nil
}
