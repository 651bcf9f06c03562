// Package delete_article_usecase removes an article permanently.
package delete_article_usecase

import (
	"context"
	"fmt"

	"pocket/domain"
	"pocket/port/article_store_port"
	"pocket/utils/errors"
)

type DeleteArticleUsecase struct {
	store article_store_port.ArticleStorePort
}

func NewDeleteArticleUsecase(store article_store_port.ArticleStorePort) *DeleteArticleUsecase {
	return &DeleteArticleUsecase{store: store}
}

// Execute deletes the article. Whether an absent id is an error depends on
// the active backend: the shared store reports not-found, the local store
// treats the delete as already done.
func (u *DeleteArticleUsecase) Execute(ctx context.Context, id int64) error {
	if err := u.store.DeleteArticle(ctx, id); err != nil {
		if err == domain.ErrArticleNotFound {
			return errors.NotFoundError(fmt.Sprintf("article %d not found", id), err, map[string]interface{}{
				"id": id,
			})
		}
		return errors.DatabaseError("failed to delete article", err, map[string]interface{}{
			"id": id,
		})
	}
	return nil
}
