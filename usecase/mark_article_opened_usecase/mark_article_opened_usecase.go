// Package mark_article_opened_usecase records that an article was opened
// for reading. The transition is one-way and idempotent: opening an
// already-read article changes nothing.
package mark_article_opened_usecase

import (
	"context"
	"fmt"

	"pocket/domain"
	"pocket/port/article_store_port"
	"pocket/utils/errors"
)

type MarkArticleOpenedUsecase struct {
	store article_store_port.ArticleStorePort
}

func NewMarkArticleOpenedUsecase(store article_store_port.ArticleStorePort) *MarkArticleOpenedUsecase {
	return &MarkArticleOpenedUsecase{store: store}
}

// Execute sets isRead on the article and returns the resulting record.
// Already-read articles are returned as-is without a store write.
func (u *MarkArticleOpenedUsecase) Execute(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := u.store.GetArticle(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("failed to fetch article", err, map[string]interface{}{
			"id": id,
		})
	}
	if article == nil {
		return nil, errors.NotFoundError(fmt.Sprintf("article %d not found", id), nil, map[string]interface{}{
			"id": id,
		})
	}
	if article.IsRead {
		return article, nil
	}

	read := true
	updated, err := u.store.UpdateArticle(ctx, id, domain.ArticleUpdate{IsRead: &read})
	if err != nil {
		if err == domain.ErrArticleNotFound {
			return nil, errors.NotFoundError(fmt.Sprintf("article %d not found", id), err, map[string]interface{}{
				"id": id,
			})
		}
		return nil, errors.DatabaseError("failed to mark article as read", err, map[string]interface{}{
			"id": id,
		})
	}
	return updated, nil
}
