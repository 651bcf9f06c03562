// Package fetch_articles_usecase reads articles from the active store
// backend: the full list for browsing and single records by id.
package fetch_articles_usecase

import (
	"context"
	"fmt"

	"pocket/domain"
	"pocket/port/article_store_port"
	"pocket/utils/errors"
)

type FetchArticlesUsecase struct {
	store article_store_port.ArticleStorePort
}

func NewFetchArticlesUsecase(store article_store_port.ArticleStorePort) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{store: store}
}

// Execute returns every saved article, newest first.
func (u *FetchArticlesUsecase) Execute(ctx context.Context) ([]domain.Article, error) {
	articles, err := u.store.ListArticles(ctx)
	if err != nil {
		return nil, errors.DatabaseError("failed to list articles", err, nil)
	}
	return articles, nil
}

// ExecuteByID returns the article with the given id, or a not-found error.
func (u *FetchArticlesUsecase) ExecuteByID(ctx context.Context, id int64) (*domain.Article, error) {
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
	return article, nil
}
