// Package article_local_gateway adapts the file-backed offline store to
// the article store port. Selected when STORAGE_MODE=local; no database
// is required in that mode.
package article_local_gateway

import (
	"context"
	"errors"

	"pocket/domain"
	"pocket/driver/local_store"
)

type ArticleLocalGateway struct {
	store *local_store.LocalStore
}

func NewArticleLocalGateway(store *local_store.LocalStore) *ArticleLocalGateway {
	return &ArticleLocalGateway{
		store: store,
	}
}

func (g *ArticleLocalGateway) ListArticles(ctx context.Context) ([]domain.Article, error) {
	if g == nil || g.store == nil {
		return nil, errors.New("local article store not available")
	}
	return g.store.ListArticles(ctx)
}

func (g *ArticleLocalGateway) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	if g == nil || g.store == nil {
		return nil, errors.New("local article store not available")
	}
	return g.store.GetArticle(ctx, id)
}

func (g *ArticleLocalGateway) CreateArticle(ctx context.Context, input domain.InsertArticle) (*domain.Article, error) {
	if g == nil || g.store == nil {
		return nil, errors.New("local article store not available")
	}
	return g.store.CreateArticle(ctx, input)
}

func (g *ArticleLocalGateway) UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	if g == nil || g.store == nil {
		return nil, errors.New("local article store not available")
	}
	return g.store.UpdateArticle(ctx, id, update)
}

// DeleteArticle keeps the offline store's idempotent delete: removing an
// absent id succeeds silently instead of reporting not-found.
func (g *ArticleLocalGateway) DeleteArticle(ctx context.Context, id int64) error {
	if g == nil || g.store == nil {
		return errors.New("local article store not available")
	}
	return g.store.DeleteArticle(ctx, id)
}

func (g *ArticleLocalGateway) BulkCreateArticles(ctx context.Context, inputs []domain.InsertArticle) ([]domain.Article, error) {
	if g == nil || g.store == nil {
		return nil, errors.New("local article store not available")
	}
	return g.store.BulkCreateArticles(ctx, inputs)
}
