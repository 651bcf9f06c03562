// Package article_db_gateway adapts the Postgres article repository to the
// article store port. The durable backend is the default storage mode.
package article_db_gateway

import (
	"context"
	"errors"

	"pocket/domain"
	"pocket/driver/pocket_db"
	"pocket/utils/logger"
)

type ArticleDBGateway struct {
	repository *pocket_db.Repository
}

func NewArticleDBGateway(repository *pocket_db.Repository) *ArticleDBGateway {
	return &ArticleDBGateway{
		repository: repository,
	}
}

func (g *ArticleDBGateway) ListArticles(ctx context.Context) ([]domain.Article, error) {
	if g == nil || g.repository == nil {
		return nil, errors.New("article repository not available")
	}
	return g.repository.ListArticles(ctx)
}

func (g *ArticleDBGateway) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	if g == nil || g.repository == nil {
		return nil, errors.New("article repository not available")
	}
	return g.repository.GetArticle(ctx, id)
}

func (g *ArticleDBGateway) CreateArticle(ctx context.Context, input domain.InsertArticle) (*domain.Article, error) {
	if g == nil || g.repository == nil {
		return nil, errors.New("article repository not available")
	}
	return g.repository.CreateArticle(ctx, input)
}

func (g *ArticleDBGateway) UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	if g == nil || g.repository == nil {
		return nil, errors.New("article repository not available")
	}
	return g.repository.UpdateArticle(ctx, id, update)
}

func (g *ArticleDBGateway) DeleteArticle(ctx context.Context, id int64) error {
	if g == nil || g.repository == nil {
		return errors.New("article repository not available")
	}
	return g.repository.DeleteArticle(ctx, id)
}

func (g *ArticleDBGateway) BulkCreateArticles(ctx context.Context, inputs []domain.InsertArticle) ([]domain.Article, error) {
	if g == nil || g.repository == nil {
		return nil, errors.New("article repository not available")
	}

	created, err := g.repository.BulkCreateArticles(ctx, inputs)
	if err != nil {
		logger.SafeErrorContext(ctx, "bulk create failed in database backend", "count", len(inputs), "error", err)
		return nil, err
	}
	return created, nil
}
