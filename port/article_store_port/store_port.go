package article_store_port

//go:generate go run go.uber.org/mock/mockgen -source=store_port.go -destination=../../mocks/mock_article_store_port.go -package=mocks ArticleStorePort

import (
	"context"

	"pocket/domain"
)

// ArticleStorePort is the capability set every article store backend must
// satisfy identically. Two implementations exist: the shared Postgres
// backend and the single-device local file backend. Switching backends is
// invisible to every caller.
//
// Contract notes:
//   - ListArticles orders by createdAt descending, ties broken by id
//     descending, so the total order is deterministic.
//   - GetArticle returns (nil, nil) when the id does not exist; absence is
//     a recoverable outcome, not a failure.
//   - CreateArticle and BulkCreateArticles assign id and createdAt; any
//     caller-supplied values for those fields never reach the store.
//   - UpdateArticle merges only the non-nil fields and returns
//     domain.ErrArticleNotFound for an absent id. id and createdAt are
//     never mutable.
//   - DeleteArticle's behavior on an absent id is backend-documented: the
//     Postgres backend returns domain.ErrArticleNotFound, the local
//     backend treats it as a no-op.
//   - BulkCreateArticles is equivalent to sequential creates in input
//     order; it is atomic only where the backend is naturally atomic.
type ArticleStorePort interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	CreateArticle(ctx context.Context, input domain.InsertArticle) (*domain.Article, error)
	UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	BulkCreateArticles(ctx context.Context, inputs []domain.InsertArticle) ([]domain.Article, error)
}
