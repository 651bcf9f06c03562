// Package pocket_db implements the durable article store on Postgres.
//
// Expected table shape (managed outside this service):
//
//	CREATE TABLE articles (
//	    id          BIGSERIAL PRIMARY KEY,
//	    url         TEXT NOT NULL,
//	    title       TEXT NOT NULL,
//	    description TEXT,
//	    content     TEXT,
//	    is_read     BOOLEAN NOT NULL DEFAULT FALSE,
//	    archived    BOOLEAN NOT NULL DEFAULT FALSE,
//	    tags        JSONB NOT NULL DEFAULT '[]',
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
package pocket_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pocket/domain"
)

// DBPool is the subset of pgxpool.Pool the drivers use; pgxmock satisfies
// it in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

type Repository struct {
	pool DBPool
}

func NewRepository(pool DBPool) *Repository {
	return &Repository{pool: pool}
}

// articleColumns is the canonical select list; every scan uses this order.
const articleColumns = "id, url, title, description, content, is_read, archived, tags, created_at"

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	err := row.Scan(
		&article.ID,
		&article.URL,
		&article.Title,
		&article.Description,
		&article.Content,
		&article.IsRead,
		&article.Archived,
		&article.Tags,
		&article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	return &article, nil
}
