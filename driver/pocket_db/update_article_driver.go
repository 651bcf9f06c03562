package pocket_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"pocket/domain"
	"pocket/utils/logger"
)

// UpdateArticle merges only the non-nil fields of update into the stored
// row and returns the merged record. id and created_at are never part of
// the SET clause. Returns domain.ErrArticleNotFound for an absent id.
func (r *Repository) UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	// An empty patch is a no-op; return the current row so callers still
	// observe the merge contract.
	if update.IsEmpty() {
		article, err := r.GetArticle(ctx, id)
		if err != nil {
			return nil, err
		}
		if article == nil {
			return nil, domain.ErrArticleNotFound
		}
		return article, nil
	}

	builder := sq.Update("articles").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + articleColumns)

	if update.URL != nil {
		builder = builder.Set("url", strings.TrimSpace(*update.URL))
	}
	if update.Title != nil {
		builder = builder.Set("title", strings.TrimSpace(*update.Title))
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.IsRead != nil {
		builder = builder.Set("is_read", *update.IsRead)
	}
	if update.Archived != nil {
		builder = builder.Set("archived", *update.Archived)
	}
	if update.Tags != nil {
		tags := *update.Tags
		if tags == nil {
			tags = []string{}
		}
		builder = builder.Set("tags", tags)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.SafeInfoContext(ctx, "article to update not found", "id", id)
			return nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("update article: %w", err)
		logger.SafeErrorContext(ctx, "failed to update article", "id", id, "error", err)
		return nil, err
	}

	return article, nil
}
