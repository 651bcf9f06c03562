package pocket_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"pocket/domain"
	"pocket/utils/logger"
)

// BulkCreateArticles inserts the batch in input order as a single
// multi-row INSERT: one round trip, atomic as one statement. Returned
// records follow the input order.
func (r *Repository) BulkCreateArticles(ctx context.Context, inputs []domain.InsertArticle) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if len(inputs) == 0 {
		return []domain.Article{}, nil
	}

	builder := sq.Insert("articles").
		PlaceholderFormat(sq.Dollar).
		Columns("url", "title", "description", "content", "is_read", "archived", "tags").
		Suffix("RETURNING " + articleColumns)

	for i, input := range inputs {
		cleanURL := strings.TrimSpace(input.URL)
		if cleanURL == "" {
			return nil, fmt.Errorf("article %d: url cannot be empty", i)
		}
		cleanTitle := strings.TrimSpace(input.Title)
		if cleanTitle == "" {
			return nil, fmt.Errorf("article %d: title cannot be empty", i)
		}
		tags := input.Tags
		if tags == nil {
			tags = []string{}
		}
		builder = builder.Values(cleanURL, cleanTitle, input.Description, input.Content, input.IsRead, input.Archived, tags)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulk insert query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("bulk create articles: %w", err)
		logger.SafeErrorContext(ctx, "failed to bulk create articles", "count", len(inputs), "error", err)
		return nil, err
	}
	defer rows.Close()

	created := make([]domain.Article, 0, len(inputs))
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan created article: %w", err)
		}
		created = append(created, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate created articles: %w", err)
	}

	logger.SafeInfoContext(ctx, "articles bulk created", "count", len(created))
	return created, nil
}
