// Package import_articles_usecase restores articles from a backup file.
// Import is lenient about optional fields but strict about identity:
// ids and timestamps in the backup are discarded and reassigned by the
// store, so an import can never collide with existing records.
package import_articles_usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"pocket/domain"
	"pocket/port/article_store_port"
	"pocket/utils/errors"
	"pocket/utils/logger"
)

type ImportArticlesUsecase struct {
	store article_store_port.ArticleStorePort
}

func NewImportArticlesUsecase(store article_store_port.ArticleStorePort) *ImportArticlesUsecase {
	return &ImportArticlesUsecase{store: store}
}

// Execute validates every entry up front, then hands the whole batch to
// the store. Returns the number of articles created. One invalid entry
// rejects the import before anything is written.
func (u *ImportArticlesUsecase) Execute(ctx context.Context, inputs []domain.InsertArticle) (int, error) {
	if len(inputs) == 0 {
		return 0, nil
	}

	for i := range inputs {
		cleanURL := strings.TrimSpace(inputs[i].URL)
		if cleanURL == "" {
			return 0, errors.ValidationError("url is required", fmt.Sprintf("articles[%d].url", i))
		}
		parsed, err := url.Parse(cleanURL)
		if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return 0, errors.ValidationError("url must be an absolute http or https URL", fmt.Sprintf("articles[%d].url", i))
		}
		inputs[i].URL = cleanURL

		cleanTitle := strings.TrimSpace(inputs[i].Title)
		if cleanTitle == "" {
			return 0, errors.ValidationError("title is required", fmt.Sprintf("articles[%d].title", i))
		}
		inputs[i].Title = cleanTitle

		if inputs[i].Tags == nil {
			inputs[i].Tags = []string{}
		}
	}

	created, err := u.store.BulkCreateArticles(ctx, inputs)
	if err != nil {
		return 0, errors.DatabaseError("failed to import articles", err, map[string]interface{}{
			"count": len(inputs),
		})
	}

	logger.SafeInfoContext(ctx, "articles imported", "count", len(created))
	return len(created), nil
}
