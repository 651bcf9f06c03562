// Package update_article_usecase applies partial edits to an article.
// Only the fields present in the patch change; id and createdAt never do.
package update_article_usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"pocket/domain"
	"pocket/port/article_store_port"
	"pocket/utils/errors"
)

type UpdateArticleUsecase struct {
	store article_store_port.ArticleStorePort
}

func NewUpdateArticleUsecase(store article_store_port.ArticleStorePort) *UpdateArticleUsecase {
	return &UpdateArticleUsecase{store: store}
}

// Execute validates the patch and merges it into the stored article.
// Fields present in the patch must be valid: a supplied url or title
// cannot be blanked out.
func (u *UpdateArticleUsecase) Execute(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	if update.URL != nil {
		cleanURL := strings.TrimSpace(*update.URL)
		if cleanURL == "" {
			return nil, errors.ValidationError("url cannot be empty", "url")
		}
		parsed, err := url.Parse(cleanURL)
		if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return nil, errors.ValidationError("url must be an absolute http or https URL", "url")
		}
		update.URL = &cleanURL
	}
	if update.Title != nil {
		cleanTitle := strings.TrimSpace(*update.Title)
		if cleanTitle == "" {
			return nil, errors.ValidationError("title cannot be empty", "title")
		}
		update.Title = &cleanTitle
	}

	article, err := u.store.UpdateArticle(ctx, id, update)
	if err != nil {
		if err == domain.ErrArticleNotFound {
			return nil, errors.NotFoundError(fmt.Sprintf("article %d not found", id), err, map[string]interface{}{
				"id": id,
			})
		}
		return nil, errors.DatabaseError("failed to update article", err, map[string]interface{}{
			"id": id,
		})
	}
	return article, nil
}
