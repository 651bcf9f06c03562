// Package save_article_usecase creates an article from a submitted URL,
// enriching thin submissions with extracted readable content when an
// extractor is configured.
package save_article_usecase

import (
	"context"
	"net/url"
	"strings"

	"pocket/domain"
	"pocket/port/article_store_port"
	"pocket/port/extract_content_port"
	"pocket/utils/errors"
	"pocket/utils/logger"
)

type SaveArticleUsecase struct {
	store            article_store_port.ArticleStorePort
	extractor        extract_content_port.ExtractContentPort
	minContentLength int
}

// NewSaveArticleUsecase wires the store and an optional extractor; a nil
// extractor disables enrichment entirely (offline deployments).
func NewSaveArticleUsecase(store article_store_port.ArticleStorePort, extractor extract_content_port.ExtractContentPort, minContentLength int) *SaveArticleUsecase {
	return &SaveArticleUsecase{
		store:            store,
		extractor:        extractor,
		minContentLength: minContentLength,
	}
}

// Execute validates and saves the submitted article. A blank title
// defaults to the URL itself, which also marks it as a placeholder that
// extraction may replace. Extraction failures are contained: the article
// is saved with whatever the caller supplied.
func (u *SaveArticleUsecase) Execute(ctx context.Context, input domain.InsertArticle) (*domain.Article, error) {
	cleanURL := strings.TrimSpace(input.URL)
	if cleanURL == "" {
		return nil, errors.ValidationError("url is required", "url")
	}
	parsed, err := url.Parse(cleanURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.ValidationError("url must be an absolute http or https URL", "url")
	}

	input.URL = cleanURL
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		input.Title = cleanURL
	}

	if u.needsEnrichment(input) {
		u.enrich(ctx, &input)
	}

	article, err := u.store.CreateArticle(ctx, input)
	if err != nil {
		return nil, errors.DatabaseError("failed to save article", err, map[string]interface{}{
			"url": cleanURL,
		})
	}
	return article, nil
}

// needsEnrichment reports whether the submission is thin enough to fetch:
// no content, or content below the minimum length.
func (u *SaveArticleUsecase) needsEnrichment(input domain.InsertArticle) bool {
	if u.extractor == nil {
		return false
	}
	return input.Content == nil || len(*input.Content) < u.minContentLength
}

// enrich fills only the fields the caller left blank or at a placeholder:
// a title equal to the raw URL counts as blank, and content below the
// minimum length counts as a placeholder. Non-blank caller titles and
// descriptions always win over extracted ones.
func (u *SaveArticleUsecase) enrich(ctx context.Context, input *domain.InsertArticle) {
	extracted, err := u.extractor.Extract(ctx, input.URL)
	if err != nil {
		logger.SafeWarnContext(ctx, "content extraction failed, saving article as submitted", "url", input.URL, "error", err)
		return
	}
	if extracted == nil {
		logger.SafeInfoContext(ctx, "no readable content found, saving article as submitted", "url", input.URL)
		return
	}

	if (input.Title == "" || input.Title == input.URL) && extracted.Title != "" {
		input.Title = extracted.Title
	}
	if (input.Description == nil || strings.TrimSpace(*input.Description) == "") && extracted.Description != "" {
		description := extracted.Description
		input.Description = &description
	}
	if extracted.Content != "" {
		content := extracted.Content
		input.Content = &content
	}
}
