// Package extract_content_usecase runs readable-content extraction for a
// URL on demand, without saving anything.
package extract_content_usecase

import (
	"context"
	"net/url"
	"strings"

	"pocket/domain"
	"pocket/port/extract_content_port"
	"pocket/utils/errors"
)

type ExtractContentUsecase struct {
	extractor extract_content_port.ExtractContentPort
}

func NewExtractContentUsecase(extractor extract_content_port.ExtractContentPort) *ExtractContentUsecase {
	return &ExtractContentUsecase{extractor: extractor}
}

// Execute validates the URL and runs extraction. Returns (nil, nil) when
// the page had no readable content; errors cover invalid input, a
// disabled extractor, and fetch failures.
func (u *ExtractContentUsecase) Execute(ctx context.Context, rawURL string) (*domain.ExtractedContent, error) {
	if u.extractor == nil {
		return nil, errors.ValidationError("content extraction is disabled", "url")
	}

	cleanURL := strings.TrimSpace(rawURL)
	if cleanURL == "" {
		return nil, errors.ValidationError("url is required", "url")
	}
	parsed, err := url.Parse(cleanURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.ValidationError("url must be an absolute http or https URL", "url")
	}

	return u.extractor.Extract(ctx, cleanURL)
}
