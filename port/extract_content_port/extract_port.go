package extract_content_port

//go:generate go run go.uber.org/mock/mockgen -source=extract_port.go -destination=../../mocks/mock_extract_content_port.go -package=mocks ExtractContentPort

import (
	"context"

	"pocket/domain"
)

// ExtractContentPort derives a best-effort readable document from a URL.
// (nil, nil) means the page fetched fine but no article body was found;
// an error covers fetch/transport failures. Callers must treat both as
// "no enrichment" and never let either block the enclosing operation.
type ExtractContentPort interface {
	Extract(ctx context.Context, articleURL string) (*domain.ExtractedContent, error)
}
