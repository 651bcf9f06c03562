package domain

import (
	"errors"
	"fmt"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrInvalidArticle  = errors.New("article is invalid")
)

// ExternalHTTPError represents an unexpected HTTP status from an external site.
type ExternalHTTPError struct {
	StatusCode int
	URL        string
}

func (e *ExternalHTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}
