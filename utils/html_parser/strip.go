package html_parser

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; safe for concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup from raw and normalizes whitespace, leaving
// plain text. Used for content-length thresholds and excerpt derivation,
// never to rewrite stored article HTML.
func StripTags(raw string) string {
	text := strictPolicy.Sanitize(raw)
	return normalizeWhitespace(html.UnescapeString(text))
}

func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
