// Package html_parser derives clean readable content from arbitrary
// third-party HTML. Structure is untrusted: every function degrades to an
// empty result instead of failing.
package html_parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ReadableContent is the output of the main-content heuristic.
// HTML is the heuristic's serialized article subtree; callers are
// responsible for safe rendering.
type ReadableContent struct {
	Title   string
	Excerpt string
	HTML    string
}

// ExtractReadable runs a readability-style main-content pass against raw
// HTML. Relative URLs are resolved against pageURL. Returns nil when the
// heuristic cannot identify an article body; it never falls back to raw
// body text.
func ExtractReadable(raw string, pageURL *url.URL) *ReadableContent {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	// Pre-process: drop non-content elements so the heuristic scores the
	// remaining structure instead of navigation chrome.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed)); err == nil {
		removeNonContentElements(doc)
		if cleanedHTML, err := doc.Html(); err == nil && cleanedHTML != "" {
			trimmed = cleanedHTML
		}
	}

	article, err := readability.FromReader(strings.NewReader(trimmed), pageURL)
	if err != nil {
		return nil
	}

	content := strings.TrimSpace(article.Content)
	if content == "" || StripTags(content) == "" {
		return nil
	}

	return &ReadableContent{
		Title:   strings.TrimSpace(article.Title),
		Excerpt: strings.TrimSpace(article.Excerpt),
		HTML:    content,
	}
}

// removeNonContentElements prunes navigation, media embeds, social widgets
// and comment sections. The <head> is kept so the heuristic can still read
// the document title.
func removeNonContentElements(doc *goquery.Document) {
	doc.Find("script, style, noscript, aside, nav, footer").Remove()

	doc.Find("iframe, embed, object, video, audio, canvas").Remove()

	doc.Find("[class*='social'], [class*='share'], [class*='twitter'], [class*='facebook'], [class*='instagram'], [class*='linkedin']").Remove()
	doc.Find("[id*='social'], [id*='share'], [id*='twitter'], [id*='facebook']").Remove()

	doc.Find("[class*='comment'], [id*='comment'], [class*='discussion'], [id*='discussion']").Remove()

	doc.Find("[class*='menu'], [id*='menu'], [class*='sidebar'], [id*='sidebar'], [class*='widget'], [id*='widget']").Remove()
	doc.Find("[role='navigation'], [role='banner'], [role='contentinfo']").Remove()

	doc.Find("*").Each(func(i int, s *goquery.Selection) {
		s.RemoveAttr("style")
		s.RemoveAttr("onclick")
		s.RemoveAttr("onload")
		s.RemoveAttr("onerror")
	})
}
