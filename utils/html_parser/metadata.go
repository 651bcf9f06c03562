package html_parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MetaChain is an ordered list of meta tag names evaluated in priority
// order. Resolve returns the first non-empty content attribute, matching
// both name= and property= variants of each tag.
type MetaChain []string

var (
	// TitleChain resolves the social-graph title tags.
	TitleChain = MetaChain{"og:title", "twitter:title"}

	// DescriptionChain resolves description tags, standard meta last.
	DescriptionChain = MetaChain{"og:description", "twitter:description", "description"}

	// SiteNameChain resolves the publishing site's display name.
	SiteNameChain = MetaChain{"og:site_name", "twitter:site"}
)

// Resolve evaluates the chain against doc and returns the first non-empty,
// trimmed value. Empty string when no tag in the chain matched.
func (c MetaChain) Resolve(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}
	for _, name := range c {
		selector := fmt.Sprintf("meta[name='%s'], meta[property='%s']", name, name)
		content, ok := doc.Find(selector).First().Attr("content")
		if ok && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}
	return ""
}

// DocumentTitle returns the trimmed <title> text, empty when absent.
func DocumentTitle(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
