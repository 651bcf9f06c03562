// Package extract_content_gateway fetches a page and distills it into the
// fields an article card needs: title, description, readable content and
// site name. Every extraction failure is reported to the caller as a nil
// result or an error; nothing here ever blocks saving the article itself.
package extract_content_gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"

	"pocket/domain"
	"pocket/utils/html_parser"
	"pocket/utils/logger"
	"pocket/utils/metrics"
	"pocket/utils/rate_limiter"
)

// maxBodyBytes caps how much HTML is read from an external site.
const maxBodyBytes = 10 << 20

const fallbackTitle = "Untitled"

type ExtractContentGateway struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	rateLimiter *rate_limiter.HostRateLimiter
	inflight    singleflight.Group
}

func NewExtractContentGateway(timeout time.Duration, userAgent string, hostInterval time.Duration) *ExtractContentGateway {
	return &ExtractContentGateway{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout:     timeout,
		userAgent:   userAgent,
		rateLimiter: rate_limiter.NewHostRateLimiter(hostInterval),
	}
}

// Extract fetches articleURL and resolves the metadata chains. Returns
// (nil, nil) when the heuristic finds no article body; a non-nil error
// only for transport-level failures. Concurrent extractions of the same
// URL share a single fetch.
func (g *ExtractContentGateway) Extract(ctx context.Context, articleURL string) (*domain.ExtractedContent, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("extract content gateway not available")
	}

	// The shared fetch runs detached from any single caller, so a client
	// disconnecting cannot abort it for the waiters still attached to it.
	// The configured timeout still bounds the detached fetch.
	ch := g.inflight.DoChan(articleURL, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
		defer cancel()
		return g.extract(fetchCtx, articleURL)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		content, ok := res.Val.(*domain.ExtractedContent)
		if !ok || content == nil {
			return nil, nil
		}
		return content, nil
	}
}

func (g *ExtractContentGateway) extract(ctx context.Context, articleURL string) (*domain.ExtractedContent, error) {
	pageURL, err := url.Parse(articleURL)
	if err != nil {
		return nil, fmt.Errorf("parse article url: %w", err)
	}

	if err := g.rateLimiter.WaitForHost(ctx, articleURL); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	raw, err := g.fetch(ctx, articleURL)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("parse html: %w", err)
	}

	// No article body means no result: meta tags alone are not an
	// extraction, so they never produce a content-less card.
	readable := html_parser.ExtractReadable(raw, pageURL)
	if readable == nil {
		logger.SafeInfoContext(ctx, "no readable article body found", "url", articleURL)
		metrics.ExtractionsTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	content := &domain.ExtractedContent{
		Title:       resolveTitle(doc, readable),
		Description: resolveDescription(doc, readable),
		Content:     readable.HTML,
		SiteName:    html_parser.SiteNameChain.Resolve(doc),
	}
	metrics.ExtractionsTotal.WithLabelValues("success").Inc()

	logger.SafeInfoContext(ctx, "content extracted",
		"url", articleURL,
		"title", content.Title,
		"content_length", len(content.Content),
	)
	return content, nil
}

func (g *ExtractContentGateway) fetch(ctx context.Context, articleURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.SafeWarnContext(ctx, "failed to fetch page", "url", articleURL, "error", err)
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.SafeWarnContext(ctx, "unexpected status from page", "url", articleURL, "status", resp.StatusCode)
		return "", &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: articleURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read page body: %w", err)
	}
	return string(body), nil
}

// resolveTitle walks the fallback chain: og/twitter meta tags, then the
// readability title, then the document <title>, then a fixed placeholder.
func resolveTitle(doc *goquery.Document, readable *html_parser.ReadableContent) string {
	if title := html_parser.TitleChain.Resolve(doc); title != "" {
		return title
	}
	if readable != nil {
		if title := strings.TrimSpace(readable.Title); title != "" {
			return title
		}
	}
	if title := html_parser.DocumentTitle(doc); title != "" {
		return title
	}
	return fallbackTitle
}

// resolveDescription walks og/twitter/meta description tags, then the
// readability excerpt. An empty string means no description was found.
func resolveDescription(doc *goquery.Document, readable *html_parser.ReadableContent) string {
	if desc := html_parser.DescriptionChain.Resolve(doc); desc != "" {
		return desc
	}
	if readable != nil {
		return strings.TrimSpace(readable.Excerpt)
	}
	return ""
}
