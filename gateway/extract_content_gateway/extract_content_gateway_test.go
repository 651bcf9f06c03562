package extract_content_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pocket/domain"
	"pocket/port/extract_content_port"
)

var _ extract_content_port.ExtractContentPort = (*ExtractContentGateway)(nil)

func newTestGateway() *ExtractContentGateway {
	return NewExtractContentGateway(5*time.Second, "Mozilla/5.0 (compatible; Pocket/1.0; +https://github.com)", time.Millisecond)
}

const articlePage = `<!DOCTYPE html>
<html>
<head>
	<title>Document Title</title>
	<meta property="og:title" content="OG Title">
	<meta property="og:description" content="OG description of the page.">
	<meta property="og:site_name" content="Example Site">
</head>
<body>
	<article>
		<h1>OG Title</h1>
		<p>This is the first paragraph of the article body. It carries enough
		text for the readability pass to treat it as real content rather than
		navigation chrome or boilerplate.</p>
		<p>A second paragraph keeps the scoring comfortably above the noise
		threshold so the extraction result is stable across library versions.</p>
	</article>
</body>
</html>`

func TestExtract_ResolvesMetadataChains(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	}))
	defer server.Close()

	gateway := newTestGateway()
	content, err := gateway.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, content)

	require.Equal(t, "OG Title", content.Title)
	require.Equal(t, "OG description of the page.", content.Description)
	require.Equal(t, "Example Site", content.SiteName)
	require.NotEmpty(t, content.Content)
	require.Equal(t, "Mozilla/5.0 (compatible; Pocket/1.0; +https://github.com)", gotUserAgent)
}

func TestExtract_FallsBackToDocumentTitle(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head><title>Plain Title</title></head>
<body>
	<article>
		<p>Paragraph one of a page without any open graph or twitter metadata,
		long enough that the readability heuristic keeps it as main content.</p>
		<p>Paragraph two continues in the same vein to stabilize the score.</p>
	</article>
</body>
</html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer server.Close()

	gateway := newTestGateway()
	content, err := gateway.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, content)
	require.Equal(t, "Plain Title", content.Title)
}

func TestExtract_EmptyPageYieldsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<!DOCTYPE html><html><head></head><body></body></html>`))
	}))
	defer server.Close()

	gateway := newTestGateway()
	content, err := gateway.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	require.Nil(t, content)
}

func TestExtract_MetaOnlyPageYieldsNil(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head>
	<title>Meta Only</title>
	<meta property="og:title" content="Meta Only Title">
	<meta property="og:description" content="Meta only description.">
	<meta property="og:site_name" content="Example Site">
</head>
<body></body>
</html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer server.Close()

	// Metadata without an article body is not an extraction result.
	gateway := newTestGateway()
	content, err := gateway.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	require.Nil(t, content)
}

func TestExtract_SharedFetchSurvivesCallerCancellation(t *testing.T) {
	requestStarted := make(chan struct{})
	release := make(chan struct{})
	var startOnce sync.Once
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		startOnce.Do(func() { close(requestStarted) })
		<-release
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	}))
	defer server.Close()

	gateway := newTestGateway()

	ctx1, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var err1 error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err1 = gateway.Extract(ctx1, server.URL)
	}()

	<-requestStarted

	resultCh := make(chan *domain.ExtractedContent, 1)
	errCh := make(chan error, 1)
	go func() {
		content, err := gateway.Extract(context.Background(), server.URL)
		resultCh <- content
		errCh <- err
	}()

	// Give the second caller time to join the in-flight fetch, then drop
	// the first caller while the server is still holding the response.
	time.Sleep(100 * time.Millisecond)
	cancel()
	wg.Wait()
	require.ErrorIs(t, err1, context.Canceled)

	close(release)
	require.NoError(t, <-errCh)
	content := <-resultCh
	require.NotNil(t, content)
	require.Equal(t, "OG Title", content.Title)
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestExtract_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	gateway := newTestGateway()
	content, err := gateway.Extract(context.Background(), server.URL)
	require.Nil(t, content)

	var httpErr *domain.ExternalHTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestExtract_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	gateway := newTestGateway()
	content, err := gateway.Extract(context.Background(), serverURL)
	require.Nil(t, content)
	require.Error(t, err)
}
