package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-bot/internal/models"
	"weather-bot/pkg/logger"
)

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestScrapeArticleSelectorWins(t *testing.T) {
	body := strings.Repeat("sample article text ", 8) // > 100 chars
	server := serve(t, `<html><head><title>Page Title</title></head><body>
		<article>`+body+`</article>
		<p>unrelated paragraph that must not be used as content here at all</p>
	</body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	require.Equal(t, models.ScrapeStatusSuccess, result.Status)
	assert.Equal(t, "Page Title", result.Title)
	assert.Equal(t, strings.TrimSpace(body), result.Content)
	assert.NotContains(t, result.Content, "unrelated paragraph")
}

func TestScrapeTitleFallbackChain(t *testing.T) {
	server := serve(t, `<html><body><h2>Second Level Heading</h2><p>text</p></body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	assert.Equal(t, "Second Level Heading", result.Title)
}

func TestScrapeNoTitleFound(t *testing.T) {
	server := serve(t, `<html><body><div>nothing resembling a heading</div></body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	assert.Equal(t, "No title found", result.Title)
}

func TestScrapeParagraphFallback(t *testing.T) {
	server := serve(t, `<html><body>
		<p>first paragraph</p>
		<p>  </p>
		<p>second paragraph</p>
	</body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	require.Equal(t, models.ScrapeStatusSuccess, result.Status)
	assert.Equal(t, "first paragraph second paragraph", result.Content)
}

func TestScrapeStripsNonContentMarkup(t *testing.T) {
	server := serve(t, `<html><body>
		<script>var hidden = "should never appear";</script>
		<nav>navigation links</nav>
		<p>visible paragraph body</p>
		<footer>footer text</footer>
	</body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	assert.Equal(t, "visible paragraph body", result.Content)
	assert.NotContains(t, result.Content, "hidden")
	assert.NotContains(t, result.Content, "navigation")
}

func TestScrapeContentTruncatedWordCountFull(t *testing.T) {
	long := strings.Repeat("word ", 600) // 3000 chars, 600 words
	server := serve(t, `<html><body><article>`+long+`</article></body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	require.Equal(t, models.ScrapeStatusSuccess, result.Status)
	assert.LessOrEqual(t, len(result.Content), 1500)
	// Word count reflects the pre-truncation text.
	assert.Equal(t, 600, result.WordCount)
}

func TestScrapeContentTruncationKeepsMultibyteIntact(t *testing.T) {
	// 200 repeats flatten to 2399 runes, so the cut lands inside the text.
	long := strings.Repeat("héllo wörld ", 200)
	server := serve(t, `<html><body><article>`+long+`</article></body></html>`)

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	require.Equal(t, models.ScrapeStatusSuccess, result.Status)
	assert.True(t, utf8.ValidString(result.Content))
	assert.Equal(t, 1500, utf8.RuneCountInString(result.Content))
	assert.Equal(t, 400, result.WordCount)
}

func TestScrapeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), server.URL)

	assert.Equal(t, models.ScrapeStatusError, result.Status)
	assert.Contains(t, result.Error, "404")
	assert.Empty(t, result.Content)
}

func TestScrapeNetworkError(t *testing.T) {
	s := New(logger.NewZapLogger("test-app"))
	result := s.Scrape(context.Background(), "http://127.0.0.1:1/unreachable")

	assert.Equal(t, models.ScrapeStatusError, result.Status)
	assert.NotEmpty(t, result.Error)
}

func TestScrapeSendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><p>ok page body</p></body></html>`))
	}))
	defer server.Close()

	s := New(logger.NewZapLogger("test-app"))
	s.Scrape(context.Background(), server.URL)

	assert.Contains(t, gotUA, "Mozilla/5.0")
}
