package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"weather-bot/internal/models"
	"weather-bot/pkg/logger"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxTitleLength    = 200
	maxContentLength  = 1500
	maxFallbackLength = 2000
	minContentLength  = 100
)

// Selector chains evaluated first-match-wins.
var (
	titleSelectors = []string{"title", "h1", "h2", ".title", "#title"}

	unwantedSelector = "script, style, nav, header, footer, aside, form"

	contentSelectors = []string{
		"article", ".content", ".post-content", ".entry-content",
		".article-content", "main", ".main-content", ".post-body",
		".story-body", ".article-body",
	}
)

// HTTPClient abstracts http.Client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Scraper fetches a page and extracts a title and a body excerpt using a
// fixed priority list of selectors.
type Scraper struct {
	httpClient HTTPClient
	l          *logger.Logger
}

func New(l *logger.Logger) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		l:          l,
	}
}

func NewWithClient(httpClient HTTPClient, l *logger.Logger) *Scraper {
	return &Scraper{httpClient: httpClient, l: l}
}

// Scrape fetches the URL and packages the outcome. Failures are reported in
// the result's status tag, never raised.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) models.ScrapeResult {
	s.l.Info("scraping started", map[string]any{"url": pageURL})
	start := time.Now()

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		s.l.Error(fmt.Errorf("scraping failed for %s: %w", pageURL, err))
		return models.ScrapeResult{
			URL:       pageURL,
			Status:    models.ScrapeStatusError,
			Error:     err.Error(),
			ScrapedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
		}
	}

	title := extractTitle(doc)
	content := extractContent(doc)

	result := models.ScrapeResult{
		URL:       pageURL,
		Status:    models.ScrapeStatusSuccess,
		Title:     title,
		Content:   truncate(content, maxContentLength),
		WordCount: len(strings.Fields(content)),
		ScrapedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}

	s.l.Info("scraping completed successfully", map[string]any{
		"url":             pageURL,
		"title":           title,
		"word_count":      result.WordCount,
		"processing_time": time.Since(start).Seconds(),
	})

	return result
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return truncate(text, maxTitleLength)
		}
	}
	return "No title found"
}

func extractContent(doc *goquery.Document) string {
	// Strip non-content markup first; the parsed tree is request-scoped.
	doc.Find(unwantedSelector).Remove()

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := flattenText(sel.Text()); len(text) > minContentLength {
			return text
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := flattenText(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, " ")
	}

	return truncate(flattenText(doc.Text()), maxFallbackLength)
}

// flattenText collapses all whitespace runs to single spaces.
func flattenText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most max runes, never splitting a multibyte
// character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
