package models

// Scrape outcome tags.
const (
	ScrapeStatusSuccess = "success"
	ScrapeStatusError   = "error"
)

// ScrapeResult is the outcome of one scrape attempt. It lives only for the
// request/reply cycle and is never persisted.
type ScrapeResult struct {
	URL       string `json:"url"`
	Status    string `json:"status"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
	Error     string `json:"error,omitempty"`
	ScrapedAt string `json:"scraped_at"`
}
