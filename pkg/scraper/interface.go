package scraper

import "context"

// IScraper downloads raw page content.
// Implementations are safe for concurrent use.
type IScraper interface {
	// Fetch issues a blocking GET for rawURL. On any failure it returns a *FetchError
	// and no content.
	Fetch(ctx context.Context, rawURL string) (*Page, error)
}

// New creates a new scraper with the given configuration
func New(cfg Config) (IScraper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newScraperImpl(cfg), nil
}
