package scraper

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds scraper configuration
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	MaxRedirects int
	HTTPClient   *http.Client
}

// Validate fills defaults and rejects impossible values.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("scraper: timeout must not be negative")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("scraper: max body bytes must not be negative")
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = DefaultMaxRedirects
	}
	return nil
}

// Page is a successfully downloaded document.
type Page struct {
	URL         string // as requested
	FinalURL    string // after redirects
	StatusCode  int
	ContentType string
	Body        string // UTF-8
	Truncated   bool   // body was longer than MaxBodyBytes
	FetchedAt   time.Time
	Took        time.Duration
}

// scraperImpl is the internal implementation of IScraper
type scraperImpl struct {
	userAgent    string
	maxBodyBytes int64
	httpClient   *http.Client
}
