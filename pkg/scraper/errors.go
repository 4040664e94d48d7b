package scraper

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrInvalidURL indicates the URL is not absolute http(s) with a host.
	ErrInvalidURL = errors.New("invalid url")

	// ErrBadStatus indicates the server answered with a non-2xx status.
	ErrBadStatus = errors.New("unexpected status")

	// ErrTooManyRedirects indicates the redirect chain exceeded Config.MaxRedirects.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// FetchError is returned for every failed fetch: malformed URL, timeout,
// non-success status or unreachable network.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %v (status %d)", e.URL, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the fetch failed because a deadline was exceeded.
func (e *FetchError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
