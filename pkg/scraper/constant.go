package scraper

import "time"

const (
	// DefaultTimeout matches the blocking GET budget of a single "Analyze" action.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "Mozilla/5.0 (compatible; WebWhisper/1.0)"

	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes int64 = 5 << 20

	// DefaultMaxRedirects caps redirect hops.
	DefaultMaxRedirects = 5

	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,text/plain;q=0.8,*/*;q=0.5"
)
