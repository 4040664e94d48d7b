package middleware

import (
	"time"

	"webwhisper/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	RateLimitPerMin int
	CookieName      string
	CookieTTL       time.Duration
	SecureCookie    bool
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	cookie      cookieConfig
}

type cookieConfig struct {
	name   string
	maxAge int
	secure bool
}

const (
	DefaultCookieName = "webwhisper_session"

	sessionIDKey = "session_id"
	requestIDKey = "request_id"
)

func New(l log.Logger, cfg Config) Middleware {
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
		cookie: cookieConfig{
			name:   name,
			maxAge: int(cfg.CookieTTL / time.Second),
			secure: cfg.SecureCookie,
		},
	}
}
