package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"webwhisper/internal/chat"
	"webwhisper/internal/chat/repository"
	"webwhisper/pkg/log"
)

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute
)

// Config bounds the store. Sessions idle for longer than TTL are dropped,
// and the least recently used session is evicted beyond MaxSessions.
type Config struct {
	MaxSessions int
	TTL         time.Duration
}

type implRepository struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, chat.Session]
	l        log.Logger
	now      func() time.Time
}

// New creates an in-memory session repository.
func New(l log.Logger, cfg Config) repository.Repository {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	return &implRepository{
		sessions: expirable.NewLRU[string, chat.Session](cfg.MaxSessions, nil, cfg.TTL),
		l:        l,
		now:      time.Now,
	}
}
