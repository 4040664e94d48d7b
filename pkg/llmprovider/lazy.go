package llmprovider

import (
	"context"
	"fmt"
	"sync"
)

// Lazy builds a Manager on first use and shares it afterwards.
// A failed build is remembered; every later call returns the same error.
type Lazy struct {
	once  sync.Once
	build func() (*Manager, error)

	manager *Manager
	err     error
}

// NewLazy wraps build so it runs at most once.
func NewLazy(build func() (*Manager, error)) *Lazy {
	return &Lazy{build: build}
}

// Manager returns the shared manager, building it if needed.
func (l *Lazy) Manager() (*Manager, error) {
	l.once.Do(func() {
		l.manager, l.err = l.build()
		if l.err == nil && l.manager == nil {
			l.err = ErrNoProvidersConfigured
		}
	})
	return l.manager, l.err
}

// GenerateContent builds the manager if needed and delegates to it.
func (l *Lazy) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m, err := l.Manager()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	return m.GenerateContent(ctx, req)
}
