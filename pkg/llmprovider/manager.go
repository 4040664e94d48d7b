package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webwhisper/pkg/log"
)

// Manager answers a request with the first provider in the chain that succeeds.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes the provider chain.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // calls per provider, at least 1
	RetryDelay      time.Duration // grows linearly with the attempt number
	MaxTotalTimeout time.Duration // bounds the whole chain, retries included
}

// NewManager creates a Manager over providers, which must already be in priority order.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the provider chain in priority order.
func (m *Manager) Providers() []Provider {
	out := make([]Provider, len(m.providers))
	copy(out, m.providers)
	return out
}

// GenerateContent walks the chain until a provider answers.
//
// When every provider fails the error wraps ErrAllProvidersFailed and one
// *ProviderError per provider tried. A cancelled caller context stops the
// chain at once and is returned as is.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	parent := ctx
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var failed chainFailures
	for _, provider := range m.providers {
		if err := parent.Err(); err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			failed = append(failed, &ProviderError{
				Provider: provider.Name(),
				Err:      fmt.Errorf("skipped, chain timeout of %s exceeded", m.config.MaxTotalTimeout),
			})
			break
		}

		start := time.Now()
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp, time.Since(start))
			return resp, nil
		}
		m.logFailure(ctx, provider, err, time.Since(start))

		if errors.Is(err, ErrInvalidRequest) {
			return nil, err
		}
		if err := parent.Err(); err != nil {
			return nil, err
		}

		var perr *ProviderError
		if !errors.As(err, &perr) || perr.Provider != provider.Name() {
			err = &ProviderError{Provider: provider.Name(), Err: err}
		}
		failed = append(failed, err)

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, failed)
}

// generateWithRetry calls provider up to RetryAttempts times.
// Malformed requests are not retried.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			m.logger.Debugf(ctx, "llmprovider: retrying %s (attempt %d/%d) after: %v", provider.Name(), attempt+1, attempts, lastErr)
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, ErrInvalidRequest) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, took time.Duration) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "answer generated",
		"provider", provider.Name(),
		"model", provider.Model(),
		"took_ms", took.Milliseconds(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error, took time.Duration) {
	m.logger.Warn(ctx, "answer generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"took_ms", took.Milliseconds(),
		"error", err.Error(),
	)
}

// chainFailures lists why each provider in the chain failed, in order.
type chainFailures []error

func (f chainFailures) Error() string {
	msgs := make([]string, len(f))
	for i, err := range f {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (f chainFailures) Unwrap() []error {
	return f
}
