package openaicompat

import "context"

// IClient defines a single-prompt chat completion client for OpenAI-compatible APIs.
// Implementations are safe for concurrent use.
type IClient interface {
	// Complete sends one prompt and returns the first choice
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string

	// Provider returns the provider name the client was built for
	Provider() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
