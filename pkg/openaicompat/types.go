package openaicompat

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
)

// Config holds client configuration. Model and BaseURL default per Provider.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: APIKey is required", c.Provider)
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURLs[c.Provider]
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%s: BaseURL is required for unknown provider", c.Provider)
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
	if c.Model == "" {
		return fmt.Errorf("%s: Model is required", c.Provider)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	provider string
	model    string
	api      openai.Client
}

// Request represents a single-prompt completion request.
// Temperature 0 means greedy decoding.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response represents the first completion choice
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
