package huggingface

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Hugging Face client configuration.
// APIKey is optional; anonymous calls are heavily rate limited.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if strings.ContainsAny(c.Model, " ?#") {
		return fmt.Errorf("huggingface: invalid model name %q", c.Model)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// huggingFaceImpl is the internal implementation of IHuggingFace
type huggingFaceImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a generation request.
// Temperature 0 means greedy decoding.
type Request struct {
	Inputs       string
	MaxNewTokens int
	MinNewTokens int
	Temperature  float64
}

// Response represents a generation response
type Response struct {
	GeneratedText string
}

// APIError is returned for non-200 responses
type APIError struct {
	StatusCode    int
	Message       string
	EstimatedTime float64 // seconds until a loading model is ready, when reported
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface: API error %d: %s", e.StatusCode, e.Message)
}

// Inference API wire types
type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
	Options    inferenceOptions    `json:"options"`
}

type inferenceParameters struct {
	MaxNewTokens   int      `json:"max_new_tokens,omitempty"`
	MinNewTokens   int      `json:"min_new_tokens,omitempty"`
	DoSample       bool     `json:"do_sample"`
	Temperature    *float64 `json:"temperature,omitempty"`
	ReturnFullText *bool    `json:"return_full_text,omitempty"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

type errorBody struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}
