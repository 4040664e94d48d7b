package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newHuggingFaceImpl creates a new Hugging Face implementation
func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	return &huggingFaceImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends a text generation request to the Inference API
func (h *huggingFaceImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Inputs) == "" {
		return nil, fmt.Errorf("huggingface: inputs are required")
	}

	body, err := json.Marshal(h.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", h.baseURL, h.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, raw)
	}

	return parseGenerated(raw)
}

// Model returns the model being used
func (h *huggingFaceImpl) Model() string {
	return h.model
}

func (h *huggingFaceImpl) transformRequest(req *Request) inferenceRequest {
	params := inferenceParameters{
		MaxNewTokens: req.MaxNewTokens,
		MinNewTokens: req.MinNewTokens,
	}
	if req.Temperature > 0 {
		t := req.Temperature
		params.DoSample = true
		params.Temperature = &t
	}
	// Causal models echo the prompt by default; seq2seq models ignore the flag.
	full := false
	params.ReturnFullText = &full

	return inferenceRequest{
		Inputs:     req.Inputs,
		Parameters: params,
		Options:    inferenceOptions{WaitForModel: true, UseCache: false},
	}
}

// parseGenerated accepts both the list form and the single-object form of the response.
func parseGenerated(raw []byte) (*Response, error) {
	var list []generatedText
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return &Response{}, nil
		}
		return &Response{GeneratedText: list[0].GeneratedText}, nil
	}

	var single generatedText
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("huggingface: failed to decode response: %w", err)
	}
	return &Response{GeneratedText: single.GeneratedText}, nil
}

func parseAPIError(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.EstimatedTime = body.EstimatedTime
	}
	return apiErr
}
