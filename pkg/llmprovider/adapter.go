package llmprovider

import (
	"context"
	"errors"

	"webwhisper/pkg/gemini"
	"webwhisper/pkg/huggingface"
	"webwhisper/pkg/openaicompat"
)

// HuggingFaceAdapter adapts pkg/huggingface to llmprovider.Provider interface
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
}

// NewHuggingFaceAdapter creates a new Hugging Face adapter
func NewHuggingFaceAdapter(client huggingface.IHuggingFace) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *HuggingFaceAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	prompt := flattenPrompt(req)
	if sys := systemText(req); sys != "" {
		prompt = sys + "\n\n" + prompt
	}

	resp, err := a.client.Generate(ctx, &huggingface.Request{
		Inputs:       prompt,
		MaxNewTokens: req.MaxTokens,
		MinNewTokens: req.MinTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      TextMessage("assistant", resp.GeneratedText),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *HuggingFaceAdapter) Name() string {
	return "huggingface"
}

// Model returns model name
func (a *HuggingFaceAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: systemText(req),
		Prompt:            flattenPrompt(req),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      TextMessage("assistant", resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat (openai, qwen, deepseek) to llmprovider.Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new OpenAI-compatible adapter
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.Complete(ctx, &openaicompat.Request{
		System:      systemText(req),
		Prompt:      flattenPrompt(req),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	if resp == nil {
		return nil, &ProviderError{Provider: a.Name(), Err: errors.New("empty response")}
	}

	return &Response{
		Content:      TextMessage("assistant", resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Provider()
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
