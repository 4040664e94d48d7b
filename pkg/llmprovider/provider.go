package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "huggingface", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	MinTokens         int // honoured by providers that support a lower bound
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a text segment of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// NewPromptRequest builds a single-turn user request.
func NewPromptRequest(prompt string) *Request {
	return &Request{
		Messages: []Message{TextMessage("user", prompt)},
	}
}

// TextMessage builds a message with one text part.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Text joins the text parts of a message.
func (m Message) Text() string {
	var b strings.Builder
	for _, p := range m.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Text returns the generated text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return r.Content.Text()
}

// flattenPrompt renders the conversation as a single prompt for text-only endpoints.
// A lone user message is passed through unchanged.
func flattenPrompt(req *Request) string {
	if len(req.Messages) == 1 && req.Messages[0].Role == "user" {
		return req.Messages[0].Text()
	}

	var b strings.Builder
	for i, msg := range req.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if msg.Role != "" && msg.Role != "user" {
			b.WriteString(msg.Role)
			b.WriteString(": ")
		}
		b.WriteString(msg.Text())
	}
	return b.String()
}

func systemText(req *Request) string {
	if req.SystemInstruction == nil {
		return ""
	}
	return req.SystemInstruction.Text()
}
