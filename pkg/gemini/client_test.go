package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"webwhisper/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	var lastBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if r.URL.Path != "/models/gemini-2.5-flash:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		lastBody = nil
		if err := json.NewDecoder(r.Body).Decode(&lastBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := lastBody["contents"].([]any)
		parts := contents[0].(map[string]any)["parts"].([]any)
		if parts[0].(map[string]any)["text"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked " },
							{ "text": "response string" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Prompt:    "Hello world",
			MaxTokens: 150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text)
		}
		if resp.Usage.InputTokens != 12 || resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}

		genCfg := lastBody["generationConfig"].(map[string]any)
		if genCfg["temperature"] != float64(0) {
			t.Errorf("expected explicit temperature 0, got %v", genCfg["temperature"])
		}
		if genCfg["maxOutputTokens"] != float64(150) {
			t.Errorf("expected maxOutputTokens 150, got %v", genCfg["maxOutputTokens"])
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "cause_500"})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		if _, err := gemini.New(gemini.Config{}); err == nil {
			t.Fatal("expected error without API key")
		}
	})
}
