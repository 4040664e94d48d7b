package log

import (
	"context"
	"testing"
)

func TestStructured(t *testing.T) {
	tests := []struct {
		name    string
		arg     []any
		wantMsg string
		wantKV  int
		wantOK  bool
	}{
		{name: "message with pairs", arg: []any{"http request", "method", "GET", "status", 200}, wantMsg: "http request", wantKV: 4, wantOK: true},
		{name: "single value", arg: []any{"hello"}},
		{name: "odd pairs", arg: []any{"msg", "key"}},
		{name: "message and error", arg: []any{"failed: ", "x", "y", "z"}},
		{name: "non-string message", arg: []any{42, "k", "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, kv, ok := structured(tt.arg)
			if ok != tt.wantOK {
				t.Fatalf("structured() ok = %v, want %v", ok, tt.wantOK)
			}
			if msg != tt.wantMsg || len(kv) != tt.wantKV {
				t.Errorf("structured() = %q, %d pairs; want %q, %d", msg, len(kv), tt.wantMsg, tt.wantKV)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	for _, enc := range []string{EncodingJSON, EncodingConsole} {
		l := Init(ZapConfig{Level: "not-a-level", Mode: ModeProduction, Encoding: enc})
		if l == nil {
			t.Fatalf("Init(%s) returned nil", enc)
		}
		l.Info(WithRequestID(context.Background(), "req-2"), "structured", "key", "value")
		l.Debugf(context.Background(), "below level %d", 1)
	}
}
