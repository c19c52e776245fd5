package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeRuntime(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	mux.HandleFunc("/v1/chat/completions", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAICompatComplete(t *testing.T) {
	var gotPrompt string
	srv := newFakeRuntime(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) == 1 {
			gotPrompt = req.Messages[0].Content
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": "  generated text  "}},
			},
		})
	})

	p := NewOpenAICompat(srv.URL, "test-model")
	out, err := p.Complete(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "generated text" {
		t.Fatalf("expected trimmed reply, got %q", out)
	}
	if gotPrompt != "say hello" {
		t.Fatalf("runtime saw prompt %q", gotPrompt)
	}
}

func TestOpenAICompatErrorStatus(t *testing.T) {
	srv := newFakeRuntime(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "model not loaded"},
		})
	})

	p := NewOpenAICompat(srv.URL, "test-model")
	_, err := p.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenAICompatEmptyChoices(t *testing.T) {
	srv := newFakeRuntime(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	p := NewOpenAICompat(srv.URL, "test-model")
	_, err := p.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for empty choices, not silent empty text")
	}
}

func TestOpenAICompatWarmup(t *testing.T) {
	srv := newFakeRuntime(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	p := NewOpenAICompat(srv.URL, "test-model")
	if err := p.Warmup(context.Background()); err != nil {
		t.Fatalf("warmup against live runtime: %v", err)
	}

	down := NewOpenAICompat("http://127.0.0.1:1", "test-model")
	if err := down.Warmup(context.Background()); err == nil {
		t.Fatal("expected warmup failure for unreachable runtime")
	}
}
