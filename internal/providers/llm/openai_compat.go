package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAICompat talks to a local OpenAI-compatible runtime (LM Studio,
// llama.cpp server, Ollama) over its /v1/chat/completions endpoint,
// non-streaming. The runtime owns model weights and compute device; this
// client only carries the prompt across.
type OpenAICompat struct {
	baseURL string
	model   string
	http    *http.Client
}

func NewOpenAICompat(baseURL, model string) *OpenAICompat {
	if baseURL == "" {
		baseURL = "http://localhost:1234"
	}
	return &OpenAICompat{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		// Generation can run for a long time on CPU; no client timeout.
		// Callers bound the wait through ctx if they need to.
		http: &http.Client{},
	}
}

func (o *OpenAICompat) Close() error { return nil }

// Warmup verifies the runtime is reachable before the service starts
// accepting requests.
func (o *OpenAICompat) Warmup(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/v1/models", nil)
	if err != nil {
		return err
	}
	resp, err := o.http.Do(req)
	if err != nil {
		return fmt.Errorf("llm runtime unreachable at %s: %w", o.baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("llm runtime returned %d from /v1/models", resp.StatusCode)
	}
	return nil
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (o *OpenAICompat) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:    o.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("llm runtime: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("llm runtime returned %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("llm runtime returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
