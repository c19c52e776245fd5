package llm

import "context"

type Provider interface {
	// Complete returns the generated continuation for prompt. It blocks for
	// the full generation, which may take seconds. A failed generation
	// returns an error; it never degrades to empty text.
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}
