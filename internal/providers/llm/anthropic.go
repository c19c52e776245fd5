package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

type Anthropic struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropic builds a client reading ANTHROPIC_API_KEY from the env.
func NewAnthropic(modelName string, maxTokens int64) *Anthropic {
	c := anthropic.NewClient()

	model := anthropic.ModelClaude3_7SonnetLatest
	if modelName != "" {
		model = anthropic.Model(modelName)
	}
	if maxTokens <= 0 {
		maxTokens = 512
	}

	return &Anthropic{client: &c, model: model, maxTokens: maxTokens}
}

func (a *Anthropic) Close() error { return nil }

func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if v, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(v.Text)
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("anthropic returned no text blocks")
	}
	return out, nil
}
