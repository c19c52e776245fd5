package services

import (
	"context"
	"fmt"
	"time"

	"github.com/parleyhq/parley/internal/cache"
	"github.com/parleyhq/parley/internal/models"
	"github.com/parleyhq/parley/internal/providers/llm"
	sqliterepo "github.com/parleyhq/parley/internal/repositories/sqlite"
	"github.com/parleyhq/parley/internal/utils"
)

const (
	historyVerKey = "conversations:ver"
	historyTTL    = 5 * time.Minute
)

type ConversationService interface {
	// Generate runs the prompt through the completion provider and, only on
	// success, appends exactly one record. A provider failure persists
	// nothing; a store failure after a successful generation fails the whole
	// call and the generated text is not returned.
	Generate(ctx context.Context, prompt string) (*models.ConversationRecord, error)
	History(ctx context.Context, limit, offset int) ([]models.ConversationRecord, error)
}

type conversationService struct {
	convos sqliterepo.ConversationRepo
	oracle llm.Provider
	cache  cache.Cache // nil when the history cache is disabled
}

func NewConversationService(convos sqliterepo.ConversationRepo, oracle llm.Provider, c cache.Cache) ConversationService {
	return &conversationService{convos: convos, oracle: oracle, cache: c}
}

func (s *conversationService) Generate(ctx context.Context, prompt string) (*models.ConversationRecord, error) {
	const op = "ConversationService.Generate"

	reply, err := s.oracle.Complete(ctx, prompt)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "text generation failed", err)
	}

	rec := &models.ConversationRecord{
		Prompt:   prompt,
		Response: reply,
	}
	if err := s.convos.Insert(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist conversation", err)
	}

	if s.cache != nil {
		// Bump the page version so no cached history page can omit this row.
		_, _ = s.cache.Incr(ctx, historyVerKey)
	}
	return rec, nil
}

func (s *conversationService) History(ctx context.Context, limit, offset int) ([]models.ConversationRecord, error) {
	const op = "ConversationService.History"

	if limit < 0 || offset < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "limit/offset must be non-negative", nil)
	}

	var key string
	if s.cache != nil {
		var ver int64
		_, _ = s.cache.GetJSON(ctx, historyVerKey, &ver)
		key = fmt.Sprintf("conversations:%d:history:%d:%d", ver, limit, offset)

		var cached []models.ConversationRecord
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.convos.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list conversations", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, rows, historyTTL)
	}
	return rows, nil
}
