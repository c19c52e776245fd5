package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/parleyhq/parley/internal/models"
)

type ConversationRepo interface {
	Insert(ctx context.Context, rec *models.ConversationRecord) error
	ListRecent(ctx context.Context, limit, offset int) ([]models.ConversationRecord, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

// Insert writes a single row. The store assigns id and created_at; both are
// populated on rec when Insert returns. WithContext scopes the checkout of a
// pooled connection to this request: it is acquired on first use and returned
// on every exit path, errors included.
func (r *conversationRepo) Insert(ctx context.Context, rec *models.ConversationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListRecent returns rows newest first: created_at descending with id as the
// tiebreaker, so insertion order survives identical timestamps. Callers
// validate limit and offset before they reach the repo.
func (r *conversationRepo) ListRecent(ctx context.Context, limit, offset int) ([]models.ConversationRecord, error) {
	var rows []models.ConversationRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}
