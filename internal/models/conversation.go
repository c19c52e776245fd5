package models

import "time"

// ConversationRecord is one persisted prompt/response pair. The log is append
// only: a row is written once, at the end of a successful generation, and is
// never updated or deleted afterwards.
type ConversationRecord struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Prompt    string    `gorm:"column:prompt;type:text;not null" json:"prompt"`
	Response  string    `gorm:"column:response;type:text;not null" json:"response"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (ConversationRecord) TableName() string { return "conversations" }
