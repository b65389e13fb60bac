package models

import (
	"time"

	"github.com/google/uuid"
)

// Content is one persisted generation: the prompt that produced it and the
// rendered artifact. Rows are append-only; the favorite flag is the only field
// ever updated.
type Content struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ContentType   string    `gorm:"not null" json:"content_type"`
	Prompt        string    `json:"prompt"`
	GeneratedText string    `json:"generated_text"`
	Platform      string    `json:"platform"`
	Tone          string    `json:"tone"`
	IsFavorite    bool      `gorm:"default:false" json:"is_favorite"`
	CreatedAt     time.Time `json:"created_at"`
}
