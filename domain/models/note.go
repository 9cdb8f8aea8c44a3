package models

import (
	"time"

	"github.com/google/uuid"
)

// Note title is unique per owning user.
type Note struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title      string    `gorm:"size:200;uniqueIndex:idx_user_note_title;not null"`
	Content    string    `gorm:"not null"`
	Color      string    `gorm:"size:20;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_note_title;not null"`
	LastEdited time.Time
}

func (Note) TableName() string {
	return "notes"
}
