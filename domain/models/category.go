package models

import (
	"github.com/google/uuid"
)

// Category groups one parent task with zero or more child tasks. A task may
// anchor at most one category, backed by the unique index on ParentTaskID.
type Category struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name         string    `gorm:"size:100;not null"`
	Description  string
	ParentTaskID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Color        string    `gorm:"size:20;not null"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`

	// Relations
	ParentTask Task   `gorm:"foreignKey:ParentTaskID"`
	Children   []Task `gorm:"many2many:category_children"`
}

func (Category) TableName() string {
	return "categories"
}
