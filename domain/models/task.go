package models

import (
	"time"

	"github.com/google/uuid"
)

// Timeframe buckets. TimeframeNone doubles as "no filter" in listings.
const (
	TimeframeDay   = "day"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeNone  = "none"
)

func ValidTimeframe(tf string) bool {
	switch tf {
	case TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeNone:
		return true
	}
	return false
}

// Task name is unique per owning user, enforced by the composite index.
type Task struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	TaskName       string    `gorm:"size:200;uniqueIndex:idx_user_task_name;not null"`
	NumberOfUnits  int       `gorm:"not null"`
	CompletedUnits int       `gorm:"not null"`
	Timeframe      string    `gorm:"size:10;default:'none'"`
	Duration       float64   `gorm:"not null"` // hours
	CreatedAt      time.Time
	EndDate        time.Time `gorm:"not null"`
	UpdatedAt      time.Time
	Priority       int        `gorm:"default:0"`
	Color          string     `gorm:"size:20;default:'#FFFFFF'"`
	Status         string     `gorm:"size:50"`
	CategoryID     *uuid.UUID `gorm:"type:uuid"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_task_name;not null"`
}

func (Task) TableName() string {
	return "tasks"
}
