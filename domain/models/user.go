package models

import (
	"time"

	"github.com/google/uuid"
)

// User is identified by a unique phone number and logs in with a unique
// 4-digit pincode. The pincode is stored as entered: login is a lookup by
// pincode, so it cannot be hashed. A weak but deliberate scheme, kept behind
// the user service so it can be swapped without touching call sites.
type User struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid"`
	Name        string     `gorm:"size:50;not null"`
	PhoneNumber string     `gorm:"size:10;uniqueIndex;not null"`
	Pincode     string     `gorm:"size:4;uniqueIndex;not null"`
	JobRoles    []string   `gorm:"serializer:json;not null"`
	CreatedAt   time.Time
	LastLogin   *time.Time
}

func (User) TableName() string {
	return "users"
}
