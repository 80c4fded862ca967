package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivityEntry is one line of a user's append-only activity log.
type ActivityEntry struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Message   string         `json:"message" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
