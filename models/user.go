package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// XP needed to advance one level.
const XPPerLevel = 1000

type User struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"not null"`
	Email      string         `json:"email" gorm:"uniqueIndex;not null"`
	Password   string         `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	XP         int            `json:"xp" gorm:"not null;default:0"`
	Level      int            `json:"level" gorm:"not null;default:1"`
	Streak     int            `json:"streak" gorm:"not null;default:0"`
	WeakTopics pq.StringArray `json:"weak_topics" gorm:"type:text[]"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Badges      []Badge         `json:"badges,omitempty" gorm:"foreignKey:UserID"`
	ActivityLog []ActivityEntry `json:"activity_log,omitempty" gorm:"foreignKey:UserID"`
}

// LevelForXP returns the level a user with the given XP should hold.
// Levels only ever move up; callers must not apply a lower result.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// HasBadge reports whether the user already earned the named badge.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// HasWeakTopic reports whether the topic is already recorded as weak.
func (u *User) HasWeakTopic(topic string) bool {
	for _, t := range u.WeakTopics {
		if t == topic {
			return true
		}
	}
	return false
}
