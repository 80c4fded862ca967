package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Topics is the closed set of quiz topics.
var Topics = []string{
	"Algebra", "Geometry", "Probability", "Statistics",
	"Trigonometry", "Calculus", "Number Theory",
	"Logic & Reasoning", "Data Interpretation",
}

// Difficulties is the closed set of difficulty levels.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// OptionCount is the required number of answer options per question.
const OptionCount = 4

type Question struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Topic         string         `json:"topic" gorm:"not null;index:idx_questions_topic_difficulty"`
	Difficulty    string         `json:"difficulty" gorm:"not null;index:idx_questions_topic_difficulty"`
	Text          string         `json:"text" gorm:"not null"`
	Options       pq.StringArray `json:"options" gorm:"type:text[];not null"`
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"`
	Explanation   string         `json:"explanation" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// ValidTopic reports whether topic belongs to the closed topic set.
func ValidTopic(topic string) bool {
	for _, t := range Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether difficulty belongs to the closed set.
func ValidDifficulty(difficulty string) bool {
	for _, d := range Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}
