package repository

import (
	"context"

	"acututor/models"

	"gorm.io/gorm"
)

type questionRepo struct {
	db *gorm.DB
}

// NewQuestionRepository returns a gorm-backed QuestionRepository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepo{db: db}
}

func (r *questionRepo) FindByTopicDifficulty(ctx context.Context, topic, difficulty string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("topic = ? AND difficulty = ?", topic, difficulty).
		Find(&questions).Error
	return questions, err
}
