package repository

import (
	"context"

	"acututor/models"
)

// UserRepository persists user accounts and their progress relations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// Save writes the user's scalar progress fields plus any new badge and
	// activity-log rows attached to the struct.
	Save(ctx context.Context, user *models.User) error
}

// QuestionRepository reads from the shared question bank. Questions are
// seeded externally; the API never writes them.
type QuestionRepository interface {
	FindByTopicDifficulty(ctx context.Context, topic, difficulty string) ([]models.Question, error)
}
