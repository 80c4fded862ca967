package services

import (
	"context"
	"testing"
	"time"

	"acututor/models"

	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := &models.QuizSession{
		ID:         "s-1",
		UserID:     7,
		Topic:      "Algebra",
		Difficulty: "Easy",
		Questions:  questionPool("Algebra", "Easy", 3),
		Settings:   models.SessionSettings{QuestionCount: 3, TimeLimitMinutes: 30},
		CreatedAt:  time.Now(),
	}
	require.NoError(t, store.Save(ctx, session, time.Minute))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Equal(t, session.UserID, got.UserID)
	require.Len(t, got.Questions, 3)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.Get(ctx, "s-1")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := &models.QuizSession{ID: "s-2", UserID: 7}
	require.NoError(t, store.Save(ctx, session, 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)
	_, err := store.Get(ctx, "s-2")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreMissingID(t *testing.T) {
	store := NewMemorySessionStore()
	_, err := store.Get(context.Background(), "no-such-session")
	require.ErrorIs(t, err, ErrSessionNotFound)
}
