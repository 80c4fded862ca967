package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"acututor/models"
	"acututor/repository"

	"github.com/google/uuid"
)

const (
	defaultQuestionCount    = 10
	defaultTimeLimitMinutes = 30

	// Grace period past the time limit before a stored session expires, so a
	// submission sent right at the buzzer still scores.
	submitGrace = 2 * time.Minute
)

// XP awarded per correct answer, by difficulty.
var xpPerCorrect = map[string]int{
	"Easy":   10,
	"Medium": 20,
	"Hard":   30,
}

const (
	badgeFirstSteps   = "First Steps"
	badgePerfectScore = "Perfect Score"
)

type QuizService struct {
	questions repository.QuestionRepository
	users     repository.UserRepository
	sessions  SessionStore
}

func NewQuizService(questions repository.QuestionRepository, users repository.UserRepository, sessions SessionStore) *QuizService {
	return &QuizService{
		questions: questions,
		users:     users,
		sessions:  sessions,
	}
}

type CreateSessionRequest struct {
	Topic            string `json:"topic" binding:"required"`
	Difficulty       string `json:"difficulty" binding:"required"`
	QuestionCount    int    `json:"question_count" binding:"omitempty,min=1,max=50"`
	TimeLimitMinutes int    `json:"time_limit" binding:"omitempty,min=1,max=180"`
}

// CreateSession draws a uniform random sample without replacement from the
// questions matching (topic, difficulty) and stores the session with a TTL
// covering the time limit. A pool smaller than the requested count fails the
// whole request; it never returns a short quiz.
func (s *QuizService) CreateSession(ctx context.Context, userID uint, req *CreateSessionRequest) (*models.QuizSession, error) {
	if !models.ValidTopic(req.Topic) {
		return nil, ErrInvalidTopic
	}
	if !models.ValidDifficulty(req.Difficulty) {
		return nil, ErrInvalidDifficulty
	}

	count := req.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}
	timeLimit := req.TimeLimitMinutes
	if timeLimit <= 0 {
		timeLimit = defaultTimeLimitMinutes
	}

	pool, err := s.questions.FindByTopicDifficulty(ctx, req.Topic, req.Difficulty)
	if err != nil {
		return nil, err
	}
	if len(pool) < count {
		return nil, &InsufficientQuestionsError{Available: len(pool), Requested: count}
	}

	// Shuffle a copy of the pool and take the prefix. Every matching question
	// is equally likely regardless of insertion order.
	sample := make([]models.Question, len(pool))
	copy(sample, pool)
	rand.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	sample = sample[:count]

	session := &models.QuizSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Questions:  sample,
		Settings: models.SessionSettings{
			QuestionCount:    count,
			TimeLimitMinutes: timeLimit,
		},
		CreatedAt: time.Now(),
	}

	ttl := time.Duration(timeLimit)*time.Minute + submitGrace
	if err := s.sessions.Save(ctx, session, ttl); err != nil {
		return nil, err
	}
	return session, nil
}

type SubmitSessionRequest struct {
	SessionID string   `json:"session_id" binding:"required"`
	Answers   []string `json:"answers" binding:"required"`
}

// QuestionResult is the scored outcome for one question, with the
// answer-bearing fields now revealed.
type QuestionResult struct {
	QuestionID    uint   `json:"question_id"`
	Text          string `json:"text"`
	GivenAnswer   string `json:"given_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

type QuizResult struct {
	SessionID  string           `json:"session_id"`
	Topic      string           `json:"topic"`
	Difficulty string           `json:"difficulty"`
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	XPEarned   int              `json:"xp_earned"`
	Level      int              `json:"level"`
	Streak     int              `json:"streak"`
	NewBadges  []string         `json:"new_badges"`
	Questions  []QuestionResult `json:"questions"`
}

// SubmitSession scores a stored session against the submitted answers,
// applies the outcome to the user's progress and discards the session. A
// missing session means it expired or never existed; both look the same.
func (s *QuizService) SubmitSession(ctx context.Context, userID uint, req *SubmitSessionRequest) (*QuizResult, error) {
	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		// Don't reveal that someone else's session id exists.
		return nil, ErrSessionNotFound
	}
	if len(req.Answers) != len(session.Questions) {
		return nil, fmt.Errorf("expected %d answers, got %d: %w", len(session.Questions), len(req.Answers), ErrAnswerCountMismatch)
	}

	result := &QuizResult{
		SessionID:  session.ID,
		Topic:      session.Topic,
		Difficulty: session.Difficulty,
		Total:      len(session.Questions),
	}
	for i, q := range session.Questions {
		correct := req.Answers[i] == q.CorrectAnswer
		if correct {
			result.Correct++
		}
		result.Questions = append(result.Questions, QuestionResult{
			QuestionID:    q.ID,
			Text:          q.Text,
			GivenAnswer:   req.Answers[i],
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Explanation:   q.Explanation,
		})
	}
	result.XPEarned = result.Correct * xpPerCorrect[session.Difficulty]

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	s.applyResult(user, session, result)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	result.Level = user.Level
	result.Streak = user.Streak

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		// The TTL will reap it; scoring already happened.
		return result, nil
	}
	return result, nil
}

// applyResult folds a scored quiz into the user's progress fields. XP and
// level only ever move up.
func (s *QuizService) applyResult(user *models.User, session *models.QuizSession, result *QuizResult) {
	now := time.Now()

	user.XP += result.XPEarned
	if lvl := models.LevelForXP(user.XP); lvl > user.Level {
		user.Level = lvl
	}

	passed := result.Correct*2 >= result.Total
	if passed {
		user.Streak++
	} else {
		user.Streak = 0
		if !user.HasWeakTopic(session.Topic) {
			user.WeakTopics = append(user.WeakTopics, session.Topic)
		}
	}

	award := func(name string) {
		if user.HasBadge(name) {
			return
		}
		user.Badges = append(user.Badges, models.Badge{UserID: user.ID, Name: name, AwardedAt: now})
		result.NewBadges = append(result.NewBadges, name)
	}
	award(badgeFirstSteps)
	if result.Correct == result.Total {
		award(badgePerfectScore)
	}

	user.ActivityLog = append(user.ActivityLog, models.ActivityEntry{
		UserID:  user.ID,
		Message: fmt.Sprintf("Completed %s (%s) quiz: %d/%d", session.Topic, session.Difficulty, result.Correct, result.Total),
	})
}
