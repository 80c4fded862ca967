package services

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail      = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenExpired        = errors.New("token expired")
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("quiz session not found or expired")
	ErrAnswerCountMismatch = errors.New("answer count does not match session")
	ErrInvalidTopic        = errors.New("unknown topic")
	ErrInvalidDifficulty   = errors.New("unknown difficulty")
	ErrUpstreamUnavailable = errors.New("AI service unavailable")
)

// InsufficientQuestionsError reports a question pool too small for the
// requested sample. The request must fail rather than return a short quiz.
type InsufficientQuestionsError struct {
	Available int
	Requested int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("not enough questions: %d available, %d requested", e.Available, e.Requested)
}
