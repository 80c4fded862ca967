package models

import "time"

// SessionSettings are the effective settings a quiz session was created with.
type SessionSettings struct {
	QuestionCount    int `json:"question_count"`
	TimeLimitMinutes int `json:"time_limit_minutes"`
}

// QuizSession is an ephemeral practice session. It lives in the session store
// for the duration of the quiz and is never written to the database. The
// stored questions keep their answer-bearing fields so the server can score
// the submission later.
type QuizSession struct {
	ID         string          `json:"id"`
	UserID     uint            `json:"user_id"`
	Topic      string          `json:"topic"`
	Difficulty string          `json:"difficulty"`
	Questions  []Question      `json:"questions"`
	Settings   SessionSettings `json:"settings"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SessionQuestion is the client-facing view of a question inside an active
// session. No correct answer or explanation until the session is scored.
type SessionQuestion struct {
	ID      uint     `json:"id"`
	Topic   string   `json:"topic"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ClientQuestions strips the answer-bearing fields from the session's
// questions for the create-session response payload.
func (s *QuizSession) ClientQuestions() []SessionQuestion {
	out := make([]SessionQuestion, 0, len(s.Questions))
	for _, q := range s.Questions {
		out = append(out, SessionQuestion{
			ID:      q.ID,
			Topic:   q.Topic,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return out
}
