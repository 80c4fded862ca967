package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"acututor/models"

	"github.com/redis/go-redis/v9"
)

// SessionStore holds ephemeral quiz sessions. Entries expire on their own
// once the TTL elapses; a session that can't be found is treated as expired.
type SessionStore interface {
	Save(ctx context.Context, session *models.QuizSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.QuizSession, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore returns a SessionStore backed by Redis. Sessions are
// stored as JSON under quiz:session:<id> with a TTL.
func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("quiz:session:%s", id)
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.QuizSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(session.ID), data, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*models.QuizSession, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session models.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

type memoryEntry struct {
	session   models.QuizSession
	expiresAt time.Time
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

// NewMemorySessionStore returns an in-process SessionStore for tests and
// single-node development without Redis.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]memoryEntry)}
}

func (s *memorySessionStore) Save(_ context.Context, session *models.QuizSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memoryEntry{session: *session, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*models.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
