package stores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// session:token:{jwt} -> user id
const keySessionToken = "session:token:%s"

// SessionStore tracks which issued tokens are still live, so SignOut
// actually revokes a token instead of waiting for JWT expiry. Tokens are
// persisted in Redis with a TTL matching the JWT when Redis is
// configured; otherwise an in-memory map serves the same contract and
// sessions simply end on restart.
type SessionStore struct {
	rdb *redis.Client

	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{
		rdb:    rdb,
		tokens: make(map[string]time.Time),
	}
}

// SignIn records token as a live session for userID. The transition is
// Anonymous -> Authenticated; credential checking happened upstream.
func (s *SessionStore) SignIn(ctx context.Context, userID int, token string, ttl time.Duration) error {
	if s.rdb != nil {
		return s.rdb.Set(ctx, fmt.Sprintf(keySessionToken, token), userID, ttl).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = time.Now().Add(ttl)
	return nil
}

// SignOut revokes the token. Idempotent; revoking an unknown token is a
// no-op, matching the Authenticated -> Anonymous transition.
func (s *SessionStore) SignOut(ctx context.Context, token string) error {
	if s.rdb != nil {
		return s.rdb.Del(ctx, fmt.Sprintf(keySessionToken, token)).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// Active reports whether the token belongs to a live session.
func (s *SessionStore) Active(ctx context.Context, token string) bool {
	if s.rdb != nil {
		n, err := s.rdb.Exists(ctx, fmt.Sprintf(keySessionToken, token)).Result()
		if err != nil {
			// Redis outage must not lock every user out; fall back to
			// trusting the JWT expiry alone.
			return true
		}
		return n > 0
	}

	s.mu.RLock()
	expiry, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return false
	}
	return true
}
