package google

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"

	"github.com/google/uuid"
)

const defaultStateTTL = 10 * time.Minute

// ErrStateInvalid is returned for unknown, expired or already used states.
var ErrStateInvalid = errors.New("oauth state invalid or expired")

// StateStore keeps issued CSRF states in memory. States are single use.
type StateStore struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	states map[string]*service.OAuthState
}

// NewStateStore creates a store whose states expire after ten minutes.
func NewStateStore() service.OAuthStateStore {
	return newStateStore(defaultStateTTL, time.Now)
}

func newStateStore(ttl time.Duration, now func() time.Time) *StateStore {
	return &StateStore{
		ttl:    ttl,
		now:    now,
		states: make(map[string]*service.OAuthState),
	}
}

// Issue generates a cryptographically random state and remembers it.
func (s *StateStore) Issue(flow service.OAuthFlow, userID *uuid.UUID) (*service.OAuthState, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "failed to generate oauth state")
	}

	state := &service.OAuthState{
		Value:     hex.EncodeToString(buf),
		Flow:      flow,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpiredLocked()
	s.states[state.Value] = state

	return state, nil
}

// Consume validates and removes a state.
func (s *StateStore) Consume(value string) (*service.OAuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[value]
	if !ok {
		return nil, ErrStateInvalid
	}
	delete(s.states, value)

	if s.now().After(state.ExpiresAt) {
		return nil, ErrStateInvalid
	}

	return state, nil
}

func (s *StateStore) cleanupExpiredLocked() {
	now := s.now()
	for value, state := range s.states {
		if now.After(state.ExpiresAt) {
			delete(s.states, value)
		}
	}
}
