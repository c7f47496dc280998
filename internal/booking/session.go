package booking

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("wizard session not found")

// Session pairs a wizard with its identity and a lock. All transitions
// on one session run strictly sequentially under the lock, so no step
// is entered before the previous step's side effects finished.
type Session struct {
	ID     string
	Wizard *Wizard

	mu       sync.Mutex
	lastUsed time.Time
}

// Do runs fn with exclusive access to the session's wizard and bumps
// the inactivity clock.
func (s *Session) Do(fn func(*Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return fn(s.Wizard)
}

// SessionStore keeps in-flight wizard sessions in memory, keyed by
// UUID. Abandoned sessions are purged after the TTL; there is no
// explicit cancellation, matching the original wizard's behavior when
// the user navigates away.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *SessionStore) Create() *Session {
	s := &Session{
		ID:       uuid.New().String(),
		Wizard:   NewWizard(),
		lastUsed: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// PurgeExpired drops sessions idle longer than the TTL and returns how
// many were removed. Called from the scheduler.
func (st *SessionStore) PurgeExpired() int {
	cutoff := time.Now().Add(-st.ttl)
	st.mu.Lock()
	defer st.mu.Unlock()
	purged := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastUsed.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			purged++
		}
	}
	return purged
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
