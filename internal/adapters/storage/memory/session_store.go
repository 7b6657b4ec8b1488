package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

// SessionStore keeps every session's turn sequence in process memory.
// Sessions live for the lifetime of the process and are never expired
// or deleted, so growth is unbounded; Len lets a host watch the count.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID][]domain.Turn
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID][]domain.Turn),
	}
}

// Create allocates a new empty session under a fresh UUID.
func (s *SessionStore) Create() domain.SessionID {
	id := domain.SessionID(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = []domain.Turn{}
	return id
}

// AppendExchange appends the user turn then the bot turn as one atomic
// pair. The write lock is held across both appends so exchanges on the
// same session never interleave. An unknown id leaves every history
// unchanged.
func (s *SessionStore) AppendExchange(id domain.SessionID, userText, botText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}

	s.sessions[id] = append(history,
		domain.Turn{Role: domain.RoleUser, Message: userText},
		domain.Turn{Role: domain.RoleBot, Message: botText},
	)
	return nil
}

// History returns a copy of the session's ordered turn sequence, so
// callers cannot mutate stored state through the snapshot.
func (s *SessionStore) History(id domain.SessionID) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	out := make([]domain.Turn, len(history))
	copy(out, history)
	return out, nil
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
