package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionID]*model.Session
	turns    map[model.SessionID][]model.TurnRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.Session),
		turns:    make(map[model.SessionID][]model.TurnRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.ID] = &cp
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *Storage) ListSessions(ctx context.Context, limit int) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*model.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		cp := *session
		sessions = append(sessions, &cp)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].StartedAt.Equal(sessions[j].StartedAt) {
			return sessions[i].ID > sessions[j].ID
		}
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// Turn operations

func (s *Storage) AppendTurn(ctx context.Context, rec model.TurnRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[rec.SessionID]; !ok {
		return model.ErrSessionNotFound
	}
	s.turns[rec.SessionID] = append(s.turns[rec.SessionID], rec)
	return nil
}

func (s *Storage) GetTurns(ctx context.Context, id model.SessionID) ([]model.TurnRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.sessions[id]; !ok {
		return nil, model.ErrSessionNotFound
	}
	turns := make([]model.TurnRecord, len(s.turns[id]))
	copy(turns, s.turns[id])
	return turns, nil
}
