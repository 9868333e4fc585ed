package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/edgeguard/internal/dependencies/clock"
	"github.com/mcoot/edgeguard/internal/dependencies/random"
	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/strategy"
	"github.com/mcoot/edgeguard/internal/storage"
)

// sessionIDLength is the number of random characters in a session id
const sessionIDLength = 16

// Service records what the bot did in each game. Nothing it stores is
// read back when deciding a turn.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new history Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "history")),
	}
}

// StartSession creates and persists a new session
func (s *Service) StartSession(ctx context.Context, configDigest string, bindings model.UnitBindings, layout string) (*model.Session, error) {
	session := &model.Session{
		ID:           model.SessionID(s.random.String(sessionIDLength, random.SessionAlphabet)),
		ConfigDigest: configDigest,
		Layout:       layout,
		Bindings:     bindings.Map(),
		StartedAt:    s.clock.Now(),
	}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("layout", layout),
	)
	return session, nil
}

// EndSession attaches the final result to a session
func (s *Service) EndSession(ctx context.Context, id model.SessionID, turn int, selfHealth, enemyHealth float64) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Result = &model.SessionResult{
		Turn:        turn,
		SelfHealth:  selfHealth,
		EnemyHealth: enemyHealth,
		EndedAt:     s.clock.Now(),
	}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// GetSession returns a session by id
func (s *Service) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return s.storage.GetSession(ctx, id)
}

// ListSessions returns up to limit sessions, newest first
func (s *Service) ListSessions(ctx context.Context, limit int) ([]*model.Session, error) {
	return s.storage.ListSessions(ctx, limit)
}

// GetTurns returns every recorded turn of a session in play order
func (s *Service) GetTurns(ctx context.Context, id model.SessionID) ([]model.TurnRecord, error) {
	return s.storage.GetTurns(ctx, id)
}

// Recorder returns a strategy.Recorder that appends turns to the session
func (s *Service) Recorder(id model.SessionID) strategy.Recorder {
	return &recorder{storage: s.storage, sessionID: id}
}

type recorder struct {
	storage   storage.Storage
	sessionID model.SessionID
}

func (r *recorder) RecordTurn(ctx context.Context, rec model.TurnRecord) error {
	rec.SessionID = r.sessionID
	return r.storage.AppendTurn(ctx, rec)
}
