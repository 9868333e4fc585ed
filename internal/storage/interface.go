package storage

import (
	"context"

	"github.com/mcoot/edgeguard/internal/model"
)

// Storage defines the interface for turn history persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	// ListSessions returns up to limit sessions, most recently started first.
	// A limit <= 0 returns all of them.
	ListSessions(ctx context.Context, limit int) ([]*model.Session, error)

	// Turn operations
	AppendTurn(ctx context.Context, rec model.TurnRecord) error
	GetTurns(ctx context.Context, id model.SessionID) ([]model.TurnRecord, error)
}
