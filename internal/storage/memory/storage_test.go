package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) session(id model.SessionID, offset time.Duration) *model.Session {
	return &model.Session{
		ID:           id,
		ConfigDigest: "abc",
		Layout:       "edges",
		Bindings:     map[model.UnitRole]model.UnitKind{model.RoleTurret: "DF"},
		StartedAt:    s.now.Add(offset),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	err := s.storage.SaveSession(s.ctx, s.session("s1", 0))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(model.SessionID("s1"), retrieved.ID)
	s.Equal("edges", retrieved.Layout)
	s.Equal(model.UnitKind("DF"), retrieved.Bindings[model.RoleTurret])
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveSessionOverwrites() {
	sess := s.session("s1", 0)
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	sess.Result = &model.SessionResult{Turn: 40, SelfHealth: 12, EnemyHealth: 0}
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	retrieved, err := s.storage.GetSession(s.ctx, "s1")
	s.Require().NoError(err)
	s.Require().NotNil(retrieved.Result)
	s.Equal(40, retrieved.Result.Turn)
}

func (s *StorageSuite) TestListSessionsNewestFirst() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("old", 0)))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("new", 2*time.Hour)))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("mid", time.Hour)))

	all, err := s.storage.ListSessions(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.SessionID("new"), all[0].ID)
	s.Equal(model.SessionID("mid"), all[1].ID)
	s.Equal(model.SessionID("old"), all[2].ID)

	limited, err := s.storage.ListSessions(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *StorageSuite) TestListSessionsEmpty() {
	sessions, err := s.storage.ListSessions(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(sessions)
}

// Turn tests

func (s *StorageSuite) TestAppendAndGetTurns() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("s1", 0)))

	for turn := 1; turn <= 3; turn++ {
		err := s.storage.AppendTurn(s.ctx, model.TurnRecord{
			SessionID: "s1",
			Turn:      turn,
			Builds:    []model.Action{{Kind: "DF", At: model.At(2, 11)}},
		})
		s.Require().NoError(err)
	}

	turns, err := s.storage.GetTurns(s.ctx, "s1")
	s.Require().NoError(err)
	s.Require().Len(turns, 3)
	s.Equal(1, turns[0].Turn)
	s.Equal(3, turns[2].Turn)
	s.Equal(model.At(2, 11), turns[0].Builds[0].At)
}

func (s *StorageSuite) TestGetTurnsNoneYet() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("s1", 0)))
	turns, err := s.storage.GetTurns(s.ctx, "s1")
	s.Require().NoError(err)
	s.Empty(turns)
}

func (s *StorageSuite) TestTurnsUnknownSession() {
	err := s.storage.AppendTurn(s.ctx, model.TurnRecord{SessionID: "missing", Turn: 1})
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.storage.GetTurns(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetTurnsReturnsCopy() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("s1", 0)))
	s.Require().NoError(s.storage.AppendTurn(s.ctx, model.TurnRecord{SessionID: "s1", Turn: 1}))

	turns, err := s.storage.GetTurns(s.ctx, "s1")
	s.Require().NoError(err)
	turns[0].Turn = 99

	again, err := s.storage.GetTurns(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(1, again[0].Turn)
}
