package algo

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/mcoot/edgeguard/internal/dependencies/clock"
	"github.com/mcoot/edgeguard/internal/engine"
	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/history"
	"github.com/mcoot/edgeguard/internal/services/strategy"
)

// Service plays one game over the engine protocol. It wires the policy
// pipeline once the game config arrives and hands each deploy frame to
// the turn orchestrator.
type Service struct {
	history *history.Service
	opts    strategy.Options
	out     io.Writer
	clock   clock.Clock
	logger  *slog.Logger

	// mu guards session, which the status API reads concurrently
	mu           sync.RWMutex
	session      *model.Session
	orchestrator *strategy.Orchestrator
	turnsPlayed  int
}

var _ engine.Handler = (*Service)(nil)

// NewService creates a new algo Service. Submitted turns are written to out.
func NewService(
	hist *history.Service,
	opts strategy.Options,
	out io.Writer,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		history: hist,
		opts:    opts,
		out:     out,
		clock:   clk,
		logger:  logger.With(slog.String("component", "algo")),
	}
}

// GameStart resolves unit bindings and builds the turn pipeline
func (s *Service) GameStart(ctx context.Context, cfg *engine.GameConfig) error {
	bindings := cfg.Bindings()
	pipeline, err := strategy.NewPipeline(bindings, s.opts)
	if err != nil {
		return err
	}

	layout, err := strategy.LayoutByName(s.opts.Layout)
	if err != nil {
		return err
	}

	var recorder strategy.Recorder
	session, err := s.history.StartSession(ctx, cfg.Digest(), bindings, layout.Name)
	if err != nil {
		// History is observational only; play on without it
		s.logger.Warn("turn history disabled", slog.String("error", err.Error()))
	} else {
		s.mu.Lock()
		s.session = session
		s.mu.Unlock()
		recorder = s.history.Recorder(session.ID)
	}

	engineSession := engine.NewSession(cfg, s.out)
	parser := strategy.TurnParserFunc(func(raw []byte) (strategy.GameState, error) {
		st, err := engineSession.NewState(raw)
		if err != nil {
			return nil, err
		}
		return st, nil
	})

	s.orchestrator = strategy.NewOrchestrator(parser, pipeline, bindings, recorder, s.clock, s.logger)
	s.turnsPlayed = 0

	s.logger.Info("configuring algo",
		slog.String("layout", layout.Name),
		slog.String("turret", string(bindings.Kind(model.RoleTurret))),
		slog.String("area_attacker", string(bindings.Kind(model.RoleAreaAttacker))),
	)
	return nil
}

// Turn plays a single deploy phase
func (s *Service) Turn(ctx context.Context, raw []byte) error {
	if s.orchestrator == nil {
		return model.ErrGameNotStarted
	}
	if _, err := s.orchestrator.OnTurn(ctx, raw); err != nil {
		return err
	}
	s.turnsPlayed++
	return nil
}

// GameEnd records the final result
func (s *Service) GameEnd(ctx context.Context, f *engine.Frame) error {
	s.logger.Info("game ended",
		slog.Int("turn", f.Turn+1),
		slog.Int("turns_played", s.turnsPlayed),
		slog.Float64("self_health", f.Self.Health),
		slog.Float64("enemy_health", f.Enemy.Health),
	)
	session := s.Session()
	if session == nil {
		return nil
	}
	if _, err := s.history.EndSession(ctx, session.ID, f.Turn+1, f.Self.Health, f.Enemy.Health); err != nil {
		s.logger.Warn("failed to record game result", slog.String("error", err.Error()))
	}
	return nil
}

// Session returns the history session of the current game, if any
func (s *Service) Session() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// TurnsPlayed returns how many turns have been submitted this game
func (s *Service) TurnsPlayed() int {
	return s.turnsPlayed
}
