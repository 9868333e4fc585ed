package factory

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/edgeguard/internal/config"
	"github.com/mcoot/edgeguard/internal/dependencies/mocks"
	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/strategy"
	"github.com/mcoot/edgeguard/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	// Out captures every submitted turn
	Out *bytes.Buffer
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the default strategy
func NewTestApp() *TestApp {
	return NewTestAppWithStrategy(DefaultStrategySettings())
}

// NewTestAppWithStrategy creates a test App with the given strategy settings
func NewTestAppWithStrategy(strategyCfg config.StrategySettings) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, strategyCfg, out, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Out:        out,
	}
}

// DefaultStrategySettings mirrors the configuration defaults
func DefaultStrategySettings() config.StrategySettings {
	return config.StrategySettings{
		Layout:          strategy.LayoutEdges,
		AttackThreshold: strategy.DefaultThreshold,
		AttackGate:      strategy.DefaultAttackGate,
		Launch:          config.LaunchSettings{X: strategy.DefaultLaunch.X, Y: strategy.DefaultLaunch.Y},
	}
}

// ActiveSessionID returns the id of the game in progress, or "" before one starts
func (t *TestApp) ActiveSessionID() model.SessionID {
	if s := t.AlgoService.Session(); s != nil {
		return s.ID
	}
	return ""
}
