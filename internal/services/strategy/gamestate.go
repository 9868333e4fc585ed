package strategy

import "github.com/mcoot/edgeguard/internal/model"

// GameState is the per-turn view of the battlefield the policies act on.
// A GameState is only valid for the turn it was issued for.
type GameState interface {
	// ResourceBalance returns the current amount of the given currency
	ResourceBalance(r model.Resource) float64
	// CanSpawn reports whether kind can legally and affordably be placed at c
	CanSpawn(kind model.UnitKind, c model.Coordinate) bool
	// AttemptSpawn places kind at c if legal, spending resources and
	// queueing the action. Returns false and does nothing if illegal.
	AttemptSpawn(kind model.UnitKind, c model.Coordinate) bool
	// StationaryUnitAt returns the stationary unit occupying c, if any
	StationaryUnitAt(c model.Coordinate) (model.Unit, bool)
	// TurnNumber is the 1-based index of the current turn
	TurnNumber() int
	// Submit finalizes the turn and transmits queued actions.
	// Must be called exactly once per turn.
	Submit() error
}
