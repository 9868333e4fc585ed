package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrMissingUnitRole   = errors.New("unit role missing from game config")
	ErrDuplicateUnitKind = errors.New("unit kind bound to more than one role")
	ErrUnknownLayout     = errors.New("unknown defence layout")
	ErrInvalidGate       = errors.New("invalid attack gate expression")

	// Engine protocol errors
	ErrMalformedConfig = errors.New("malformed game config")
	ErrMalformedFrame  = errors.New("malformed turn frame")
	ErrTurnSubmitted   = errors.New("turn already submitted")
	ErrGameNotStarted  = errors.New("turn received before game config")

	// History errors
	ErrSessionNotFound = errors.New("session not found")
)
