package model

import "time"

// SessionID uniquely identifies one played game
type SessionID string

// Session describes a single game played by the bot
type Session struct {
	ID           SessionID             `json:"id"`
	ConfigDigest string                `json:"config_digest"`
	Layout       string                `json:"layout"`
	Bindings     map[UnitRole]UnitKind `json:"bindings"`
	StartedAt    time.Time             `json:"started_at"`
	Result       *SessionResult        `json:"result,omitempty"`
}

// SessionResult is the state of the game when the engine ended it
type SessionResult struct {
	Turn        int       `json:"turn"`
	SelfHealth  float64   `json:"self_health"`
	EnemyHealth float64   `json:"enemy_health"`
	EndedAt     time.Time `json:"ended_at"`
}

// Won reports whether the bot finished with more health than its opponent
func (r SessionResult) Won() bool {
	return r.SelfHealth > r.EnemyHealth
}

// TurnRecord is what the bot did during one deploy phase.
// It is written after submission and never read back by the policy.
type TurnRecord struct {
	SessionID       SessionID `json:"session_id"`
	Turn            int       `json:"turn"`
	Structural      float64   `json:"structural"` // balance before any action
	Mobile          float64   `json:"mobile"`     // balance before any action
	RebuildSignaled bool      `json:"rebuild_signaled"`
	Builds          []Action  `json:"builds"`
	Deploys         []Action  `json:"deploys"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// ActionCount returns the total number of spawns in the turn
func (t TurnRecord) ActionCount() int {
	return len(t.Builds) + len(t.Deploys)
}
