package engine

import (
	"encoding/json"
	"fmt"

	"github.com/mcoot/edgeguard/internal/model"
)

// Phase of a turn frame
type Phase int

const (
	PhaseDeploy Phase = 0
	PhaseAction Phase = 1
	PhaseEnd    Phase = 2
)

func (p Phase) String() string {
	switch p {
	case PhaseDeploy:
		return "deploy"
	case PhaseAction:
		return "action"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PlayerStats is one side's [health, structural, mobile, time] tuple
type PlayerStats struct {
	Health     float64
	Structural float64
	Mobile     float64
	TimeMS     float64
}

// Frame is one decoded turn frame
type Frame struct {
	Phase       Phase
	Turn        int // 0-based, as the engine counts
	FrameNumber int
	Self        PlayerStats
	Enemy       PlayerStats

	// SelfUnits and EnemyUnits are indexed like the config unit table
	SelfUnits  [][]RawUnit
	EnemyUnits [][]RawUnit
}

// RawUnit is one [x, y, health, id] entry
type RawUnit struct {
	X      int
	Y      int
	Health float64
	ID     string
}

type wireFrame struct {
	TurnInfo []int                 `json:"turnInfo"`
	P1Stats  []float64             `json:"p1Stats"`
	P2Stats  []float64             `json:"p2Stats"`
	P1Units  [][][]json.RawMessage `json:"p1Units"`
	P2Units  [][][]json.RawMessage `json:"p2Units"`
}

// IsFrame reports whether a protocol line is a turn frame rather than the
// game config
func IsFrame(raw []byte) bool {
	var head struct {
		TurnInfo []int `json:"turnInfo"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return false
	}
	return len(head.TurnInfo) > 0
}

// ParseFrame decodes a turn frame
func ParseFrame(raw []byte) (*Frame, error) {
	var w wireFrame
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedFrame, err)
	}
	if len(w.TurnInfo) < 2 {
		return nil, fmt.Errorf("%w: turnInfo has %d entries", model.ErrMalformedFrame, len(w.TurnInfo))
	}

	f := &Frame{
		Phase: Phase(w.TurnInfo[0]),
		Turn:  w.TurnInfo[1],
	}
	if len(w.TurnInfo) > 2 {
		f.FrameNumber = w.TurnInfo[2]
	}

	var err error
	if f.Self, err = parseStats(w.P1Stats); err != nil {
		return nil, fmt.Errorf("%w: p1Stats: %v", model.ErrMalformedFrame, err)
	}
	if f.Enemy, err = parseStats(w.P2Stats); err != nil {
		return nil, fmt.Errorf("%w: p2Stats: %v", model.ErrMalformedFrame, err)
	}
	if f.SelfUnits, err = parseUnits(w.P1Units); err != nil {
		return nil, fmt.Errorf("%w: p1Units: %v", model.ErrMalformedFrame, err)
	}
	if f.EnemyUnits, err = parseUnits(w.P2Units); err != nil {
		return nil, fmt.Errorf("%w: p2Units: %v", model.ErrMalformedFrame, err)
	}
	return f, nil
}

func parseStats(s []float64) (PlayerStats, error) {
	if len(s) == 0 {
		return PlayerStats{}, nil
	}
	if len(s) < 3 {
		return PlayerStats{}, fmt.Errorf("expected at least 3 values, got %d", len(s))
	}
	ps := PlayerStats{Health: s[0], Structural: s[1], Mobile: s[2]}
	if len(s) > 3 {
		ps.TimeMS = s[3]
	}
	return ps, nil
}

func parseUnits(groups [][][]json.RawMessage) ([][]RawUnit, error) {
	out := make([][]RawUnit, len(groups))
	for i, group := range groups {
		out[i] = make([]RawUnit, 0, len(group))
		for _, entry := range group {
			if len(entry) < 3 {
				return nil, fmt.Errorf("unit entry has %d fields", len(entry))
			}
			var u RawUnit
			var x, y float64
			if err := json.Unmarshal(entry[0], &x); err != nil {
				return nil, fmt.Errorf("unit x: %v", err)
			}
			if err := json.Unmarshal(entry[1], &y); err != nil {
				return nil, fmt.Errorf("unit y: %v", err)
			}
			if err := json.Unmarshal(entry[2], &u.Health); err != nil {
				return nil, fmt.Errorf("unit health: %v", err)
			}
			if len(entry) > 3 {
				// ids are strings in current engines and numbers in older ones
				if err := json.Unmarshal(entry[3], &u.ID); err != nil {
					u.ID = string(entry[3])
				}
			}
			u.X, u.Y = int(x), int(y)
			out[i] = append(out[i], u)
		}
	}
	return out, nil
}
