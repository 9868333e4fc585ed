package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/edgeguard/internal/model"
)

// State is the collaborator for a single deploy phase. It tracks spending
// and occupancy as units are queued, and writes the queued actions to the
// engine on Submit.
type State struct {
	config   *GameConfig
	turn     int
	balances map[model.Resource]float64
	units    map[model.Coordinate][]model.Unit
	builds   []model.Action
	deploys  []model.Action
	out      io.Writer

	submitted bool
}

// NewState builds the per-turn state from a deploy frame. Submitted
// actions are written to out.
func NewState(cfg *GameConfig, f *Frame, out io.Writer) *State {
	s := &State{
		config: cfg,
		turn:   f.Turn + 1,
		balances: map[model.Resource]float64{
			model.ResourceStructural: f.Self.Structural,
			model.ResourceMobile:     f.Self.Mobile,
		},
		units: make(map[model.Coordinate][]model.Unit),
		out:   out,
	}
	s.place(f.SelfUnits, model.OwnerSelf)
	s.place(f.EnemyUnits, model.OwnerEnemy)
	return s
}

func (s *State) place(groups [][]RawUnit, owner model.Owner) {
	for i, group := range groups {
		// trailing groups are removal/upgrade markers, not units
		if i >= len(model.RoleOrder) || i >= len(s.config.Units) {
			break
		}
		kind := model.UnitKind(s.config.Units[i].Shorthand)
		for _, u := range group {
			c := model.At(u.X, u.Y)
			s.units[c] = append(s.units[c], model.Unit{
				Kind:   kind,
				Owner:  owner,
				At:     c,
				Health: u.Health,
			})
		}
	}
}

// ResourceBalance implements strategy.GameState
func (s *State) ResourceBalance(r model.Resource) float64 {
	return s.balances[r]
}

// TurnNumber implements strategy.GameState
func (s *State) TurnNumber() int {
	return s.turn
}

// StationaryUnitAt implements strategy.GameState
func (s *State) StationaryUnitAt(c model.Coordinate) (model.Unit, bool) {
	for _, u := range s.units[c] {
		if s.config.bindings.IsStationary(u.Kind) {
			return u, true
		}
	}
	return model.Unit{}, false
}

// CanSpawn implements strategy.GameState
func (s *State) CanSpawn(kind model.UnitKind, c model.Coordinate) bool {
	role, ok := s.config.bindings.Role(kind)
	if !ok {
		return false
	}
	if !InArena(c) || !OnOwnHalf(c) {
		return false
	}
	if s.balances[s.config.Pool(kind)] < s.config.Cost(kind) {
		return false
	}
	if _, blocked := s.StationaryUnitAt(c); blocked {
		return false
	}
	if role.Stationary() {
		return len(s.units[c]) == 0
	}
	return OnOwnEdge(c)
}

// AttemptSpawn implements strategy.GameState
func (s *State) AttemptSpawn(kind model.UnitKind, c model.Coordinate) bool {
	if s.submitted || !s.CanSpawn(kind, c) {
		return false
	}
	s.balances[s.config.Pool(kind)] -= s.config.Cost(kind)
	s.units[c] = append(s.units[c], model.Unit{Kind: kind, Owner: model.OwnerSelf, At: c})

	a := model.Action{Kind: kind, At: c}
	if s.config.bindings.IsStationary(kind) {
		s.builds = append(s.builds, a)
	} else {
		s.deploys = append(s.deploys, a)
	}
	return true
}

// Builds returns the queued stationary placements
func (s *State) Builds() []model.Action {
	return append([]model.Action(nil), s.builds...)
}

// Deploys returns the queued mobile deployments
func (s *State) Deploys() []model.Action {
	return append([]model.Action(nil), s.deploys...)
}

// Submit implements strategy.GameState. The build queue and deploy queue
// are each written as one line.
func (s *State) Submit() error {
	if s.submitted {
		return fmt.Errorf("turn %d: %w", s.turn, model.ErrTurnSubmitted)
	}
	s.submitted = true

	var buf bytes.Buffer
	for _, queue := range [][]model.Action{s.builds, s.deploys} {
		line, err := encodeQueue(queue)
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write turn %d: %w", s.turn, err)
	}
	return nil
}

func encodeQueue(queue []model.Action) ([]byte, error) {
	entries := make([][]any, 0, len(queue))
	for _, a := range queue {
		entries = append(entries, []any{string(a.Kind), a.At.X, a.At.Y})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode actions: %w", err)
	}
	return b, nil
}
