package strategy_test

import (
	"fmt"
	"strings"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/strategy"
)

const (
	kindWall      model.UnitKind = "FF"
	kindGenerator model.UnitKind = "EF"
	kindTurret    model.UnitKind = "DF"
	kindFast      model.UnitKind = "PI"
	kindArea      model.UnitKind = "EI"
	kindDisruptor model.UnitKind = "SI"
)

func testBindings() model.UnitBindings {
	b, err := model.NewUnitBindings(map[model.UnitRole]model.UnitKind{
		model.RoleWall:         kindWall,
		model.RoleGenerator:    kindGenerator,
		model.RoleTurret:       kindTurret,
		model.RoleFastAttacker: kindFast,
		model.RoleAreaAttacker: kindArea,
		model.RoleDisruptor:    kindDisruptor,
	})
	if err != nil {
		panic(err)
	}
	return b
}

// fakeState is an in-memory GameState that records every call made on it
type fakeState struct {
	turn      int
	balances  map[model.Resource]float64
	costs     map[model.UnitKind]float64
	bindings  model.UnitBindings
	blocked   map[model.Coordinate]bool
	units     map[model.Coordinate]model.Unit
	calls     []string
	actions   []model.Action
	submits   int
	submitErr error
}

var _ strategy.GameState = (*fakeState)(nil)

func newFakeState(structural, mobile float64) *fakeState {
	return &fakeState{
		turn: 1,
		balances: map[model.Resource]float64{
			model.ResourceStructural: structural,
			model.ResourceMobile:     mobile,
		},
		costs: map[model.UnitKind]float64{
			kindWall:      1,
			kindGenerator: 4,
			kindTurret:    3,
			kindFast:      1,
			kindArea:      3,
			kindDisruptor: 1,
		},
		bindings: testBindings(),
		blocked:  make(map[model.Coordinate]bool),
		units:    make(map[model.Coordinate]model.Unit),
	}
}

func (f *fakeState) occupy(owner model.Owner, kind model.UnitKind, coords ...model.Coordinate) {
	for _, c := range coords {
		f.units[c] = model.Unit{Kind: kind, Owner: owner, At: c, Health: 60}
	}
}

func (f *fakeState) pool(kind model.UnitKind) model.Resource {
	if f.bindings.IsStationary(kind) {
		return model.ResourceStructural
	}
	return model.ResourceMobile
}

func (f *fakeState) legal(kind model.UnitKind, c model.Coordinate) bool {
	if f.blocked[c] {
		return false
	}
	if f.balances[f.pool(kind)] < f.costs[kind] {
		return false
	}
	if _, taken := f.units[c]; taken {
		return false
	}
	return true
}

func (f *fakeState) ResourceBalance(r model.Resource) float64 {
	f.calls = append(f.calls, "balance:"+string(r))
	return f.balances[r]
}

func (f *fakeState) CanSpawn(kind model.UnitKind, c model.Coordinate) bool {
	f.calls = append(f.calls, fmt.Sprintf("can:%s@%s", kind, c))
	return f.legal(kind, c)
}

func (f *fakeState) AttemptSpawn(kind model.UnitKind, c model.Coordinate) bool {
	f.calls = append(f.calls, fmt.Sprintf("spawn:%s@%s", kind, c))
	if !f.legal(kind, c) {
		return false
	}
	f.balances[f.pool(kind)] -= f.costs[kind]
	if f.bindings.IsStationary(kind) {
		f.occupy(model.OwnerSelf, kind, c)
	}
	f.actions = append(f.actions, model.Action{Kind: kind, At: c})
	return true
}

func (f *fakeState) StationaryUnitAt(c model.Coordinate) (model.Unit, bool) {
	f.calls = append(f.calls, fmt.Sprintf("occupancy:%s", c))
	u, ok := f.units[c]
	return u, ok
}

func (f *fakeState) TurnNumber() int {
	return f.turn
}

func (f *fakeState) Submit() error {
	f.calls = append(f.calls, "submit")
	f.submits++
	return f.submitErr
}

// count returns how many recorded calls have the given prefix
func (f *fakeState) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// indexOf returns the position of the first call with the given prefix, or -1
func (f *fakeState) indexOf(prefix string) int {
	for i, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// lastIndexOf returns the position of the last call with the given prefix, or -1
func (f *fakeState) lastIndexOf(prefix string) int {
	for i := len(f.calls) - 1; i >= 0; i-- {
		c := f.calls[i]
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}
