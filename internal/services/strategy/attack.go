package strategy

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mcoot/edgeguard/internal/model"
)

const (
	// StepAttack is the name of the attack step
	StepAttack = "attack"

	// DefaultThreshold is the minimum mobile balance before an attack
	DefaultThreshold = 10
	// DefaultAttackGate is evaluated after the threshold check
	DefaultAttackGate = "MP >= Threshold"
)

// DefaultLaunch is where the area attacker is deployed
var DefaultLaunch = model.At(3, 10)

// GateEnv is the environment attack gate expressions are evaluated against
type GateEnv struct {
	MP        float64 // mobile balance
	SP        float64 // structural balance
	Turn      int
	Threshold float64
}

// AttackOptions configures the attack step
type AttackOptions struct {
	Threshold float64
	Launch    model.Coordinate
	// Gate is an expr boolean expression over GateEnv. Empty uses DefaultAttackGate.
	Gate string
}

// DefaultAttackOptions returns the standard attack configuration
func DefaultAttackOptions() AttackOptions {
	return AttackOptions{
		Threshold: DefaultThreshold,
		Launch:    DefaultLaunch,
		Gate:      DefaultAttackGate,
	}
}

// CompileGate compiles an attack gate expression
func CompileGate(src string) (*vm.Program, error) {
	if src == "" {
		src = DefaultAttackGate
	}
	prog, err := expr.Compile(src, expr.Env(GateEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", model.ErrInvalidGate, src, err)
	}
	return prog, nil
}

// AttackPolicy deploys a single area attacker once enough mobile
// resource has accumulated
type AttackPolicy struct {
	kind      model.UnitKind
	launch    model.Coordinate
	threshold float64
	gate      *vm.Program
}

// NewAttackPolicy creates an AttackPolicy for the bound area attacker
func NewAttackPolicy(bindings model.UnitBindings, opts AttackOptions) (*AttackPolicy, error) {
	gate, err := CompileGate(opts.Gate)
	if err != nil {
		return nil, err
	}
	return &AttackPolicy{
		kind:      bindings.Kind(model.RoleAreaAttacker),
		launch:    opts.Launch,
		threshold: opts.Threshold,
		gate:      gate,
	}, nil
}

// Name implements Step
func (p *AttackPolicy) Name() string {
	return StepAttack
}

// Apply deploys at most one attacker at the launch coordinate.
// The mobile balance is read once, before the attempt.
func (p *AttackPolicy) Apply(gs GameState) Outcome {
	out := Outcome{Step: StepAttack}

	mp := gs.ResourceBalance(model.ResourceMobile)
	if mp < p.threshold {
		out.Skipped = fmt.Sprintf("mobile balance %.1f below threshold %.1f", mp, p.threshold)
		return out
	}

	env := GateEnv{
		MP:        mp,
		SP:        gs.ResourceBalance(model.ResourceStructural),
		Turn:      gs.TurnNumber(),
		Threshold: p.threshold,
	}
	result, err := vm.Run(p.gate, env)
	if err != nil {
		out.Skipped = fmt.Sprintf("gate error: %v", err)
		return out
	}
	if open, ok := result.(bool); !ok || !open {
		out.Skipped = "gate closed"
		return out
	}

	if !gs.CanSpawn(p.kind, p.launch) {
		out.Skipped = fmt.Sprintf("cannot spawn at %s", p.launch)
		return out
	}
	if gs.AttemptSpawn(p.kind, p.launch) {
		out.Actions = []model.Action{{Kind: p.kind, At: p.launch}}
	}
	return out
}
