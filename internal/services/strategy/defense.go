package strategy

import "github.com/mcoot/edgeguard/internal/model"

// StepDefense is the name of the defence step
const StepDefense = "defense"

// DefensePolicy (re)builds a fixed layout every turn
type DefensePolicy struct {
	layout  Layout
	primary model.UnitKind
	wall    model.UnitKind
}

// NewDefensePolicy binds a layout to the engine's unit kinds
func NewDefensePolicy(layout Layout, bindings model.UnitBindings) *DefensePolicy {
	return &DefensePolicy{
		layout:  layout,
		primary: bindings.Kind(layout.PrimaryRole),
		wall:    bindings.Kind(model.RoleWall),
	}
}

// Name implements Step
func (p *DefensePolicy) Name() string {
	return StepDefense
}

// Layout returns the layout this policy builds
func (p *DefensePolicy) Layout() Layout {
	return p.layout
}

// Apply checks the layout for missing structures and then attempts every
// placement in it. The rebuild verdict is reported but does not gate the
// builds: cells that are already occupied simply fail their legality check.
func (p *DefensePolicy) Apply(gs GameState) Outcome {
	rebuild := NeedsRebuild(gs, p.layout.Primary, p.layout.Walls)

	var actions []model.Action
	actions = append(actions, actionsFor(p.primary, Build(gs, p.primary, p.layout.Primary.Coords()))...)
	actions = append(actions, actionsFor(p.wall, Build(gs, p.wall, p.layout.Walls.Coords()))...)

	return Outcome{
		Step:    StepDefense,
		Actions: actions,
		Rebuild: rebuild,
	}
}
