package strategy

import "github.com/mcoot/edgeguard/internal/model"

// Step is one policy stage of a turn
type Step interface {
	Name() string
	Apply(gs GameState) Outcome
}

// Pipeline runs its steps in order over a single GameState
type Pipeline []Step

// Options selects how the standard pipeline is built
type Options struct {
	Layout string
	Attack AttackOptions
}

// DefaultOptions returns the edges layout with the standard attack gate
func DefaultOptions() Options {
	return Options{
		Layout: LayoutEdges,
		Attack: DefaultAttackOptions(),
	}
}

// NewPipeline builds the defence-then-attack pipeline for the given bindings
func NewPipeline(bindings model.UnitBindings, opts Options) (Pipeline, error) {
	layout, err := LayoutByName(opts.Layout)
	if err != nil {
		return nil, err
	}
	attack, err := NewAttackPolicy(bindings, opts.Attack)
	if err != nil {
		return nil, err
	}
	return Pipeline{
		NewDefensePolicy(layout, bindings),
		attack,
	}, nil
}

// Run applies every step in order and returns their outcomes
func (p Pipeline) Run(gs GameState) []Outcome {
	outcomes := make([]Outcome, 0, len(p))
	for _, step := range p {
		outcomes = append(outcomes, step.Apply(gs))
	}
	return outcomes
}
