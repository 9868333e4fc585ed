package strategy

import "github.com/mcoot/edgeguard/internal/model"

// Outcome is what a single policy step did during a turn
type Outcome struct {
	Step    string
	Actions []model.Action
	// Rebuild is the damage heuristic's verdict (defence step only)
	Rebuild bool
	// Skipped explains why a step issued no action, if it chose not to try
	Skipped string
}

func actionsFor(kind model.UnitKind, coords []model.Coordinate) []model.Action {
	actions := make([]model.Action, 0, len(coords))
	for _, c := range coords {
		actions = append(actions, model.Action{Kind: kind, At: c})
	}
	return actions
}
