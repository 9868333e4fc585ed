package strategy

import "github.com/mcoot/edgeguard/internal/model"

// Build tries to place kind at every coordinate in order, skipping cells
// where placement is illegal or unaffordable. It returns the coordinates
// that were placed.
func Build(gs GameState, kind model.UnitKind, coords []model.Coordinate) []model.Coordinate {
	var placed []model.Coordinate
	for _, c := range coords {
		if !gs.CanSpawn(kind, c) {
			continue
		}
		if gs.AttemptSpawn(kind, c) {
			placed = append(placed, c)
		}
	}
	return placed
}

// NeedsRebuild reports whether any coordinate in the given groups is missing
// one of our stationary units. Groups with no coordinates never trigger a
// rebuild.
func NeedsRebuild(gs GameState, groups ...model.PlacementSet) bool {
	for _, group := range groups {
		for _, c := range group.Coords() {
			unit, ok := gs.StationaryUnitAt(c)
			if !ok || unit.Owner != model.OwnerSelf {
				return true
			}
		}
	}
	return false
}
