package strategy

import (
	"fmt"

	"github.com/mcoot/edgeguard/internal/model"
)

// Layout names
const (
	LayoutEdges = "edges"
	LayoutLine  = "line"
)

// Layout is a fixed defensive arrangement: a sparse set of key structures
// and a denser set of walls shielding them
type Layout struct {
	Name        string
	PrimaryRole model.UnitRole
	Primary     model.PlacementSet
	Walls       model.PlacementSet
}

// edgesLayout covers both corners with turrets behind a short wall
var edgesLayout = Layout{
	Name:        LayoutEdges,
	PrimaryRole: model.RoleTurret,
	Primary: model.NewPlacementSet("edge turrets",
		model.At(2, 11), model.At(9, 10), model.At(19, 10), model.At(25, 11),
	),
	Walls: model.NewPlacementSet("edge walls",
		model.At(0, 13), model.At(27, 13),
		model.At(1, 12), model.At(2, 12), model.At(3, 12),
		model.At(25, 12), model.At(26, 12), model.At(24, 12),
	),
}

// lineLayout spreads four generators across the front row, each capped by
// three walls
var lineLayout = Layout{
	Name:        LayoutLine,
	PrimaryRole: model.RoleGenerator,
	Primary: model.NewPlacementSet("line generators",
		model.At(3, 12), model.At(10, 12), model.At(17, 12), model.At(24, 12),
	),
	Walls: model.NewPlacementSet("line walls",
		model.At(2, 13), model.At(3, 13), model.At(4, 13),
		model.At(9, 13), model.At(10, 13), model.At(11, 13),
		model.At(16, 13), model.At(17, 13), model.At(18, 13),
		model.At(23, 13), model.At(24, 13), model.At(25, 13),
	),
}

// LayoutByName returns the named layout. An empty name selects the edges layout.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "", LayoutEdges:
		return edgesLayout, nil
	case LayoutLine:
		return lineLayout, nil
	default:
		return Layout{}, fmt.Errorf("%w: %q", model.ErrUnknownLayout, name)
	}
}

// LayoutNames returns all valid layout names
func LayoutNames() []string {
	return []string{LayoutEdges, LayoutLine}
}
