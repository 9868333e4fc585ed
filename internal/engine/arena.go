package engine

import "github.com/mcoot/edgeguard/internal/model"

// Arena dimensions. The board is a diamond inscribed in a 28x28 square;
// this player owns rows 0-13.
const (
	ArenaSize = 28
	HalfArena = ArenaSize / 2
)

// InArena reports whether c lies inside the diamond
func InArena(c model.Coordinate) bool {
	if c.Y < 0 || c.Y >= ArenaSize {
		return false
	}
	row := c.Y + 1
	if c.Y >= HalfArena {
		row = ArenaSize - c.Y
	}
	start := HalfArena - row
	end := start + 2*row - 1
	return c.X >= start && c.X <= end
}

// OnOwnHalf reports whether c is on this player's half of the board
func OnOwnHalf(c model.Coordinate) bool {
	return c.Y >= 0 && c.Y < HalfArena
}

// OnOwnEdge reports whether c is on one of this player's two deploy edges
func OnOwnEdge(c model.Coordinate) bool {
	if !OnOwnHalf(c) {
		return false
	}
	return c.X+c.Y == HalfArena-1 || c.X-c.Y == HalfArena
}

// OwnEdges lists the deploy edge cells, bottom-left edge first
func OwnEdges() []model.Coordinate {
	edges := make([]model.Coordinate, 0, ArenaSize)
	for i := 0; i < HalfArena; i++ {
		edges = append(edges, model.At(HalfArena-1-i, i))
	}
	for i := 0; i < HalfArena; i++ {
		edges = append(edges, model.At(HalfArena+i, i))
	}
	return edges
}
