package model

import "fmt"

// Coordinate identifies a cell on the arena grid
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// At is shorthand for building a Coordinate
func At(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String renders the coordinate the way the engine does, e.g. "[3, 10]"
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d, %d]", c.X, c.Y)
}

// PlacementSet is a named, ordered layout of coordinates.
// Order is placement priority: earlier cells are attempted first.
type PlacementSet struct {
	name   string
	coords []Coordinate
}

// NewPlacementSet creates a PlacementSet from the given coordinates
func NewPlacementSet(name string, coords ...Coordinate) PlacementSet {
	c := make([]Coordinate, len(coords))
	copy(c, coords)
	return PlacementSet{name: name, coords: c}
}

// Name returns the layout name
func (p PlacementSet) Name() string {
	return p.name
}

// Coords returns a copy of the coordinates in priority order
func (p PlacementSet) Coords() []Coordinate {
	c := make([]Coordinate, len(p.coords))
	copy(c, p.coords)
	return c
}

// Len returns the number of coordinates in the set
func (p PlacementSet) Len() int {
	return len(p.coords)
}

// Contains reports whether c is part of the set
func (p PlacementSet) Contains(c Coordinate) bool {
	for _, pc := range p.coords {
		if pc == c {
			return true
		}
	}
	return false
}
