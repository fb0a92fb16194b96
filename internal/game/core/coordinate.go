package core

import "fmt"

// Coordinate represents a tile position on the hex board as (row, col).
// Odd rows are shifted half a tile to the right of even rows.
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, cols int) Coordinate {
	return Coordinate{
		Row: idx / cols,
		Col: idx % cols,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(cols int) int {
	return c.Row*cols + c.Col
}

// Less orders coordinates row-major.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction names one of the six hex edges.
type Direction int

const (
	NorthWest Direction = iota
	NorthEast
	East
	SouthEast
	SouthWest
	West
)

// evenRowOffsets and oddRowOffsets hold the (dRow, dCol) step for each
// Direction, selected by the parity of the origin row.
var (
	evenRowOffsets = [6]Coordinate{
		NorthWest: {Row: -1, Col: -1},
		NorthEast: {Row: -1, Col: 0},
		East:      {Row: 0, Col: 1},
		SouthEast: {Row: 1, Col: 0},
		SouthWest: {Row: 1, Col: -1},
		West:      {Row: 0, Col: -1},
	}
	oddRowOffsets = [6]Coordinate{
		NorthWest: {Row: -1, Col: 0},
		NorthEast: {Row: -1, Col: 1},
		East:      {Row: 0, Col: 1},
		SouthEast: {Row: 1, Col: 1},
		SouthWest: {Row: 1, Col: 0},
		West:      {Row: 0, Col: -1},
	}
)

func offsetsFor(row int) *[6]Coordinate {
	if row%2 == 0 {
		return &evenRowOffsets
	}
	return &oddRowOffsets
}

// Move returns the coordinate one step away in the given direction.
func (c Coordinate) Move(d Direction) Coordinate {
	if d < NorthWest || d > West {
		return c
	}
	off := offsetsFor(c.Row)[d]
	return Coordinate{Row: c.Row + off.Row, Col: c.Col + off.Col}
}

// Neighbors returns the six hex neighbors of this coordinate in Direction
// order. Some may be out of bounds.
func (c Coordinate) Neighbors() [6]Coordinate {
	var out [6]Coordinate
	offsets := offsetsFor(c.Row)
	for i, off := range offsets {
		out[i] = Coordinate{Row: c.Row + off.Row, Col: c.Col + off.Col}
	}
	return out
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(rows, cols int) []Coordinate {
	valid := make([]Coordinate, 0, 6)
	for _, n := range c.Neighbors() {
		if n.IsValid(rows, cols) {
			valid = append(valid, n)
		}
	}
	return valid
}

// IsAdjacentTo reports whether other shares a hex edge with c.
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}
