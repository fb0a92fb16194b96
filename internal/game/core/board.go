package core

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// RegionID identifies a live region. The zero value means "no region".
type RegionID = uuid.UUID

// NoRegion is stored on tiles that belong to no region (sea tiles).
var NoRegion RegionID

// NoTeam marks an unclaimed tile.
const NoTeam = -1

// Tile represents a single hex on the map.
// Active: land (true) or sea (false); sea tiles never belong to a region.
// Team: NoTeam or 0..N-1.
// Region: id of the owning region, NoRegion if none.
// Piece: occupant, PieceNone if empty.
type Tile struct {
	Coord  Coordinate
	Active bool
	Team   int
	Region RegionID
	Piece  Piece
}

func (t *Tile) IsSea() bool      { return !t.Active }
func (t *Tile) IsClaimed() bool  { return t.Team != NoTeam }
func (t *Tile) HasRegion() bool  { return t.Region != NoRegion }
func (t *Tile) IsOccupied() bool { return t.Piece != PieceNone }

// Topology names the adjacency rule of a board.
type Topology int

const (
	// TopologyHexOddRow is a hex grid whose odd rows are shifted right.
	TopologyHexOddRow Topology = iota
)

func (t Topology) String() string {
	switch t {
	case TopologyHexOddRow:
		return "hex-odd-row"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

type Board struct {
	Rows, Cols int
	Topology   Topology
	T          []Tile // length = Rows*Cols (row-major)
}

func NewBoard(rows, cols int) *Board {
	b := &Board{Rows: rows, Cols: cols, Topology: TopologyHexOddRow, T: make([]Tile, rows*cols)}
	for i := range b.T {
		// All tiles start as unclaimed land
		b.T[i] = Tile{
			Coord:  FromIndex(i, cols),
			Active: true,
			Team:   NoTeam,
		}
	}
	return b
}

func (b *Board) Idx(c Coordinate) int { return c.ToIndex(b.Cols) }

// InBounds checks if the coordinate is within board boundaries
func (b *Board) InBounds(c Coordinate) bool {
	return c.IsValid(b.Rows, b.Cols)
}

// TileAt returns a pointer to the tile at c, or nil when c is out of bounds.
func (b *Board) TileAt(c Coordinate) *Tile {
	if !b.InBounds(c) {
		return nil
	}
	return &b.T[b.Idx(c)]
}

// GetTile returns a copy of the tile at c.
func (b *Board) GetTile(c Coordinate) (Tile, error) {
	t := b.TileAt(c)
	if t == nil {
		return Tile{}, fmt.Errorf("get tile %s: %w", c, ErrInvalidCoordinate)
	}
	return *t, nil
}

// SetTile overwrites the tile at c. The stored coordinate always matches c.
func (b *Board) SetTile(c Coordinate, tile Tile) error {
	t := b.TileAt(c)
	if t == nil {
		return fmt.Errorf("set tile %s: %w", c, ErrInvalidCoordinate)
	}
	tile.Coord = c
	*t = tile
	return nil
}

// All yields every tile in row-major order. The sequence may be ranged over
// any number of times.
func (b *Board) All() iter.Seq2[Coordinate, Tile] {
	return func(yield func(Coordinate, Tile) bool) {
		for i := range b.T {
			if !yield(FromIndex(i, b.Cols), b.T[i]) {
				return
			}
		}
	}
}

// Coordinates yields every coordinate in row-major order.
func (b *Board) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for i := range b.T {
			if !yield(FromIndex(i, b.Cols)) {
				return
			}
		}
	}
}

// ValidNeighbors returns the in-bounds neighbors of c.
func (b *Board) ValidNeighbors(c Coordinate) []Coordinate {
	return c.ValidNeighbors(b.Rows, b.Cols)
}

// ActiveNeighbors returns the in-bounds land neighbors of c.
func (b *Board) ActiveNeighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 6)
	for _, n := range c.Neighbors() {
		if t := b.TileAt(n); t != nil && t.Active {
			out = append(out, n)
		}
	}
	return out
}

// ActiveCount returns the number of land tiles.
func (b *Board) ActiveCount() int {
	n := 0
	for i := range b.T {
		if b.T[i].Active {
			n++
		}
	}
	return n
}

// Component is a connected set of coordinates in BFS discovery order.
type Component []Coordinate

// Set returns the component as a membership set.
func (c Component) Set() map[Coordinate]struct{} {
	set := make(map[Coordinate]struct{}, len(c))
	for _, coord := range c {
		set[coord] = struct{}{}
	}
	return set
}

// Connected runs a breadth-first search from start over active tiles that
// satisfy pred. Returns nil if start itself is out of bounds, inactive or
// rejected by pred.
func (b *Board) Connected(start Coordinate, pred func(*Tile) bool) Component {
	st := b.TileAt(start)
	if st == nil || !st.Active || !pred(st) {
		return nil
	}

	visited := make([]bool, len(b.T))
	visited[b.Idx(start)] = true
	queue := []Coordinate{start}
	var out Component

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		out = append(out, cur)
		for _, n := range cur.Neighbors() {
			t := b.TileAt(n)
			if t == nil || !t.Active {
				continue
			}
			idx := b.Idx(n)
			if visited[idx] || !pred(t) {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}
	return out
}

// ConnectedSameTeam collects every land tile reachable from start through
// tiles of start's team.
func (b *Board) ConnectedSameTeam(start Coordinate) Component {
	st := b.TileAt(start)
	if st == nil {
		return nil
	}
	team := st.Team
	return b.Connected(start, func(t *Tile) bool { return t.Team == team })
}

// ActiveConnected reports whether every land tile can reach every other land
// tile. A board without land is not connected.
func (b *Board) ActiveConnected() bool {
	for i := range b.T {
		if b.T[i].Active {
			comp := b.Connected(b.T[i].Coord, func(*Tile) bool { return true })
			return len(comp) == b.ActiveCount()
		}
	}
	return false
}
