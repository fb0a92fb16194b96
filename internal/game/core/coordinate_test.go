package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 5)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 5, c.Col)
}

func TestCoordinate_IndexRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		index int
		cols  int
		coord Coordinate
	}{
		{"TopLeft", 0, 10, Coordinate{0, 0}},
		{"EndOfFirstRow", 9, 10, Coordinate{0, 9}},
		{"SecondRow", 10, 10, Coordinate{1, 0}},
		{"Middle", 55, 10, Coordinate{5, 5}},
		{"NarrowBoard", 7, 4, Coordinate{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.coord, FromIndex(tt.index, tt.cols))
			assert.Equal(t, tt.index, tt.coord.ToIndex(tt.cols))
		})
	}
}

func TestCoordinate_Neighbors(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinate
		expected [6]Coordinate
	}{
		{
			name:  "even row",
			coord: Coordinate{2, 2},
			expected: [6]Coordinate{
				{1, 1}, {1, 2}, {2, 3}, {3, 2}, {3, 1}, {2, 1},
			},
		},
		{
			name:  "odd row",
			coord: Coordinate{1, 1},
			expected: [6]Coordinate{
				{0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {1, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coord.Neighbors())
		})
	}
}

func TestCoordinate_NeighborsAreSymmetric(t *testing.T) {
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			c := Coordinate{row, col}
			for _, n := range c.Neighbors() {
				assert.True(t, n.IsAdjacentTo(c), "%s lists %s but not the reverse", c, n)
			}
		}
	}
}

func TestCoordinate_MoveMatchesNeighbors(t *testing.T) {
	for _, c := range []Coordinate{{0, 0}, {1, 3}, {4, 2}} {
		neighbors := c.Neighbors()
		for d := NorthWest; d <= West; d++ {
			assert.Equal(t, neighbors[d], c.Move(d))
		}
		assert.Equal(t, c, c.Move(Direction(42)))
	}
}

func TestCoordinate_ValidNeighbors(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		count int
	}{
		{"top-left corner", Coordinate{0, 0}, 2},
		{"interior", Coordinate{2, 2}, 6},
		{"odd row right edge", Coordinate{1, 4}, 3},
		{"bottom-right corner", Coordinate{4, 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := tt.coord.ValidNeighbors(5, 5)
			assert.Len(t, valid, tt.count)
			for _, n := range valid {
				assert.True(t, n.IsValid(5, 5))
			}
		})
	}
}

func TestCoordinate_IsAdjacentTo(t *testing.T) {
	c := Coordinate{2, 2}
	assert.True(t, c.IsAdjacentTo(Coordinate{1, 1}))
	assert.False(t, c.IsAdjacentTo(Coordinate{1, 3}), "diagonal on an even row is not an edge")
	assert.False(t, c.IsAdjacentTo(c))
}

func TestCoordinate_Less(t *testing.T) {
	assert.True(t, Coordinate{0, 5}.Less(Coordinate{1, 0}))
	assert.True(t, Coordinate{1, 0}.Less(Coordinate{1, 1}))
	assert.False(t, Coordinate{1, 1}.Less(Coordinate{1, 1}))
	assert.Equal(t, "(3,4)", Coordinate{3, 4}.String())
}
