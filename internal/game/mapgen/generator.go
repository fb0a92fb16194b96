package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

var (
	// ErrGenerationFailed is returned when no attempt produced a single
	// connected landmass.
	ErrGenerationFailed = errors.New("map generation failed")
	// ErrInvalidMapConfig is returned for configurations that can never
	// produce a map.
	ErrInvalidMapConfig = errors.New("invalid map config")
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Rows        int
	Cols        int
	LandPoints  int // seeds that grow into land
	SeaPoints   int // seeds that grow into sea
	Teams       int
	MaxAttempts int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(rows, cols, teams int) MapConfig {
	tiles := rows * cols
	return MapConfig{
		Rows:        rows,
		Cols:        cols,
		LandPoints:  max(1, tiles/12),
		SeaPoints:   tiles / 30,
		Teams:       teams,
		MaxAttempts: 100,
	}
}

// Validate checks that the configuration can produce a map at all.
func (c MapConfig) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidMapConfig, c.Rows, c.Cols)
	case c.LandPoints < 1:
		return fmt.Errorf("%w: need at least one land point", ErrInvalidMapConfig)
	case c.SeaPoints < 0:
		return fmt.Errorf("%w: sea points must be non-negative", ErrInvalidMapConfig)
	case c.LandPoints+c.SeaPoints > c.Rows*c.Cols:
		return fmt.Errorf("%w: %d seed points do not fit on %d tiles", ErrInvalidMapConfig, c.LandPoints+c.SeaPoints, c.Rows*c.Cols)
	case c.Teams < 1:
		return fmt.Errorf("%w: need at least one team", ErrInvalidMapConfig)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidMapConfig)
	}
	return nil
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateMap grows land and sea from random seed points until every land
// tile is reachable from every other, then deals each land tile to a random
// team. Gives up with ErrGenerationFailed after MaxAttempts tries.
func (g *Generator) GenerateMap() (*core.Board, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	board := core.NewBoard(g.config.Rows, g.config.Cols)
	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		g.growLandmass(board)
		if board.ActiveConnected() {
			g.assignTeams(board)
			return board, nil
		}
	}
	return nil, fmt.Errorf("%w: no connected landmass after %d attempts", ErrGenerationFailed, g.config.MaxAttempts)
}

// growLandmass picks distinct seed points and floods outward from all of
// them at once. Each reached tile copies the activity of the tile that
// reached it first.
func (g *Generator) growLandmass(b *core.Board) {
	seeds := g.rng.Perm(len(b.T))[:g.config.LandPoints+g.config.SeaPoints]

	reached := make([]bool, len(b.T))
	queue := make([]core.Coordinate, 0, len(b.T))
	for i, idx := range seeds {
		c := core.FromIndex(idx, b.Cols)
		b.T[idx] = core.Tile{Coord: c, Active: i < g.config.LandPoints, Team: core.NoTeam}
		reached[idx] = true
		queue = append(queue, c)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		active := b.TileAt(cur).Active

		neighbors := cur.Neighbors()
		g.rng.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})
		for _, n := range neighbors {
			if !b.InBounds(n) {
				continue
			}
			idx := b.Idx(n)
			if reached[idx] {
				continue
			}
			reached[idx] = true
			b.T[idx] = core.Tile{Coord: n, Active: active, Team: core.NoTeam}
			queue = append(queue, n)
		}
	}
}

func (g *Generator) assignTeams(b *core.Board) {
	for i := range b.T {
		if b.T[i].Active {
			b.T[i].Team = g.rng.Intn(g.config.Teams)
		}
	}
}
