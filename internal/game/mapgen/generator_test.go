package mapgen

import (
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestDefaultMapConfig(t *testing.T) {
	config := DefaultMapConfig(12, 10, 3)

	assert.Equal(t, 12, config.Rows)
	assert.Equal(t, 10, config.Cols)
	assert.Equal(t, 3, config.Teams)
	assert.Equal(t, 10, config.LandPoints)
	assert.Equal(t, 4, config.SeaPoints)
	assert.Equal(t, 100, config.MaxAttempts)
	assert.NoError(t, config.Validate())

	tiny := DefaultMapConfig(1, 1, 1)
	assert.Equal(t, 1, tiny.LandPoints, "at least one land seed")
	assert.NoError(t, tiny.Validate())
}

func TestNewGenerator(t *testing.T) {
	config := DefaultMapConfig(10, 10, 2)
	rng := newTestRNG()
	generator := NewGenerator(config, rng)

	require.NotNil(t, generator)
	assert.Equal(t, config, generator.config)
	assert.Same(t, rng, generator.rng)
}

func TestMapConfig_Validate(t *testing.T) {
	base := DefaultMapConfig(6, 6, 2)

	tests := []struct {
		name   string
		mutate func(*MapConfig)
	}{
		{"zero rows", func(c *MapConfig) { c.Rows = 0 }},
		{"negative cols", func(c *MapConfig) { c.Cols = -1 }},
		{"no land", func(c *MapConfig) { c.LandPoints = 0 }},
		{"negative sea", func(c *MapConfig) { c.SeaPoints = -2 }},
		{"too many seeds", func(c *MapConfig) { c.LandPoints, c.SeaPoints = 30, 7 }},
		{"no teams", func(c *MapConfig) { c.Teams = 0 }},
		{"no attempts", func(c *MapConfig) { c.MaxAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidMapConfig)

			board, err := NewGenerator(cfg, newTestRNG()).GenerateMap()
			assert.ErrorIs(t, err, ErrInvalidMapConfig)
			assert.Nil(t, board)
		})
	}
}

func TestGenerateMap_LandmassIsConnected(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		config := DefaultMapConfig(9, 11, 3)
		board, err := NewGenerator(config, rand.New(rand.NewSource(seed))).GenerateMap()
		require.NoError(t, err, "seed %d", seed)

		assert.True(t, board.ActiveConnected(), "seed %d produced a split landmass", seed)
		assert.Equal(t, 9, board.Rows)
		assert.Equal(t, 11, board.Cols)
	}
}

func TestGenerateMap_TeamAssignment(t *testing.T) {
	config := DefaultMapConfig(8, 8, 4)
	board, err := NewGenerator(config, newTestRNG()).GenerateMap()
	require.NoError(t, err)

	for c, tile := range board.All() {
		assert.Equal(t, c, tile.Coord)
		assert.Equal(t, core.NoRegion, tile.Region)
		assert.Equal(t, core.PieceNone, tile.Piece)
		if tile.Active {
			assert.GreaterOrEqual(t, tile.Team, 0)
			assert.Less(t, tile.Team, 4)
		} else {
			assert.Equal(t, core.NoTeam, tile.Team, "sea at %s must be unclaimed", c)
		}
	}
}

func TestGenerateMap_AllLandWithoutSeaPoints(t *testing.T) {
	config := DefaultMapConfig(5, 7, 2)
	config.SeaPoints = 0

	board, err := NewGenerator(config, newTestRNG()).GenerateMap()
	require.NoError(t, err)
	assert.Equal(t, 35, board.ActiveCount())
}

func TestGenerateMap_Deterministic(t *testing.T) {
	config := DefaultMapConfig(10, 10, 3)

	first, err := NewGenerator(config, rand.New(rand.NewSource(99))).GenerateMap()
	require.NoError(t, err)
	second, err := NewGenerator(config, rand.New(rand.NewSource(99))).GenerateMap()
	require.NoError(t, err)

	assert.Equal(t, first.T, second.T, "same seed must produce the same map")
}

func TestGenerateMap_GivesUp(t *testing.T) {
	// Every tile of a 1x5 strip is a seed, so the two land tiles are
	// connected only when they happen to be adjacent.
	config := MapConfig{Rows: 1, Cols: 5, LandPoints: 2, SeaPoints: 3, Teams: 2, MaxAttempts: 1}

	failures := 0
	for seed := int64(1); seed <= 50; seed++ {
		board, err := NewGenerator(config, rand.New(rand.NewSource(seed))).GenerateMap()
		if err != nil {
			assert.ErrorIs(t, err, ErrGenerationFailed)
			assert.Nil(t, board)
			failures++
			continue
		}
		assert.True(t, board.ActiveConnected())
		assert.Equal(t, 2, board.ActiveCount())
	}
	assert.Positive(t, failures, "a single attempt should sometimes fail")
}
