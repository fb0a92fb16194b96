package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	board, err := ParseBoard(
		"Ah A1 .",
		"B2 -  Bt",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, board.Rows)
	assert.Equal(t, 3, board.Cols)

	tile, _ := board.GetTile(core.NewCoordinate(0, 0))
	assert.Equal(t, 0, tile.Team)
	assert.Equal(t, core.PieceHut, tile.Piece)

	tile, _ = board.GetTile(core.NewCoordinate(0, 2))
	assert.False(t, tile.Active)

	tile, _ = board.GetTile(core.NewCoordinate(1, 1))
	assert.True(t, tile.Active)
	assert.Equal(t, core.NoTeam, tile.Team)

	tile, _ = board.GetTile(core.NewCoordinate(1, 2))
	assert.Equal(t, 1, tile.Team)
	assert.Equal(t, core.PiecePalmTree, tile.Piece)
}

func TestParseBoard_Errors(t *testing.T) {
	_, err := ParseBoard()
	assert.Error(t, err)

	_, err = ParseBoard("A A", "A")
	assert.Error(t, err, "ragged rows")

	_, err = ParseBoard("Ax")
	assert.Error(t, err, "unknown glyph")

	_, err = ParseBoard("z")
	assert.Error(t, err, "unknown team")

	assert.Panics(t, func() { MustParseBoard("A?") })
}
