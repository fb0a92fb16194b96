package testutil

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

// ParseBoard builds a board from a whitespace separated layout, one string per
// row. Cell tokens:
//
//	.    sea
//	-    unclaimed land
//	A..H land owned by team 0..7, optionally followed by a piece glyph:
//	     h hut, f fort, 1 soldier1, 2 soldier2, t palm tree
//
// Example: "A Ah B1 ." is a row with four cells.
func ParseBoard(rows ...string) (*core.Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse board: no rows")
	}
	var cells [][]string
	for _, r := range rows {
		cells = append(cells, strings.Fields(r))
	}
	cols := len(cells[0])
	board := core.NewBoard(len(cells), cols)

	for row, line := range cells {
		if len(line) != cols {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d", row, len(line), cols)
		}
		for col, token := range line {
			tile, err := parseCell(token)
			if err != nil {
				return nil, fmt.Errorf("parse board: cell (%d,%d): %w", row, col, err)
			}
			if err := board.SetTile(core.NewCoordinate(row, col), tile); err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}

// MustParseBoard is ParseBoard for fixtures known to be well formed.
func MustParseBoard(rows ...string) *core.Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func parseCell(token string) (core.Tile, error) {
	switch token {
	case ".":
		return core.Tile{Active: false, Team: core.NoTeam}, nil
	case "-":
		return core.Tile{Active: true, Team: core.NoTeam}, nil
	}

	team := int(token[0]) - 'A'
	if team < 0 || team > 7 {
		return core.Tile{}, fmt.Errorf("bad team letter in %q", token)
	}
	tile := core.Tile{Active: true, Team: team}
	if len(token) == 1 {
		return tile, nil
	}
	if len(token) > 2 {
		return core.Tile{}, fmt.Errorf("token %q too long", token)
	}
	switch token[1] {
	case 'h':
		tile.Piece = core.PieceHut
	case 'f':
		tile.Piece = core.PieceFort
	case '1':
		tile.Piece = core.PieceSoldier1
	case '2':
		tile.Piece = core.PieceSoldier2
	case 't':
		tile.Piece = core.PiecePalmTree
	default:
		return core.Tile{}, fmt.Errorf("bad piece glyph in %q", token)
	}
	return tile, nil
}
