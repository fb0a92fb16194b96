package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/HexTerritory/internal/common"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

const teamSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// pieceGlyphs follow the fixture format used in tests
var pieceGlyphs = map[core.Piece]byte{
	core.PieceHut:      'h',
	core.PieceFort:     'f',
	core.PieceSoldier1: '1',
	core.PieceSoldier2: '2',
	core.PiecePalmTree: 't',
}

// String renders the board one row per line. Odd rows are indented to show
// the hex offset. Each cell is "." for sea, "-" for unclaimed land, or a team
// letter followed by a piece glyph (h hut, f fort, 1 and 2 soldiers, t palm
// tree).
func (e *Engine) String() string {
	return e.render(false)
}

// ColorString renders like String with each team in its own ANSI color
func (e *Engine) ColorString() string {
	return e.render(true)
}

func (e *Engine) render(color bool) string {
	b := e.board
	var sb strings.Builder
	sb.Grow(b.Rows * (b.Cols*3 + 2) * 4)

	for row := 0; row < b.Rows; row++ {
		if row%2 == 1 {
			sb.WriteString(" ")
		}
		for col := 0; col < b.Cols; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			t := b.TileAt(core.NewCoordinate(row, col))
			cell := cellSymbol(t)
			if color {
				sb.WriteString(common.Colorize(tileColor(t), cell))
			} else {
				sb.WriteString(cell)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// cellSymbol returns a two character cell
func cellSymbol(t *core.Tile) string {
	switch {
	case !t.Active:
		return ". "
	case !t.IsClaimed():
		return "- "
	}
	var cell [2]byte
	cell[0] = teamSymbols[t.Team%len(teamSymbols)]
	cell[1] = ' '
	if g, ok := pieceGlyphs[t.Piece]; ok {
		cell[1] = g
	}
	return string(cell[:])
}

func tileColor(t *core.Tile) string {
	if !t.Active || !t.IsClaimed() {
		return common.NeutralColor
	}
	return common.TeamColor(t.Team)
}

// Summary lists every live region, one per line, ordered by id
func (e *Engine) Summary() string {
	var sb strings.Builder
	for _, s := range e.Standings() {
		fmt.Fprintf(&sb, "team %c: %d tiles, %d realms\n", teamSymbols[s.Team%len(teamSymbols)], s.Tiles, s.Realms)
	}
	for _, r := range e.Regions() {
		sb.WriteString("  ")
		sb.WriteString(r.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
