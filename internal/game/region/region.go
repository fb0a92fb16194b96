// Package region implements a connected, single-team set of tiles together
// with the pieces standing on it and its treasury.
//
// A Region writes through to the board it was created for: adding a tile
// stamps the tile's region id, setting a piece updates the tile's occupant.
// The board never points back at a Region, only at its id.
package region

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

type Region struct {
	id      core.RegionID
	team    int
	board   *core.Board
	tiles   map[core.Coordinate]struct{}
	pieces  map[core.Coordinate]core.Piece
	balance int
	phase   Phase
}

// New creates an empty region in PhaseForming.
func New(id core.RegionID, team int, board *core.Board, balance int) *Region {
	return &Region{
		id:      id,
		team:    team,
		board:   board,
		tiles:   make(map[core.Coordinate]struct{}),
		pieces:  make(map[core.Coordinate]core.Piece),
		balance: balance,
		phase:   PhaseForming,
	}
}

func (r *Region) ID() core.RegionID { return r.id }
func (r *Region) Team() int         { return r.team }
func (r *Region) Size() int         { return len(r.tiles) }
func (r *Region) Balance() int      { return r.balance }
func (r *Region) Phase() Phase      { return r.phase }
func (r *Region) IsEmpty() bool     { return len(r.tiles) == 0 }

func (r *Region) String() string {
	return fmt.Sprintf("region %s (team %d, %d tiles, balance %d)", r.id, r.team, len(r.tiles), r.balance)
}

// Tiles returns the members in row-major order.
func (r *Region) Tiles() []core.Coordinate {
	out := make([]core.Coordinate, 0, len(r.tiles))
	for c := range r.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (r *Region) ContainsTile(c core.Coordinate) bool {
	_, ok := r.tiles[c]
	return ok
}

// AddTile makes c a member and stamps the tile with this region's id. The
// tile's current occupant, if any, becomes one of this region's pieces.
func (r *Region) AddTile(c core.Coordinate) error {
	t := r.board.TileAt(c)
	if t == nil {
		return fmt.Errorf("add tile %s: %w", c, core.ErrInvalidCoordinate)
	}
	r.tiles[c] = struct{}{}
	t.Region = r.id
	if t.Piece != core.PieceNone {
		r.pieces[c] = t.Piece
	}
	r.transition(PhaseForming)
	return nil
}

// RemoveTile drops c from the region, clears the tile's region id and
// occupant, and returns the piece that stood there. Removing the last tile is
// allowed; the owner is expected to destroy the region afterwards.
func (r *Region) RemoveTile(c core.Coordinate) core.Piece {
	if !r.ContainsTile(c) {
		return core.PieceNone
	}
	removed := r.pieces[c]
	delete(r.pieces, c)
	delete(r.tiles, c)
	if t := r.board.TileAt(c); t != nil {
		t.Region = core.NoRegion
		t.Piece = core.PieceNone
	}
	r.transition(PhaseForming)
	return removed
}

// SetPiece places p on member tile c, replacing whatever stood there.
// Setting PieceNone is the same as RemovePiece.
func (r *Region) SetPiece(c core.Coordinate, p core.Piece) error {
	if !r.ContainsTile(c) {
		return fmt.Errorf("set piece on %s: tile not in %s", c, r)
	}
	if p == core.PieceNone {
		r.RemovePiece(c)
		return nil
	}
	r.pieces[c] = p
	r.board.TileAt(c).Piece = p
	return nil
}

// RemovePiece clears member tile c and returns what stood there.
func (r *Region) RemovePiece(c core.Coordinate) core.Piece {
	p, ok := r.pieces[c]
	if !ok {
		return core.PieceNone
	}
	delete(r.pieces, c)
	r.board.TileAt(c).Piece = core.PieceNone
	return p
}

func (r *Region) GetPiece(c core.Coordinate) core.Piece {
	return r.pieces[c]
}

func (r *Region) ContainsPiece(c core.Coordinate) bool {
	_, ok := r.pieces[c]
	return ok
}

// Pieces returns a copy of the coordinate to piece mapping.
func (r *Region) Pieces() map[core.Coordinate]core.Piece {
	out := make(map[core.Coordinate]core.Piece, len(r.pieces))
	for c, p := range r.pieces {
		out[c] = p
	}
	return out
}

// HutCount returns how many members hold a hut.
func (r *Region) HutCount() int {
	n := 0
	for _, p := range r.pieces {
		if p == core.PieceHut {
			n++
		}
	}
	return n
}

// HutLocation returns the tile holding the hut, if there is one.
func (r *Region) HutLocation() (core.Coordinate, bool) {
	for c, p := range r.pieces {
		if p == core.PieceHut {
			return c, true
		}
	}
	return core.Coordinate{}, false
}

// isInterior reports whether all six neighbors of c are members.
func (r *Region) isInterior(c core.Coordinate) bool {
	for _, n := range c.Neighbors() {
		if !r.ContainsTile(n) {
			return false
		}
	}
	return true
}

// ReassertHut restores the hut invariant and moves the region to
// PhaseStable. A multi-tile region without a hut gets one on a tile of the
// lowest power tier present, interior tiles first, chosen with rng. A
// single-tile region holding a hut gets a palm tree instead. Reports whether
// a piece changed.
func (r *Region) ReassertHut(rng *rand.Rand) bool {
	changed := false
	switch huts := r.HutCount(); {
	case r.Size() == 0:
		return false
	case r.Size() == 1:
		if huts > 0 {
			c, _ := r.HutLocation()
			r.pieces[c] = core.PiecePalmTree
			r.board.TileAt(c).Piece = core.PiecePalmTree
			changed = true
		}
	case huts > 1:
		core.AssertInvariant(core.Violation("hut", "%s holds %d huts", r, huts))
	case huts == 0:
		r.placeHut(rng)
		changed = true
	}
	r.transition(PhaseStable)
	return changed
}

func (r *Region) placeHut(rng *rand.Rand) {
	members := r.Tiles()

	lowest := -1
	for _, c := range members {
		if p := r.pieces[c].Power(); lowest < 0 || p < lowest {
			lowest = p
		}
	}

	var interior, border []core.Coordinate
	for _, c := range members {
		if r.pieces[c].Power() != lowest {
			continue
		}
		if r.isInterior(c) {
			interior = append(interior, c)
		} else {
			border = append(border, c)
		}
	}

	candidates := interior
	if len(candidates) == 0 {
		candidates = border
	}
	anchor := candidates[rng.Intn(len(candidates))]
	r.pieces[anchor] = core.PieceHut
	r.board.TileAt(anchor).Piece = core.PieceHut
}

// Absorb moves every tile of other into r. Other's pieces come along except
// its hut, and its treasury is added only when it held more than one tile.
// Other is left empty; the caller destroys it.
func (r *Region) Absorb(other *Region) error {
	if other == r {
		return fmt.Errorf("absorb: %s cannot absorb itself", r)
	}
	if other.team != r.team {
		return fmt.Errorf("absorb: team mismatch %d != %d", other.team, r.team)
	}

	carryTreasury := other.Size() > 1
	for _, c := range other.Tiles() {
		p := other.RemoveTile(c)
		if err := r.AddTile(c); err != nil {
			return err
		}
		if p != core.PieceHut && p != core.PieceNone {
			if err := r.SetPiece(c, p); err != nil {
				return err
			}
		}
	}
	if carryTreasury {
		r.balance += other.balance
	}
	other.balance = 0
	return nil
}

// Destroy retires an empty region.
func (r *Region) Destroy() {
	if !r.IsEmpty() {
		core.AssertInvariant(core.Violation("region-stamp", "destroying %s which still owns tiles", r))
	}
	r.transition(PhaseDestroyed)
}

func (r *Region) transition(target Phase) {
	if r.phase == target && !target.IsTerminal() {
		return
	}
	if !r.phase.CanTransitionTo(target) {
		core.AssertInvariant(core.Violation("lifecycle", "%s cannot go from %s to %s", r, r.phase, target))
	}
	r.phase = target
}
