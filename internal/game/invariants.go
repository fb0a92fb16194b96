package game

import (
	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/region"
)

// CheckInvariants audits the board against the region arena and returns the
// first violation found as a *core.InvariantViolation, or nil.
//
//	partition     every land tile belongs to exactly one live region, sea to none
//	hut           a region of more than one tile holds exactly one hut
//	singleton     a single tile region holds no hut
//	region-stamp  member tiles carry their region's id; regions never share tiles
//
// It also checks that every region is connected and maximal, that tiles and
// regions agree on team and pieces, and that no live region is still forming.
func (e *Engine) CheckInvariants() error {
	members := 0
	for _, r := range e.Regions() {
		if v := e.checkRegion(r); v != nil {
			return v
		}
		members += r.Size()
	}

	for c, t := range e.board.All() {
		if t.IsSea() {
			if t.HasRegion() || t.IsOccupied() {
				return core.Violation("partition", "sea tile %s has region %s and piece %s", c, t.Region, t.Piece)
			}
			continue
		}
		r, ok := e.regions[t.Region]
		if !ok {
			return core.Violation("partition", "land tile %s has no live region", c)
		}
		if !r.ContainsTile(c) {
			return core.Violation("region-stamp", "tile %s points at %s which does not list it", c, r)
		}
		if t.Team != r.Team() {
			return core.Violation("region-stamp", "tile %s is team %d inside %s", c, t.Team, r)
		}
		for _, n := range e.board.ActiveNeighbors(c) {
			nt := e.board.TileAt(n)
			if nt.Team == t.Team && nt.Region != t.Region {
				return core.Violation("maximal", "adjacent tiles %s and %s of team %d are in different regions", c, n, t.Team)
			}
		}
	}

	if active := e.board.ActiveCount(); members != active {
		return core.Violation("region-stamp", "regions list %d members for %d land tiles", members, active)
	}
	return nil
}

func (e *Engine) checkRegion(r *region.Region) *core.InvariantViolation {
	if r.IsEmpty() {
		return core.Violation("region-stamp", "%s is live but empty", r)
	}
	if r.Phase() != region.PhaseStable {
		return core.Violation("lifecycle", "%s is %s after a committed move", r, r.Phase())
	}

	switch huts := r.HutCount(); {
	case r.Size() > 1 && huts != 1:
		return core.Violation("hut", "%s holds %d huts", r, huts)
	case r.Size() == 1 && huts != 0:
		return core.Violation("singleton", "%s is a single tile with a hut", r)
	}

	tiles := r.Tiles()
	for _, c := range tiles {
		t := e.board.TileAt(c)
		if t == nil || !t.Active {
			return core.Violation("partition", "%s lists %s which is not land", r, c)
		}
		if t.Region != r.ID() {
			return core.Violation("region-stamp", "%s lists %s which is stamped %s", r, c, t.Region)
		}
		if t.Piece != r.GetPiece(c) {
			return core.Violation("pieces", "%s has %s at %s but the tile shows %s", r, r.GetPiece(c), c, t.Piece)
		}
	}

	id := r.ID()
	reach := e.board.Connected(tiles[0], func(t *core.Tile) bool { return t.Region == id })
	if len(reach) != r.Size() {
		return core.Violation("connected", "%s reaches %d of its %d tiles", r, len(reach), r.Size())
	}
	return nil
}
