package game

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/region"
)

// PlacePiece puts piece on target on behalf of region originID and returns
// the id of the region owning target afterwards. The move is validated
// first: an illegal move returns an error wrapping core.ErrInvalidMove and
// leaves the board untouched.
func (e *Engine) PlacePiece(piece core.Piece, originID core.RegionID, target core.Coordinate) (core.RegionID, error) {
	if err := e.requireRunning(); err != nil {
		return core.NoRegion, err
	}
	if err := e.ValidateMove(piece, originID, target); err != nil {
		e.logger.Warn().
			Err(err).
			Str("piece", piece.String()).
			Stringer("target", target).
			Stringer("origin", originID).
			Msg("Rejected placement")
		return core.NoRegion, err
	}

	origin := e.regions[originID]
	p := &placement{engine: e}
	var owner core.RegionID
	if origin.ContainsTile(target) {
		owner = p.reinforce(piece, origin, target)
	} else {
		owner = p.capture(piece, origin, target)
	}

	e.afterMutation(p.events)
	return owner, nil
}

// MovePiece lifts the movable piece standing on from and places it on to,
// capturing or upgrading as PlacePiece would. On failure the piece is put
// back.
func (e *Engine) MovePiece(from, to core.Coordinate) (core.RegionID, error) {
	if err := e.requireRunning(); err != nil {
		return core.NoRegion, err
	}
	if !e.board.InBounds(from) {
		return core.NoRegion, fmt.Errorf("move from %s: %w", from, core.ErrInvalidCoordinate)
	}
	origin := e.GetRegion(from)
	if origin == nil {
		return core.NoRegion, fmt.Errorf("move from %s: %w", from, core.ErrUnknownRegion)
	}
	piece := origin.GetPiece(from)
	if !piece.Movable() {
		return core.NoRegion, fmt.Errorf("move %s from %s: %w", piece, from, core.ErrNotMovable)
	}
	if from == to {
		return core.NoRegion, core.RejectMove(piece, to, "piece is already there")
	}

	origin.RemovePiece(from)
	owner, err := e.PlacePiece(piece, origin.ID(), to)
	if err != nil {
		core.AssertInvariant(origin.SetPiece(from, piece))
		return core.NoRegion, err
	}
	return owner, nil
}

// placement collects the regions touched by one PlacePiece call and the
// events to publish once it has committed.
type placement struct {
	engine  *Engine
	touched []*region.Region
	events  []events.Event
}

func (p *placement) touch(r *region.Region) {
	for _, t := range p.touched {
		if t == r {
			return
		}
	}
	p.touched = append(p.touched, r)
}

func (p *placement) publish(ev events.Event) {
	p.events = append(p.events, ev)
}

// reinforce places piece on a tile the origin already owns, combining it
// with a soldier already standing there.
func (p *placement) reinforce(piece core.Piece, origin *region.Region, target core.Coordinate) core.RegionID {
	placed := piece
	if current := origin.GetPiece(target); current != core.PieceNone {
		combined, ok := core.SoldierOfPower(current.Power() + piece.Power())
		if !ok {
			core.AssertInvariant(core.Violation("upgrade", "%s onto %s at %s has no soldier tier", piece, current, target))
		}
		placed = combined
	}
	core.AssertInvariant(origin.SetPiece(target, placed))

	p.engine.logger.Debug().
		Str("piece", placed.String()).
		Stringer("target", target).
		Stringer("region", origin.ID()).
		Msg("Reinforced tile")
	p.publish(events.NewPiecePlacedEvent(p.engine.gameID, origin.Team(), placed, target, origin.ID(), false))
	return origin.ID()
}

// capture moves target from its defending region into origin, then merges
// the attacker's regions bridged by target, splits the defender if target
// was its only connection and restores the hut invariant everywhere.
func (p *placement) capture(piece core.Piece, origin *region.Region, target core.Coordinate) core.RegionID {
	e := p.engine
	tile := e.board.TileAt(target)
	attacker := origin.Team()
	defenderTeam := tile.Team
	defender := e.regions[tile.Region]

	tile.Team = attacker

	if defender != nil {
		captured := defender.RemoveTile(target)
		p.publish(events.NewTileCapturedEvent(e.gameID, target, attacker, defenderTeam, defender.ID(), captured))
		if captured == core.PieceHut {
			lost := defender.Sack()
			p.publish(events.NewTreasurySackedEvent(e.gameID, defender.Team(), defender.ID(), lost))
			e.logger.Debug().Stringer("region", defender.ID()).Int("lost", lost).Msg("Treasury sacked")
		}
		if defender.IsEmpty() {
			p.destroy(defender)
			p.publish(events.NewRegionDestroyedEvent(e.gameID, defender.Team(), defender.ID()))
			defender = nil
		} else {
			p.touch(defender)
		}
	}

	core.AssertInvariant(origin.AddTile(target))
	core.AssertInvariant(origin.SetPiece(target, piece))
	p.touch(origin)

	p.mergeAround(target, attacker)
	if defender != nil {
		p.splitAround(target, defender)
	}

	for _, r := range p.touched {
		if e.regions[r.ID()] == r {
			r.ReassertHut(e.rng)
		}
	}

	owner := e.board.TileAt(target).Region
	p.publish(events.NewPiecePlacedEvent(e.gameID, attacker, piece, target, owner, true))
	return owner
}

// destroy drops an emptied region from the arena
func (p *placement) destroy(r *region.Region) {
	delete(p.engine.regions, r.ID())
	r.Destroy()
	for i, t := range p.touched {
		if t == r {
			p.touched = append(p.touched[:i], p.touched[i+1:]...)
			break
		}
	}
}

// mergeAround merges every attacker region adjacent to target into the
// region holding target, one pair at a time.
func (p *placement) mergeAround(target core.Coordinate, team int) {
	e := p.engine
	for {
		found := []*region.Region{e.GetRegion(target)}
		for _, n := range e.board.ActiveNeighbors(target) {
			t := e.board.TileAt(n)
			if t.Team != team || !t.HasRegion() {
				continue
			}
			r := e.regions[t.Region]
			if !containsRegion(found, r) {
				found = append(found, r)
			}
		}
		if len(found) < 2 {
			return
		}
		p.merge(found[0], found[1])
	}
}

// merge lets the larger region absorb the smaller one. Equal sizes go to the
// lower id.
func (p *placement) merge(a, b *region.Region) {
	survivor, absorbed := a, b
	if b.Size() > a.Size() || (b.Size() == a.Size() && region.LessID(b.ID(), a.ID())) {
		survivor, absorbed = b, a
	}

	core.AssertInvariant(survivor.Absorb(absorbed))
	p.destroy(absorbed)
	p.touch(survivor)

	p.engine.logger.Debug().
		Stringer("survivor", survivor.ID()).
		Stringer("absorbed", absorbed.ID()).
		Int("size", survivor.Size()).
		Int("balance", survivor.Balance()).
		Msg("Regions merged")
	p.publish(events.NewRegionsMergedEvent(p.engine.gameID, survivor.Team(), survivor.ID(), absorbed.ID(), survivor.Size(), survivor.Balance()))
}

// splitAround checks whether removing target disconnected defender. Each
// component beyond the first becomes a new region with its tiles, its
// pieces and an empty treasury. The component holding the hut keeps the
// original region; without a hut the largest one does.
func (p *placement) splitAround(target core.Coordinate, defender *region.Region) {
	e := p.engine
	if e.regions[defender.ID()] != defender {
		return
	}
	id := defender.ID()

	var starts []core.Coordinate
	for _, n := range e.board.ActiveNeighbors(target) {
		if e.board.TileAt(n).Region == id {
			starts = append(starts, n)
		}
	}
	if len(starts) < 2 {
		return
	}

	inDefender := func(t *core.Tile) bool { return t.Region == id }
	var components []core.Component
	var members []map[core.Coordinate]struct{}
	for _, s := range starts {
		if inAnySet(members, s) {
			continue
		}
		comp := e.board.Connected(s, inDefender)
		components = append(components, comp)
		members = append(members, comp.Set())
	}
	if len(components) < 2 {
		return
	}

	keep := 0
	if hut, ok := defender.HutLocation(); ok {
		for i, set := range members {
			if _, ok := set[hut]; ok {
				keep = i
			}
		}
	} else {
		for i, comp := range components {
			if len(comp) > len(components[keep]) {
				keep = i
			}
		}
	}

	for i, comp := range components {
		if i == keep {
			continue
		}
		offshoot, err := e.newRegion(defender.Team(), 0)
		if err != nil {
			core.AssertInvariant(fmt.Errorf("split %s: %w", defender, err))
		}
		for _, c := range comp {
			piece := defender.RemoveTile(c)
			core.AssertInvariant(offshoot.AddTile(c))
			if piece != core.PieceNone {
				core.AssertInvariant(offshoot.SetPiece(c, piece))
			}
		}
		p.touch(offshoot)

		e.logger.Debug().
			Stringer("original", id).
			Stringer("offshoot", offshoot.ID()).
			Int("original_size", defender.Size()).
			Int("offshoot_size", offshoot.Size()).
			Msg("Region split")
		p.publish(events.NewRegionSplitEvent(e.gameID, defender.Team(), id, offshoot.ID(), defender.Size(), offshoot.Size()))
	}
}

func containsRegion(rs []*region.Region, r *region.Region) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

func inAnySet(sets []map[core.Coordinate]struct{}, c core.Coordinate) bool {
	for _, set := range sets {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}
