package rules

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/rs/zerolog"
)

// Territory is the view of a region the validator needs.
type Territory interface {
	ID() core.RegionID
	Team() int
	ContainsTile(core.Coordinate) bool
	Tiles() []core.Coordinate
}

// MoveValidator decides whether a piece may be placed on a tile from a region.
type MoveValidator struct {
	logger          zerolog.Logger
	maxSoldierPower int
}

// NewMoveValidator creates a validator. Upgrades may combine soldiers up to
// maxSoldierPower, capped at core.MaxSoldierPower.
func NewMoveValidator(logger zerolog.Logger, maxSoldierPower int) *MoveValidator {
	if maxSoldierPower <= 0 || maxSoldierPower > core.MaxSoldierPower {
		maxSoldierPower = core.MaxSoldierPower
	}
	return &MoveValidator{
		logger:          logger.With().Str("component", "MoveValidator").Logger(),
		maxSoldierPower: maxSoldierPower,
	}
}

// Validate returns nil when placing piece from origin onto target is legal.
// Out-of-range targets wrap core.ErrInvalidCoordinate; rule violations wrap
// core.ErrInvalidMove.
func (v *MoveValidator) Validate(board *core.Board, piece core.Piece, origin Territory, target core.Coordinate) error {
	if origin == nil {
		return fmt.Errorf("validate move to %s: %w", target, core.ErrUnknownRegion)
	}
	t := board.TileAt(target)
	if t == nil {
		return fmt.Errorf("validate move to %s: %w", target, core.ErrInvalidCoordinate)
	}
	if !piece.Placeable() {
		return core.RejectMove(piece, target, "piece cannot be placed by a player")
	}
	if !t.Active {
		return core.RejectMove(piece, target, "target is sea")
	}

	if origin.ContainsTile(target) {
		return v.validateInRegion(piece, t)
	}
	return v.validateCapture(board, piece, origin, t)
}

// validateInRegion covers placement on a tile the origin already owns: an
// empty tile, or an upgrade of a friendly soldier.
func (v *MoveValidator) validateInRegion(piece core.Piece, t *core.Tile) error {
	if !t.IsOccupied() {
		return nil
	}
	if !piece.Upgradeable() || !t.Piece.Upgradeable() {
		return core.RejectMove(piece, t.Coord, fmt.Sprintf("tile occupied by %s", t.Piece))
	}
	if piece.Power()+t.Piece.Power() > v.maxSoldierPower {
		return core.RejectMove(piece, t.Coord, "combined power exceeds the strongest soldier")
	}
	return nil
}

// validateCapture covers placement outside the origin. Only the target and
// its immediate ring are inspected for stronger defenders.
func (v *MoveValidator) validateCapture(board *core.Board, piece core.Piece, origin Territory, t *core.Tile) error {
	attack := piece.Power()

	if !touches(board, origin, t.Coord) {
		return core.RejectMove(piece, t.Coord, "target is not adjacent to the origin region")
	}
	if t.IsOccupied() && t.Piece.Power() >= attack {
		return core.RejectMove(piece, t.Coord, fmt.Sprintf("target held by %s", t.Piece))
	}
	if !t.HasRegion() {
		return nil
	}
	for _, n := range board.ActiveNeighbors(t.Coord) {
		nt := board.TileAt(n)
		if nt.Region != t.Region || !nt.IsOccupied() {
			continue
		}
		if nt.Piece.Power() >= attack {
			return core.RejectMove(piece, t.Coord, fmt.Sprintf("target guarded by %s at %s", nt.Piece, n))
		}
	}
	return nil
}

func touches(board *core.Board, origin Territory, target core.Coordinate) bool {
	for _, n := range board.ValidNeighbors(target) {
		if origin.ContainsTile(n) {
			return true
		}
	}
	return false
}

// LegalTargets lists, in row-major order, every coordinate where piece may be
// placed from origin: the origin itself plus its outer ring.
func (v *MoveValidator) LegalTargets(board *core.Board, piece core.Piece, origin Territory) []core.Coordinate {
	seen := make(map[core.Coordinate]struct{})
	var candidates []core.Coordinate
	for _, c := range origin.Tiles() {
		for _, n := range append([]core.Coordinate{c}, board.ValidNeighbors(c)...) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			candidates = append(candidates, n)
		}
	}

	var legal []core.Coordinate
	for c := range board.Coordinates() {
		if _, ok := seen[c]; !ok {
			continue
		}
		if err := v.Validate(board, piece, origin, c); err == nil {
			legal = append(legal, c)
		}
	}
	v.logger.Debug().
		Str("piece", piece.String()).
		Int("candidates", len(candidates)).
		Int("legal", len(legal)).
		Msg("Computed legal targets")
	return legal
}
