package core

import "fmt"

// Piece identifies what occupies a tile. The zero value is an empty tile.
type Piece int

const (
	PieceNone Piece = iota
	PieceHut
	PieceFort
	PieceSoldier1
	PieceSoldier2
	PiecePalmTree
)

// MaxSoldierPower is the strongest soldier tier in the catalog. Two
// upgradeable pieces may only combine while their summed power stays within it.
const MaxSoldierPower = 2

// PieceAttributes is the static attribute record of a piece kind.
type PieceAttributes struct {
	Name        string
	Power       int
	Movable     bool
	Purchasable bool
	Upgradeable bool
	Upkeep      int // paid by the owning region every turn
	Cost        int // purchase price
}

var pieceCatalog = [...]PieceAttributes{
	PieceNone:     {Name: "none"},
	PieceHut:      {Name: "hut", Power: 1},
	PieceFort:     {Name: "fort", Power: 2, Purchasable: true, Cost: 15},
	PieceSoldier1: {Name: "soldier1", Power: 1, Movable: true, Purchasable: true, Upgradeable: true, Upkeep: 2, Cost: 10},
	PieceSoldier2: {Name: "soldier2", Power: 2, Movable: true, Purchasable: true, Upgradeable: true, Upkeep: 6, Cost: 20},
	PiecePalmTree: {Name: "palmtree", Upkeep: 1},
}

// Attributes returns the catalog entry for p. Unknown kinds get the empty record.
func (p Piece) Attributes() PieceAttributes {
	if !p.IsValid() {
		return pieceCatalog[PieceNone]
	}
	return pieceCatalog[p]
}

func (p Piece) IsValid() bool     { return p >= PieceNone && int(p) < len(pieceCatalog) }
func (p Piece) IsEmpty() bool     { return p == PieceNone }
func (p Piece) Power() int        { return p.Attributes().Power }
func (p Piece) Movable() bool     { return p.Attributes().Movable }
func (p Piece) Purchasable() bool { return p.Attributes().Purchasable }
func (p Piece) Upgradeable() bool { return p.Attributes().Upgradeable }
func (p Piece) Upkeep() int       { return p.Attributes().Upkeep }
func (p Piece) Cost() int         { return p.Attributes().Cost }

// Placeable reports whether a player may put this piece on the board.
// Huts and palm trees are only ever placed by the engine.
func (p Piece) Placeable() bool {
	return p.Movable() || p.Purchasable()
}

func (p Piece) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Piece(%d)", int(p))
	}
	return pieceCatalog[p].Name
}

// SoldierOfPower returns the soldier kind with exactly the given power.
func SoldierOfPower(power int) (Piece, bool) {
	switch power {
	case 1:
		return PieceSoldier1, true
	case 2:
		return PieceSoldier2, true
	default:
		return PieceNone, false
	}
}

// ParsePiece converts a catalog name back to its kind.
func ParsePiece(name string) (Piece, error) {
	for i, attrs := range pieceCatalog {
		if attrs.Name == name {
			return Piece(i), nil
		}
	}
	return PieceNone, fmt.Errorf("unknown piece %q", name)
}
