package region

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

// Deposit adds amount to the treasury.
func (r *Region) Deposit(amount int) {
	r.balance += amount
}

// Withdraw takes amount from the treasury, refusing to go below zero.
func (r *Region) Withdraw(amount int) error {
	if amount > r.balance {
		return fmt.Errorf("withdraw %d from %s: %w", amount, r, core.ErrInsufficientFunds)
	}
	r.balance -= amount
	return nil
}

// Sack empties the treasury. Happens when the region's hut is captured.
func (r *Region) Sack() int {
	lost := r.balance
	r.balance = 0
	return lost
}

// Income is what the region earns per turn. Single tiles have no hut and
// earn nothing.
func (r *Region) Income(perTile int) int {
	if r.Size() <= 1 {
		return 0
	}
	return r.Size() * perTile
}

// Upkeep is the summed per-turn cost of every piece in the region.
func (r *Region) Upkeep() int {
	total := 0
	for _, p := range r.pieces {
		total += p.Upkeep()
	}
	return total
}

// Starve removes every movable piece and returns the tiles they stood on.
func (r *Region) Starve() []core.Coordinate {
	var starved []core.Coordinate
	for _, c := range r.Tiles() {
		if r.pieces[c].Movable() {
			r.RemovePiece(c)
			starved = append(starved, c)
		}
	}
	return starved
}
