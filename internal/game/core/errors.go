package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidMove       = errors.New("invalid move")
	ErrUnknownRegion     = errors.New("unknown region")
	ErrNotMovable        = errors.New("piece cannot be moved")
	ErrNotPurchasable    = errors.New("piece cannot be purchased")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrGameOver          = errors.New("game is not running")
)

// MoveError carries the context of a rejected placement.
type MoveError struct {
	Piece  Piece
	Target Coordinate
	Reason string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("place %s at %s: %s: %v", e.Piece, e.Target, e.Reason, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// RejectMove builds a MoveError wrapping ErrInvalidMove.
func RejectMove(p Piece, target Coordinate, reason string) error {
	return &MoveError{Piece: p, Target: target, Reason: reason, Err: ErrInvalidMove}
}

// InvariantViolation reports a broken structural invariant. It signals a
// programming error, never bad player input.
type InvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Invariant, e.Detail)
}

// Violation formats a new InvariantViolation.
func Violation(invariant, format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}

// AssertInvariant panics with err when it is non-nil.
func AssertInvariant(err error) {
	if err != nil {
		panic(err)
	}
}
