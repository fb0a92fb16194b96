package testutil

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// C is shorthand for core.NewCoordinate in board fixtures
func C(row, col int) core.Coordinate {
	return core.NewCoordinate(row, col)
}

// RequireViolation runs f and fails the test unless it panics with a
// *core.InvariantViolation naming invariant.
func RequireViolation(t *testing.T, invariant string, f func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	if recovered == nil {
		t.Fatalf("expected invariant %q to be violated, but nothing panicked", invariant)
	}
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("expected an invariant violation, got panic %v", recovered)
	}
	var v *core.InvariantViolation
	if !errors.As(err, &v) {
		t.Fatalf("expected an invariant violation, got %s", fmt.Sprint(err))
	}
	if v.Invariant != invariant {
		t.Fatalf("expected invariant %q to be violated, got %q: %s", invariant, v.Invariant, v.Detail)
	}
}
