package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectMove(t *testing.T) {
	err := RejectMove(PieceSoldier1, Coordinate{2, 3}, "target is sea")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
	assert.Equal(t, "place soldier1 at (2,3): target is sea: invalid move", err.Error())

	var moveErr *MoveError
	require.True(t, errors.As(err, &moveErr))
	assert.Equal(t, "target is sea", moveErr.Reason)
}

func TestInvariantViolation(t *testing.T) {
	v := Violation("hut", "region %s has %d huts", "abc", 2)
	assert.Equal(t, "invariant hut violated: region abc has 2 huts", v.Error())

	assert.NotPanics(t, func() { AssertInvariant(nil) })
	assert.PanicsWithError(t, v.Error(), func() { AssertInvariant(v) })
}
