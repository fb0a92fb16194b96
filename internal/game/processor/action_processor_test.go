package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	regionA = core.RegionID{0xa}
	regionB = core.RegionID{0xb}
)

type fakeExecutor struct {
	board   *core.Board
	regions map[core.RegionID]int
	moves  [][2]core.Coordinate
	buys   []core.Coordinate
	failOn map[core.Coordinate]error
}

func (f *fakeExecutor) Board() *core.Board { return f.board }

func (f *fakeExecutor) RegionTeam(id core.RegionID) (int, bool) {
	team, ok := f.regions[id]
	return team, ok
}

func (f *fakeExecutor) MovePiece(from, to core.Coordinate) (core.RegionID, error) {
	if err := f.failOn[to]; err != nil {
		return core.NoRegion, err
	}
	f.moves = append(f.moves, [2]core.Coordinate{from, to})
	return core.NoRegion, nil
}

func (f *fakeExecutor) BuyAndPlace(kind core.Piece, regionID core.RegionID, target core.Coordinate) (core.RegionID, error) {
	if err := f.failOn[target]; err != nil {
		return core.NoRegion, err
	}
	f.buys = append(f.buys, target)
	return core.NoRegion, nil
}

func newFake() *fakeExecutor {
	return &fakeExecutor{
		board: testutil.MustParseBoard(
			"A1 A  B  B",
			"Ah A  B  Bh",
		),
		regions: map[core.RegionID]int{regionA: 0, regionB: 1},
		failOn:  map[core.Coordinate]error{},
	}
}

func TestProcessActions_AppliesInOrder(t *testing.T) {
	exec := newFake()
	ap := NewActionProcessor(testutil.NopLogger())

	actions := []core.Action{
		&core.MoveAction{Team: 0, From: core.NewCoordinate(0, 0), To: core.NewCoordinate(0, 1)},
		&core.BuyAction{Team: 0, Region: regionA, Piece: core.PieceSoldier1, Target: core.NewCoordinate(0, 2)},
	}
	result, err := ap.ProcessActions(context.Background(), exec, 0, actions)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 0, result.Rejected)
	assert.Equal(t, 1, result.Captures, "only the buy lands on an enemy tile")
	assert.Equal(t, [][2]core.Coordinate{{core.NewCoordinate(0, 0), core.NewCoordinate(0, 1)}}, exec.moves)
	assert.Equal(t, []core.Coordinate{core.NewCoordinate(0, 2)}, exec.buys)
}

func TestProcessActions_RejectionsDoNotStopBatch(t *testing.T) {
	exec := newFake()
	exec.failOn[core.NewCoordinate(0, 3)] = core.ErrInsufficientFunds
	ap := NewActionProcessor(testutil.NopLogger())

	actions := []core.Action{
		// foreign source tile
		&core.MoveAction{Team: 0, From: core.NewCoordinate(0, 2), To: core.NewCoordinate(0, 1)},
		// rejected by the executor
		&core.BuyAction{Team: 0, Region: regionA, Piece: core.PieceSoldier1, Target: core.NewCoordinate(0, 3)},
		// not purchasable
		&core.BuyAction{Team: 0, Region: regionA, Piece: core.PieceHut, Target: core.NewCoordinate(0, 2)},
		nil,
		&core.MoveAction{Team: 0, From: core.NewCoordinate(0, 0), To: core.NewCoordinate(0, 2)},
	}
	result, err := ap.ProcessActions(context.Background(), exec, 0, actions)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 4, result.Rejected)
	require.Len(t, result.Errors, 4)
	assert.ErrorIs(t, result.Errors[0], core.ErrInvalidMove)
	assert.ErrorIs(t, result.Errors[1], core.ErrInsufficientFunds)
	assert.ErrorIs(t, result.Errors[2], core.ErrNotPurchasable)
	assert.ErrorIs(t, result.Errors[3], core.ErrInvalidMove)

	var actionErr *core.ActionError
	require.True(t, errors.As(result.Errors[1], &actionErr))
	assert.Equal(t, core.ActionBuy, actionErr.Action.GetType())
}

func TestProcessActions_WrongTeam(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		err    error
	}{
		{
			name:   "action issued for another team",
			action: &core.BuyAction{Team: 1, Region: regionB, Piece: core.PieceSoldier1, Target: core.NewCoordinate(0, 1)},
			err:    core.ErrInvalidMove,
		},
		{
			name:   "buy from an enemy treasury",
			action: &core.BuyAction{Team: 0, Region: regionB, Piece: core.PieceSoldier1, Target: core.NewCoordinate(0, 3)},
			err:    core.ErrInvalidMove,
		},
		{
			name:   "buy from an unknown region",
			action: &core.BuyAction{Team: 0, Region: core.RegionID{0xc}, Piece: core.PieceSoldier1, Target: core.NewCoordinate(0, 2)},
			err:    core.ErrUnknownRegion,
		},
		{
			name:   "move an enemy piece",
			action: &core.MoveAction{Team: 0, From: core.NewCoordinate(1, 3), To: core.NewCoordinate(0, 2)},
			err:    core.ErrInvalidMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := newFake()
			ap := NewActionProcessor(testutil.NopLogger())

			result, err := ap.ProcessActions(context.Background(), exec, 0, []core.Action{tt.action})
			require.NoError(t, err)
			assert.Equal(t, 0, result.Applied)
			assert.Equal(t, 1, result.Rejected)
			assert.Zero(t, result.Captures)
			require.Len(t, result.Errors, 1)
			assert.ErrorIs(t, result.Errors[0], tt.err)
			assert.Empty(t, exec.buys)
			assert.Empty(t, exec.moves)
		})
	}
}

func TestProcessActions_ContextCancelled(t *testing.T) {
	exec := newFake()
	ap := NewActionProcessor(testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	actions := []core.Action{
		&core.MoveAction{Team: 0, From: core.NewCoordinate(0, 0), To: core.NewCoordinate(0, 1)},
	}
	result, err := ap.ProcessActions(ctx, exec, 0, actions)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Applied)
	assert.Empty(t, exec.moves)
}
