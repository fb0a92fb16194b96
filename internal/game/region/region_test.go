package region

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var c = testutil.C

// newRegion builds a region over the given members of board, adopting pieces.
func newRegion(t *testing.T, board *core.Board, team int, balance int, members ...core.Coordinate) *Region {
	t.Helper()
	r := New(uuid.New(), team, board, balance)
	for _, m := range members {
		require.NoError(t, r.AddTile(m))
	}
	return r
}

func TestRegion_Membership(t *testing.T) {
	board := testutil.MustParseBoard(
		"A A1 B",
		"A A  B",
	)
	r := newRegion(t, board, 0, 0, c(0, 0), c(0, 1))

	assert.Equal(t, 2, r.Size())
	assert.True(t, r.ContainsTile(c(0, 1)))
	assert.False(t, r.ContainsTile(c(0, 2)))
	assert.Equal(t, r.ID(), board.TileAt(c(0, 0)).Region, "membership is stamped on the tile")
	assert.Equal(t, core.PieceSoldier1, r.GetPiece(c(0, 1)), "existing occupant is adopted")
	assert.Equal(t, []core.Coordinate{c(0, 0), c(0, 1)}, r.Tiles())

	removed := r.RemoveTile(c(0, 1))
	assert.Equal(t, core.PieceSoldier1, removed)
	assert.False(t, board.TileAt(c(0, 1)).HasRegion())
	assert.False(t, board.TileAt(c(0, 1)).IsOccupied())
	assert.Equal(t, core.PieceNone, r.RemoveTile(c(1, 2)), "removing a non-member is a no-op")

	assert.Equal(t, core.PieceNone, r.RemoveTile(c(0, 0)))
	assert.True(t, r.IsEmpty(), "last tile may be removed")

	assert.ErrorIs(t, r.AddTile(c(5, 5)), core.ErrInvalidCoordinate)
}

func TestRegion_Pieces(t *testing.T) {
	board := testutil.MustParseBoard("A A B")
	r := newRegion(t, board, 0, 0, c(0, 0), c(0, 1))

	require.NoError(t, r.SetPiece(c(0, 0), core.PieceFort))
	assert.True(t, r.ContainsPiece(c(0, 0)))
	assert.Equal(t, core.PieceFort, board.TileAt(c(0, 0)).Piece)

	assert.Error(t, r.SetPiece(c(0, 2), core.PieceFort), "cannot place outside the region")

	require.NoError(t, r.SetPiece(c(0, 0), core.PieceNone))
	assert.False(t, r.ContainsPiece(c(0, 0)))
	assert.False(t, board.TileAt(c(0, 0)).IsOccupied())

	require.NoError(t, r.SetPiece(c(0, 1), core.PieceSoldier2))
	pieces := r.Pieces()
	pieces[c(0, 0)] = core.PieceHut
	assert.Len(t, r.Pieces(), 1, "Pieces returns a copy")
	assert.Equal(t, core.PieceSoldier2, r.RemovePiece(c(0, 1)))
	assert.Equal(t, core.PieceNone, r.RemovePiece(c(0, 1)))
}

func TestRegion_ReassertHut(t *testing.T) {
	t.Run("single tile hut becomes palm tree", func(t *testing.T) {
		board := testutil.MustParseBoard("Ah B")
		r := newRegion(t, board, 0, 0, c(0, 0))

		assert.True(t, r.ReassertHut(testutil.NewTestRNG(1)))
		assert.Equal(t, core.PiecePalmTree, r.GetPiece(c(0, 0)))
		assert.Equal(t, core.PiecePalmTree, board.TileAt(c(0, 0)).Piece)
		assert.Equal(t, PhaseStable, r.Phase())
	})

	t.Run("interior tile is preferred", func(t *testing.T) {
		// (1,1) is on an odd row; its six neighbors are all in the region.
		members := []core.Coordinate{c(0, 1), c(0, 2), c(1, 0), c(1, 1), c(1, 2), c(2, 1), c(2, 2)}
		for seed := int64(0); seed < 10; seed++ {
			b := testutil.MustParseBoard("B A A", "A A A", "B A A")
			r := newRegion(t, b, 0, 0, members...)
			require.True(t, r.ReassertHut(testutil.NewTestRNG(seed)))
			loc, ok := r.HutLocation()
			require.True(t, ok)
			assert.Equal(t, c(1, 1), loc, "seed %d", seed)
		}
	})

	t.Run("lowest power tier wins", func(t *testing.T) {
		board := testutil.MustParseBoard("A2 A1 A2")
		r := newRegion(t, board, 0, 0, c(0, 0), c(0, 1), c(0, 2))

		require.True(t, r.ReassertHut(testutil.NewTestRNG(3)))
		assert.Equal(t, core.PieceHut, r.GetPiece(c(0, 1)), "the weakest occupant is replaced")
		assert.Equal(t, 1, r.HutCount())
	})

	t.Run("existing hut is kept", func(t *testing.T) {
		board := testutil.MustParseBoard("A Ah A")
		r := newRegion(t, board, 0, 0, c(0, 0), c(0, 1), c(0, 2))

		assert.False(t, r.ReassertHut(testutil.NewTestRNG(3)))
		loc, _ := r.HutLocation()
		assert.Equal(t, c(0, 1), loc)
	})

	t.Run("two huts is a violation", func(t *testing.T) {
		board := testutil.MustParseBoard("Ah Ah")
		r := newRegion(t, board, 0, 0, c(0, 0), c(0, 1))
		testutil.RequireViolation(t, "hut", func() { r.ReassertHut(testutil.NewTestRNG(3)) })
	})

	t.Run("same seed same anchor", func(t *testing.T) {
		layout := []string{"A A A A A", "A A A A A"}
		var anchors []core.Coordinate
		for i := 0; i < 2; i++ {
			b := testutil.MustParseBoard(layout...)
			r := New(uuid.Nil, 0, b, 0)
			for coord := range b.Coordinates() {
				require.NoError(t, r.AddTile(coord))
			}
			r.ReassertHut(testutil.NewTestRNG(99))
			loc, _ := r.HutLocation()
			anchors = append(anchors, loc)
		}
		assert.Equal(t, anchors[0], anchors[1])
	})
}

func TestRegion_Absorb(t *testing.T) {
	t.Run("multi-tile region brings its treasury", func(t *testing.T) {
		board := testutil.MustParseBoard("Ah A1 A Ah A2")
		big := newRegion(t, board, 0, 30, c(0, 0), c(0, 1), c(0, 2))
		small := newRegion(t, board, 0, 12, c(0, 3), c(0, 4))

		require.NoError(t, big.Absorb(small))

		assert.Equal(t, 5, big.Size())
		assert.Equal(t, 42, big.Balance())
		assert.True(t, small.IsEmpty())
		assert.Equal(t, 0, small.Balance())
		assert.Equal(t, 1, big.HutCount(), "the absorbed hut is dropped")
		assert.Equal(t, core.PieceNone, board.TileAt(c(0, 3)).Piece)
		assert.Equal(t, core.PieceSoldier2, big.GetPiece(c(0, 4)))
		for _, m := range big.Tiles() {
			assert.Equal(t, big.ID(), board.TileAt(m).Region)
		}

		small.Destroy()
		assert.Equal(t, PhaseDestroyed, small.Phase())
	})

	t.Run("single tile brings no treasury", func(t *testing.T) {
		board := testutil.MustParseBoard("Ah A At")
		big := newRegion(t, board, 0, 10, c(0, 0), c(0, 1))
		lone := newRegion(t, board, 0, 5, c(0, 2))

		require.NoError(t, big.Absorb(lone))
		assert.Equal(t, 10, big.Balance())
		assert.Equal(t, core.PiecePalmTree, big.GetPiece(c(0, 2)))
	})

	t.Run("rejects other teams and itself", func(t *testing.T) {
		board := testutil.MustParseBoard("A B")
		a := newRegion(t, board, 0, 0, c(0, 0))
		b := newRegion(t, board, 1, 0, c(0, 1))
		assert.Error(t, a.Absorb(b))
		assert.Error(t, a.Absorb(a))
	})
}

func TestRegion_DestroyNonEmptyPanics(t *testing.T) {
	board := testutil.MustParseBoard("A")
	r := newRegion(t, board, 0, 0, c(0, 0))
	testutil.RequireViolation(t, "region-stamp", r.Destroy)
}

func TestRegion_Treasury(t *testing.T) {
	board := testutil.MustParseBoard("Ah A1 A2 Af At")
	r := newRegion(t, board, 0, 10, c(0, 0), c(0, 1), c(0, 2), c(0, 3), c(0, 4))

	r.Deposit(5)
	assert.Equal(t, 15, r.Balance())
	assert.ErrorIs(t, r.Withdraw(16), core.ErrInsufficientFunds)
	require.NoError(t, r.Withdraw(15))
	assert.Equal(t, 0, r.Balance())

	assert.Equal(t, 5, r.Income(1))
	assert.Equal(t, 2+6+1, r.Upkeep())

	starved := r.Starve()
	assert.Equal(t, []core.Coordinate{c(0, 1), c(0, 2)}, starved)
	assert.Equal(t, core.PieceFort, r.GetPiece(c(0, 3)), "immovable pieces survive")

	r.Deposit(7)
	assert.Equal(t, 7, r.Sack())
	assert.Equal(t, 0, r.Balance())

	lone := newRegion(t, testutil.MustParseBoard("A"), 0, 0, c(0, 0))
	assert.Equal(t, 0, lone.Income(1))
}
