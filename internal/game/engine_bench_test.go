package game

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/mapgen"
)

var benchSizes = []struct {
	name  string
	size  int
	teams int
}{
	{"Small_10x10", 10, 2},
	{"Medium_20x20", 20, 4},
	{"Large_30x30", 30, 6},
	{"XLarge_50x50", 50, 8},
}

func createBenchEngine(b *testing.B, boardSize, teams int, assertInvariants bool) *Engine {
	b.Helper()
	engine, err := NewEngine(context.Background(), GameConfig{
		Map:                 mapgen.DefaultMapConfig(boardSize, boardSize, teams),
		StartingGoldPerTile: 5,
		IncomePerTile:       1,
		AssertInvariants:    assertInvariants,
		Rng:                 rand.New(rand.NewSource(12345)),
		Logger:              zerolog.Nop(),
	})
	if err != nil {
		b.Fatalf("create engine: %v", err)
	}
	return engine
}

func BenchmarkNewEngine(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				createBenchEngine(b, tc.size, tc.teams, false)
			}
			b.ReportMetric(float64(tc.size*tc.size), "board_tiles")
		})
	}
}

func BenchmarkRandomTurns(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			engine := createBenchEngine(b, tc.size, tc.teams, false)
			tp := NewTurnProcessor(engine)
			rng := rand.New(rand.NewSource(1))
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if engine.IsGameOver() {
					b.StopTimer()
					engine = createBenchEngine(b, tc.size, tc.teams, false)
					tp = NewTurnProcessor(engine)
					b.StartTimer()
				}
				team := i % engine.Teams()
				if _, err := tp.ProcessTurn(ctx, team, RandomActions(engine, team, rng)); err != nil {
					b.Fatalf("turn %d: %v", i, err)
				}
			}
		})
	}
}

func BenchmarkCheckInvariants(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			engine := createBenchEngine(b, tc.size, tc.teams, false)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := engine.CheckInvariants(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBoardStringBuilding(b *testing.B) {
	for _, size := range []int{10, 20, 50} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			engine := createBenchEngine(b, size, 4, false)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = engine.String()
			}
		})
	}
}
