package game

import (
	"sync"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
)

// TeamStats tallies what happened to one team over the game
type TeamStats struct {
	Placements      int
	Captures        int
	TilesLost       int
	Merges          int
	Splits          int
	RegionsLost     int
	TreasurySacked  int
	GoldLost        int
	SoldiersStarved int
}

// GameStats keeps per-team tallies by listening to the event bus. It is
// subscribed by the engine initializer and read through Engine.Stats.
type GameStats struct {
	mu    sync.RWMutex
	teams []TeamStats
}

// NewGameStats creates empty tallies for teams teams
func NewGameStats(teams int) *GameStats {
	return &GameStats{teams: make([]TeamStats, teams)}
}

func (gs *GameStats) ID() string { return "game_stats" }

func (gs *GameStats) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypePiecePlaced,
		events.TypeTileCaptured,
		events.TypeRegionsMerged,
		events.TypeRegionSplit,
		events.TypeRegionDestroyed,
		events.TypeTreasurySacked,
		events.TypeIncomeCollected:
		return true
	}
	return false
}

func (gs *GameStats) HandleEvent(event events.Event) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	switch e := event.(type) {
	case *events.PiecePlacedEvent:
		if t := gs.team(e.Team); t != nil {
			t.Placements++
			if e.Capture {
				t.Captures++
			}
		}
	case *events.TileCapturedEvent:
		if t := gs.team(e.DefenderTeam); t != nil {
			t.TilesLost++
		}
	case *events.RegionsMergedEvent:
		if t := gs.team(e.Team); t != nil {
			t.Merges++
		}
	case *events.RegionSplitEvent:
		if t := gs.team(e.Team); t != nil {
			t.Splits++
		}
	case *events.RegionDestroyedEvent:
		if t := gs.team(e.Team); t != nil {
			t.RegionsLost++
		}
	case *events.TreasurySackedEvent:
		if t := gs.team(e.Team); t != nil {
			t.TreasurySacked++
			t.GoldLost += e.Lost
		}
	case *events.IncomeCollectedEvent:
		if t := gs.team(e.Team); t != nil {
			t.SoldiersStarved += e.Starved
		}
	}
}

// Team returns a copy of team's tallies. Unknown teams get zero values.
func (gs *GameStats) Team(team int) TeamStats {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if team < 0 || team >= len(gs.teams) {
		return TeamStats{}
	}
	return gs.teams[team]
}

// All returns a copy of every team's tallies, indexed by team
func (gs *GameStats) All() []TeamStats {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	out := make([]TeamStats, len(gs.teams))
	copy(out, gs.teams)
	return out
}

func (gs *GameStats) team(team int) *TeamStats {
	if team < 0 || team >= len(gs.teams) {
		return nil
	}
	return &gs.teams[team]
}
