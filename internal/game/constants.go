package game

import (
	"github.com/mitchelldurbincs/HexTerritory/internal/config"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/mapgen"
)

// Map generation settings
func MapSettings() mapgen.MapConfig {
	m := config.Get().Game.Map
	return mapgen.MapConfig{
		Rows:        m.Rows,
		Cols:        m.Cols,
		LandPoints:  m.LandPoints,
		SeaPoints:   m.SeaPoints,
		Teams:       m.Teams,
		MaxAttempts: m.MaxAttempts,
	}
}

// Economy settings
func StartingGoldPerTile() int {
	return config.Get().Game.Economy.StartingGoldPerTile
}

func IncomePerTile() int {
	return config.Get().Game.Economy.IncomePerTile
}

func MaxSoldierPower() int {
	return config.Get().Game.Rules.MaxSoldierPower
}

func AssertInvariants() bool {
	return config.Get().Development.AssertInvariants
}

// DefaultGameConfig builds a GameConfig from the loaded configuration. The
// caller fills in Rng, Logger and EventBus.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Map:                 MapSettings(),
		StartingGoldPerTile: StartingGoldPerTile(),
		IncomePerTile:       IncomePerTile(),
		MaxSoldierPower:     MaxSoldierPower(),
		AssertInvariants:    AssertInvariants(),
	}
}
