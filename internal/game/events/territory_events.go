package events

import (
	"time"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypePiecePlaced     = "piece.placed"
	TypeTileCaptured    = "tile.captured"
	TypeRegionsMerged   = "regions.merged"
	TypeRegionSplit     = "region.split"
	TypeRegionDestroyed = "region.destroyed"
	TypeTreasurySacked  = "treasury.sacked"
	TypeIncomeCollected = "income.collected"
	TypePhaseChanged    = "game.phase_changed"
	TypeGameEnded       = "game.ended"
	TypeTurnStarted     = "turn.started"
	TypeTurnEnded       = "turn.ended"
)

// GameStartedEvent is published once the initial regions are built
type GameStartedEvent struct {
	BaseEvent
	Rows, Cols int
	Teams      int
	Regions    int
}

func NewGameStartedEvent(gameID string, rows, cols, teams, regions int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Rows:      rows,
		Cols:      cols,
		Teams:     teams,
		Regions:   regions,
	}
}

// PiecePlacedEvent is published for every successful placement, capture or not
type PiecePlacedEvent struct {
	BaseEvent
	Team    int
	Piece   core.Piece
	Target  core.Coordinate
	Region  core.RegionID
	Capture bool
}

func NewPiecePlacedEvent(gameID string, team int, piece core.Piece, target core.Coordinate, regionID core.RegionID, capture bool) *PiecePlacedEvent {
	return &PiecePlacedEvent{
		BaseEvent: newBase(TypePiecePlaced, gameID),
		Team:      team,
		Piece:     piece,
		Target:    target,
		Region:    regionID,
		Capture:   capture,
	}
}

// TileCapturedEvent is published when a tile changes team
type TileCapturedEvent struct {
	BaseEvent
	Target         core.Coordinate
	AttackerTeam   int
	DefenderTeam   int
	DefenderRegion core.RegionID
	CapturedPiece  core.Piece
}

func NewTileCapturedEvent(gameID string, target core.Coordinate, attacker, defender int, defenderRegion core.RegionID, captured core.Piece) *TileCapturedEvent {
	return &TileCapturedEvent{
		BaseEvent:      newBase(TypeTileCaptured, gameID),
		Target:         target,
		AttackerTeam:   attacker,
		DefenderTeam:   defender,
		DefenderRegion: defenderRegion,
		CapturedPiece:  captured,
	}
}

// RegionsMergedEvent is published when one region absorbs another
type RegionsMergedEvent struct {
	BaseEvent
	Team     int
	Survivor core.RegionID
	Absorbed core.RegionID
	Size     int
	Balance  int
}

func NewRegionsMergedEvent(gameID string, team int, survivor, absorbed core.RegionID, size, balance int) *RegionsMergedEvent {
	return &RegionsMergedEvent{
		BaseEvent: newBase(TypeRegionsMerged, gameID),
		Team:      team,
		Survivor:  survivor,
		Absorbed:  absorbed,
		Size:      size,
		Balance:   balance,
	}
}

// RegionSplitEvent is published when a capture cuts a region apart
type RegionSplitEvent struct {
	BaseEvent
	Team         int
	Original     core.RegionID
	Offshoot     core.RegionID
	OriginalSize int
	OffshootSize int
}

func NewRegionSplitEvent(gameID string, team int, original, offshoot core.RegionID, originalSize, offshootSize int) *RegionSplitEvent {
	return &RegionSplitEvent{
		BaseEvent:    newBase(TypeRegionSplit, gameID),
		Team:         team,
		Original:     original,
		Offshoot:     offshoot,
		OriginalSize: originalSize,
		OffshootSize: offshootSize,
	}
}

// RegionDestroyedEvent is published when a region loses its last tile
type RegionDestroyedEvent struct {
	BaseEvent
	Team   int
	Region core.RegionID
}

func NewRegionDestroyedEvent(gameID string, team int, regionID core.RegionID) *RegionDestroyedEvent {
	return &RegionDestroyedEvent{
		BaseEvent: newBase(TypeRegionDestroyed, gameID),
		Team:      team,
		Region:    regionID,
	}
}

// TreasurySackedEvent is published when a region's hut is captured
type TreasurySackedEvent struct {
	BaseEvent
	Team   int
	Region core.RegionID
	Lost   int
}

func NewTreasurySackedEvent(gameID string, team int, regionID core.RegionID, lost int) *TreasurySackedEvent {
	return &TreasurySackedEvent{
		BaseEvent: newBase(TypeTreasurySacked, gameID),
		Team:      team,
		Region:    regionID,
		Lost:      lost,
	}
}

// IncomeCollectedEvent is published per region at the end of a team's turn
type IncomeCollectedEvent struct {
	BaseEvent
	Team    int
	Region  core.RegionID
	Income  int
	Upkeep  int
	Balance int
	Starved int
}

func NewIncomeCollectedEvent(gameID string, team int, regionID core.RegionID, income, upkeep, balance, starved int) *IncomeCollectedEvent {
	return &IncomeCollectedEvent{
		BaseEvent: newBase(TypeIncomeCollected, gameID),
		Team:      team,
		Region:    regionID,
		Income:    income,
		Upkeep:    upkeep,
		Balance:   balance,
		Starved:   starved,
	}
}

// PhaseChangedEvent is published on every game lifecycle transition
type PhaseChangedEvent struct {
	BaseEvent
	From   string
	To     string
	Reason string
}

func NewPhaseChangedEvent(gameID, from, to, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, gameID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}

// GameEndedEvent is published once at most one team still holds a realm.
// Winner is -1 when nobody does.
type GameEndedEvent struct {
	BaseEvent
	Winner int
}

func NewGameEndedEvent(gameID string, winner int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
	}
}

// TurnStartedEvent is published before a team's actions are applied
type TurnStartedEvent struct {
	BaseEvent
	Turn int
	Team int
}

func NewTurnStartedEvent(gameID string, turn, team int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent: newBase(TypeTurnStarted, gameID),
		Turn:      turn,
		Team:      team,
	}
}

// TurnEndedEvent is published once a team's income has been settled
type TurnEndedEvent struct {
	BaseEvent
	Turn     int
	Team     int
	Applied  int
	Rejected int
	Duration time.Duration
}

func NewTurnEndedEvent(gameID string, turn, team, applied, rejected int, duration time.Duration) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent: newBase(TypeTurnEnded, gameID),
		Turn:      turn,
		Team:      team,
		Applied:   applied,
		Rejected:  rejected,
		Duration:  duration,
	}
}
