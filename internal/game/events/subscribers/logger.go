package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string { return ls.id }

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging of the full event payload
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("rows", e.Rows).
			Int("cols", e.Cols).
			Int("teams", e.Teams).
			Int("regions", e.Regions)

	case *events.PiecePlacedEvent:
		logEvent.
			Int("team", e.Team).
			Str("piece", e.Piece.String()).
			Stringer("target", e.Target).
			Stringer("region", e.Region).
			Bool("capture", e.Capture)

	case *events.TileCapturedEvent:
		logEvent.
			Stringer("target", e.Target).
			Int("attacker_team", e.AttackerTeam).
			Int("defender_team", e.DefenderTeam).
			Stringer("defender_region", e.DefenderRegion).
			Str("captured_piece", e.CapturedPiece.String())

	case *events.RegionsMergedEvent:
		logEvent.
			Int("team", e.Team).
			Stringer("survivor", e.Survivor).
			Stringer("absorbed", e.Absorbed).
			Int("size", e.Size).
			Int("balance", e.Balance)

	case *events.RegionSplitEvent:
		logEvent.
			Int("team", e.Team).
			Stringer("original", e.Original).
			Stringer("offshoot", e.Offshoot).
			Int("original_size", e.OriginalSize).
			Int("offshoot_size", e.OffshootSize)

	case *events.RegionDestroyedEvent:
		logEvent.Int("team", e.Team).Stringer("region", e.Region)

	case *events.TreasurySackedEvent:
		logEvent.Int("team", e.Team).Stringer("region", e.Region).Int("lost", e.Lost)

	case *events.IncomeCollectedEvent:
		logEvent.
			Int("team", e.Team).
			Stringer("region", e.Region).
			Int("income", e.Income).
			Int("upkeep", e.Upkeep).
			Int("balance", e.Balance).
			Int("starved", e.Starved)

	case *events.PhaseChangedEvent:
		logEvent.Str("from_phase", e.From).Str("to_phase", e.To).Str("reason", e.Reason)

	case *events.GameEndedEvent:
		logEvent.Int("winner", e.Winner)

	case *events.TurnStartedEvent:
		logEvent.Int("turn", e.Turn).Int("team", e.Team)

	case *events.TurnEndedEvent:
		logEvent.Int("turn", e.Turn).
			Int("team", e.Team).
			Int("applied", e.Applied).
			Int("rejected", e.Rejected).
			Dur("duration", e.Duration)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
