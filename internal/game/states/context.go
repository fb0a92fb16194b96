package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to the state machine
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Teams is the number of teams dealt onto the board
	Teams int

	// StartTime is when PhaseRunning was entered
	StartTime time.Time

	// Winner is the winning team once the game ended, -1 otherwise
	Winner int

	// Error holds whatever caused the transition to PhaseError
	Error error
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, teams int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Teams:  teams,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Winner: -1,
	}
}

// GetElapsedTime returns the time elapsed since the game started running
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}
