package rules

import "github.com/rs/zerolog"

// TeamStanding summarizes what a team holds on the board.
type TeamStanding struct {
	Team  int
	Tiles int
	// Realms counts regions of more than one tile. Only those have a hut and
	// can buy or move pieces.
	Realms int
}

// IsAlive reports whether the team can still act.
func (s TeamStanding) IsAlive() bool { return s.Realms > 0 }

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger        zerolog.Logger
	originalTeams int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, originalTeams int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:        logger.With().Str("component", "WinConditionChecker").Logger(),
		originalTeams: originalTeams,
	}
}

// CheckGameOver determines if the game is over based on the number of teams
// that still hold a realm. Returns (isGameOver, winningTeam); winningTeam is
// -1 when there is none.
func (wc *WinConditionChecker) CheckGameOver(standings []TeamStanding) (bool, int) {
	aliveCount := 0
	lastAlive := -1
	var aliveTeams []int
	for _, s := range standings {
		if s.IsAlive() {
			aliveCount++
			lastAlive = s.Team
			aliveTeams = append(aliveTeams, s.Team)
		}
	}

	// A single-team game only ends when that team is wiped out.
	var gameOver bool
	if wc.originalTeams > 1 {
		gameOver = aliveCount <= 1
	} else {
		gameOver = aliveCount == 0
	}

	winner := -1
	if gameOver && aliveCount == 1 {
		winner = lastAlive
		wc.logger.Info().Int("winner_team", winner).Msg("Winner determined")
	} else if gameOver {
		wc.logger.Info().Msg("No team holds a realm; no winner")
	}

	wc.logger.Debug().Bool("is_game_over", gameOver).Ints("alive_teams", aliveTeams).Msg("Game over check complete")
	return gameOver, winner
}
