package processor

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/rs/zerolog"
)

// Executor applies validated actions to a game. It is implemented by the
// game engine; the interface avoids an import cycle.
type Executor interface {
	Board() *core.Board
	// RegionTeam reports the team owning the live region id
	RegionTeam(id core.RegionID) (int, bool)
	MovePiece(from, to core.Coordinate) (core.RegionID, error)
	BuyAndPlace(kind core.Piece, regionID core.RegionID, target core.Coordinate) (core.RegionID, error)
}

// Result summarizes one batch of actions
type Result struct {
	Applied  int
	Rejected int
	Captures int
	// Errors holds the rejection of every action that was not applied,
	// wrapped with core.WrapActionError.
	Errors []error
}

// ActionProcessor handles the processing of a team's actions
type ActionProcessor struct {
	logger zerolog.Logger
}

// NewActionProcessor creates a new action processor
func NewActionProcessor(logger zerolog.Logger) *ActionProcessor {
	return &ActionProcessor{
		logger: logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// ProcessActions applies actions for team in order. Actions issued for
// another team or rejected by the game are skipped and recorded in the
// result; only context cancellation stops the batch early.
func (ap *ActionProcessor) ProcessActions(ctx context.Context, exec Executor, team int, actions []core.Action) (Result, error) {
	var result Result

	for _, action := range actions {
		// Check context before processing each action
		select {
		case <-ctx.Done():
			ap.logger.Warn().Err(ctx.Err()).Msg("Action processing interrupted by context cancellation")
			return result, ctx.Err()
		default:
		}

		captured, err := ap.apply(exec, team, action)
		if err != nil {
			wrapped := err
			if action != nil {
				wrapped = core.WrapActionError(action, err)
			}
			ap.logger.Warn().Err(wrapped).
				Int("team", team).
				Str("action_type", core.GetActionType(action)).
				Msg("Rejected action")
			result.Rejected++
			result.Errors = append(result.Errors, wrapped)
			continue
		}
		result.Applied++
		if captured {
			result.Captures++
		}
	}

	ap.logger.Debug().
		Int("team", team).
		Int("applied", result.Applied).
		Int("rejected", result.Rejected).
		Int("captures", result.Captures).
		Msg("Processed actions")
	return result, nil
}

// apply runs one action and reports whether it took a tile from another team
func (ap *ActionProcessor) apply(exec Executor, team int, action core.Action) (bool, error) {
	if action == nil {
		return false, core.ErrInvalidMove
	}
	board := exec.Board()
	if err := action.Validate(board, team); err != nil {
		return false, err
	}

	switch act := action.(type) {
	case *core.MoveAction:
		before := board.TileAt(act.To).Team
		if _, err := exec.MovePiece(act.From, act.To); err != nil {
			return false, err
		}
		return before != team, nil

	case *core.BuyAction:
		owner, ok := exec.RegionTeam(act.Region)
		if !ok {
			return false, fmt.Errorf("buy from region %s: %w", act.Region, core.ErrUnknownRegion)
		}
		if owner != team {
			return false, core.RejectMove(act.Piece, act.Target, fmt.Sprintf("region %s belongs to team %d", act.Region, owner))
		}
		before := board.TileAt(act.Target).Team
		if _, err := exec.BuyAndPlace(act.Piece, act.Region, act.Target); err != nil {
			return false, err
		}
		return before != team, nil

	default:
		ap.logger.Warn().Int("team", team).Str("action_type", core.GetActionType(action)).Msg("Unhandled action type")
		return false, core.ErrInvalidMove
	}
}
