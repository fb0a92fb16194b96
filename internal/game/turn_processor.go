package game

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/processor"
	"github.com/rs/zerolog"
)

// TurnProcessor handles the orchestration of a single team turn: the team's
// actions are applied in order, then its regions collect income and pay
// upkeep.
type TurnProcessor struct {
	engine    *Engine
	processor *processor.ActionProcessor
	logger    zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine:    engine,
		processor: processor.NewActionProcessor(engine.logger),
		logger:    engine.logger,
	}
}

// ProcessTurn plays one turn for team. Rejected actions are skipped and
// reported in the result; an error means the turn could not be played.
func (tp *TurnProcessor) ProcessTurn(ctx context.Context, team int, actions []core.Action) (processor.Result, error) {
	if err := tp.checkContext(ctx, "before starting"); err != nil {
		return processor.Result{}, err
	}

	if err := tp.validateGameState(team); err != nil {
		return processor.Result{}, err
	}

	tp.engine.turn++
	turnLogger := tp.logger.With().Int("turn", tp.engine.turn).Int("team", team).Logger()
	turnLogger.Debug().Int("num_actions_submitted", len(actions)).Msg("Starting turn")

	turnStartTime := time.Now()
	tp.engine.eventBus.Publish(events.NewTurnStartedEvent(tp.engine.gameID, tp.engine.turn, team))

	result, err := tp.processor.ProcessActions(ctx, tp.engine, team, actions)
	if err != nil {
		return result, fmt.Errorf("turn %d: action processing: %w", tp.engine.turn, err)
	}

	// The last capture may have ended the game
	if tp.engine.Phase().CanReceiveActions() {
		if err := tp.checkContext(ctx, "before income"); err != nil {
			return result, fmt.Errorf("turn %d: income phase: %w", tp.engine.turn, err)
		}
		if err := tp.engine.CollectIncome(team); err != nil {
			return result, fmt.Errorf("turn %d: income phase: %w", tp.engine.turn, err)
		}
	}

	tp.engine.eventBus.Publish(events.NewTurnEndedEvent(
		tp.engine.gameID,
		tp.engine.turn,
		team,
		result.Applied,
		result.Rejected,
		time.Since(turnStartTime),
	))

	turnLogger.Debug().
		Int("applied", result.Applied).
		Int("rejected", result.Rejected).
		Msg("Turn finished")
	return result, nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.turn).
			Str("phase", phase).
			Msg("Turn cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateGameState ensures the game can receive actions from team
func (tp *TurnProcessor) validateGameState(team int) error {
	if team < 0 || team >= tp.engine.teams {
		return fmt.Errorf("team %d out of range [0,%d)", team, tp.engine.teams)
	}
	currentPhase := tp.engine.Phase()
	if !currentPhase.CanReceiveActions() {
		tp.logger.Warn().
			Str("current_phase", currentPhase.String()).
			Int("turn", tp.engine.turn).
			Msg("Attempted to play a turn in phase that cannot receive actions")
		return fmt.Errorf("game is in %s phase: %w", currentPhase, core.ErrGameOver)
	}
	return nil
}
