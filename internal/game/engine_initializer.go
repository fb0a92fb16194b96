package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/mapgen"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/region"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/rules"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/states"
	"github.com/rs/zerolog"
)

// EngineInitializer handles the initialization of a game engine: obtaining
// a board, partitioning it into regions and starting the game.
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	// Check context early
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	board, teams, err := ei.prepareBoard()
	if err != nil {
		return nil, err
	}

	engine := ei.createEngine(board, teams)

	if err := engine.partition(ei.config.StartingGoldPerTile); err != nil {
		return nil, fmt.Errorf("partition board: %w", err)
	}
	if ei.config.AssertInvariants {
		if err := engine.CheckInvariants(); err != nil {
			return nil, fmt.Errorf("initial board: %w", err)
		}
	}

	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "regions built"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Running state")
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		board.Rows,
		board.Cols,
		teams,
		len(engine.regions),
	))

	ei.logger.Info().
		Int("rows", board.Rows).
		Int("cols", board.Cols).
		Int("teams", teams).
		Int("regions", len(engine.regions)).
		Msg("Engine created successfully")

	// A board dealt to a single surviving team is over before it starts
	engine.checkGameOver()
	return engine, nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.GameID == "" {
		ei.config.GameID = fmt.Sprintf("game_%d", time.Now().UnixNano())
	}

	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus(ei.config.Logger)
	}
}

// prepareBoard returns the configured board or generates one, along with the
// number of teams dealt onto it.
func (ei *EngineInitializer) prepareBoard() (*core.Board, int, error) {
	if ei.config.Board == nil {
		generator := mapgen.NewGenerator(ei.config.Map, ei.config.Rng)
		board, err := generator.GenerateMap()
		if err != nil {
			return nil, 0, fmt.Errorf("map generation failed: %w", err)
		}
		return board, ei.config.Map.Teams, nil
	}

	board := ei.config.Board
	teams := 0
	for c, t := range board.All() {
		switch {
		case !t.Active && (t.IsClaimed() || t.IsOccupied()):
			return nil, 0, fmt.Errorf("sea tile %s carries a team or piece", c)
		case t.Active && !t.IsClaimed():
			return nil, 0, fmt.Errorf("land tile %s has no team", c)
		case t.Active && t.Team+1 > teams:
			teams = t.Team + 1
		}
	}
	if teams == 0 {
		return nil, 0, fmt.Errorf("board has no land")
	}
	for i := range board.T {
		board.T[i].Region = core.NoRegion
	}
	return board, teams, nil
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(board *core.Board, teams int) *Engine {
	gameContext := states.NewGameContext(ei.config.GameID, teams, ei.logger)

	engine := &Engine{
		board:            board,
		regions:          make(map[core.RegionID]*region.Region),
		ids:              region.NewIDGenerator(ei.config.Rng),
		rng:              ei.config.Rng,
		teams:            teams,
		validator:        rules.NewMoveValidator(ei.config.Logger, ei.config.MaxSoldierPower),
		winCondition:     rules.NewWinConditionChecker(ei.config.Logger, teams),
		stateMachine:     states.NewStateMachine(gameContext, ei.config.EventBus),
		eventBus:         ei.config.EventBus,
		gameID:           ei.config.GameID,
		logger:           ei.logger,
		assertInvariants: ei.config.AssertInvariants,
		winner:           -1,
	}
	engine.economy = NewEconomyManager(ei.config.IncomePerTile, ei.config.GameID, ei.config.Logger)
	engine.stats = NewGameStats(teams)
	engine.eventBus.Subscribe(engine.stats)
	return engine
}

// partition builds one region per same-team connected component, scanning
// the board in row-major order. Each region starts with
// goldPerTile * size in its treasury and gets a hut, or a palm tree when it
// is a single tile.
func (e *Engine) partition(goldPerTile int) error {
	for c := range e.board.Coordinates() {
		t := e.board.TileAt(c)
		if !t.Active || t.HasRegion() {
			continue
		}

		component := e.board.ConnectedSameTeam(c)
		r, err := e.newRegion(t.Team, goldPerTile*len(component))
		if err != nil {
			return err
		}
		for _, member := range component {
			if err := r.AddTile(member); err != nil {
				return err
			}
		}
		if huts := r.HutCount(); huts > 1 {
			return fmt.Errorf("region at %s starts with %d huts", c, huts)
		}
		if r.Size() == 1 && !t.IsOccupied() {
			if err := r.SetPiece(c, core.PiecePalmTree); err != nil {
				return err
			}
		}
		r.ReassertHut(e.rng)

		e.logger.Debug().
			Stringer("region", r.ID()).
			Int("team", r.Team()).
			Int("size", r.Size()).
			Int("balance", r.Balance()).
			Msg("Region created")
	}
	return nil
}

// newRegion registers an empty region under a fresh id
func (e *Engine) newRegion(team, balance int) (*region.Region, error) {
	id, err := e.ids.Next(func(id core.RegionID) bool {
		_, live := e.regions[id]
		return live
	})
	if err != nil {
		return nil, err
	}
	r := region.New(id, team, e.board, balance)
	e.regions[id] = r
	return r, nil
}
