package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/mapgen"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/region"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/rules"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig holds everything needed to start a game
type GameConfig struct {
	// Board is used as the starting map when set. Every land tile must carry
	// a team. When nil a map is generated from Map.
	Board *core.Board
	Map   mapgen.MapConfig

	StartingGoldPerTile int
	IncomePerTile       int
	MaxSoldierPower     int

	// AssertInvariants audits the whole board after every mutation and
	// panics on the first violation.
	AssertInvariants bool

	Rng      *rand.Rand
	Logger   zerolog.Logger
	GameID   string
	EventBus *events.EventBus
}

// Engine owns the board and the arena of live regions. Tiles refer to their
// region by id only; the engine is the sole owner of *region.Region values.
type Engine struct {
	board   *core.Board
	regions map[core.RegionID]*region.Region
	ids     *region.IDGenerator
	rng     *rand.Rand
	teams   int

	validator    *rules.MoveValidator
	winCondition *rules.WinConditionChecker
	economy      *EconomyManager
	stateMachine *states.StateMachine
	eventBus     *events.EventBus

	gameID           string
	logger           zerolog.Logger
	assertInvariants bool
	winner           int
	turn             int
	stats            *GameStats
}

// NewEngine creates and initializes a game engine
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// GameID returns the identifier used on every published event
func (e *Engine) GameID() string { return e.gameID }

// Teams returns the number of teams the game was dealt
func (e *Engine) Teams() int { return e.teams }

// Board returns the live board. Callers must not mutate it.
func (e *Engine) Board() *core.Board { return e.board }

// EventBus returns the bus every territory event is published on
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// Phase returns the current lifecycle phase
func (e *Engine) Phase() states.GamePhase { return e.stateMachine.CurrentPhase() }

// IsGameOver reports whether at most one team still holds a realm
func (e *Engine) IsGameOver() bool { return e.Phase() == states.PhaseEnded }

// Turn returns how many team turns have been played
func (e *Engine) Turn() int { return e.turn }

// Stats returns the running tallies of territory events
func (e *Engine) Stats() *GameStats { return e.stats }

// GetWinner returns the winning team, or -1 if the game isn't over or
// nobody won
func (e *Engine) GetWinner() int { return e.winner }

// GetTile returns a copy of the tile at c
func (e *Engine) GetTile(c core.Coordinate) (core.Tile, error) {
	return e.board.GetTile(c)
}

// GetRegion returns the region owning c, or nil for sea and out of range
// coordinates
func (e *Engine) GetRegion(c core.Coordinate) *region.Region {
	t := e.board.TileAt(c)
	if t == nil || !t.HasRegion() {
		return nil
	}
	return e.regions[t.Region]
}

// GetRegionByID returns the live region with the given id, or nil
func (e *Engine) GetRegionByID(id core.RegionID) *region.Region {
	return e.regions[id]
}

// RegionTeam reports the team owning the live region id
func (e *Engine) RegionTeam(id core.RegionID) (int, bool) {
	r, ok := e.regions[id]
	if !ok {
		return core.NoTeam, false
	}
	return r.Team(), true
}

// Regions returns every live region ordered by id
func (e *Engine) Regions() []*region.Region {
	out := make([]*region.Region, 0, len(e.regions))
	for _, r := range e.regions {
		out = append(out, r)
	}
	sortRegions(out)
	return out
}

// RegionsForTeam returns the live regions of team ordered by id
func (e *Engine) RegionsForTeam(team int) []*region.Region {
	var out []*region.Region
	for _, r := range e.regions {
		if r.Team() == team {
			out = append(out, r)
		}
	}
	sortRegions(out)
	return out
}

func sortRegions(rs []*region.Region) {
	sort.Slice(rs, func(i, j int) bool { return region.LessID(rs[i].ID(), rs[j].ID()) })
}

// ValidateMove returns nil when piece may be placed on target from the
// region originID. Rule violations wrap core.ErrInvalidMove.
func (e *Engine) ValidateMove(piece core.Piece, originID core.RegionID, target core.Coordinate) error {
	origin, ok := e.regions[originID]
	if !ok {
		return fmt.Errorf("validate move from region %s: %w", originID, core.ErrUnknownRegion)
	}
	return e.validator.Validate(e.board, piece, origin, target)
}

// CheckValidMove reports whether ValidateMove accepts the placement
func (e *Engine) CheckValidMove(piece core.Piece, originID core.RegionID, target core.Coordinate) bool {
	return e.ValidateMove(piece, originID, target) == nil
}

// LegalTargets lists every coordinate piece may be placed on from originID
func (e *Engine) LegalTargets(piece core.Piece, originID core.RegionID) []core.Coordinate {
	origin, ok := e.regions[originID]
	if !ok {
		return nil
	}
	return e.validator.LegalTargets(e.board, piece, origin)
}

// Standings summarizes every team's holdings, indexed by team
func (e *Engine) Standings() []rules.TeamStanding {
	standings := make([]rules.TeamStanding, e.teams)
	for i := range standings {
		standings[i].Team = i
	}
	for _, r := range e.regions {
		if r.Team() < 0 || r.Team() >= e.teams {
			continue
		}
		s := &standings[r.Team()]
		s.Tiles += r.Size()
		if r.Size() > 1 {
			s.Realms++
		}
	}
	return standings
}

// checkGameOver ends the game once at most one team holds a realm
func (e *Engine) checkGameOver() {
	if e.Phase() != states.PhaseRunning {
		return
	}
	over, winner := e.winCondition.CheckGameOver(e.Standings())
	if !over {
		return
	}
	e.winner = winner
	e.stateMachine.GetContext().Winner = winner
	if err := e.stateMachine.TransitionTo(states.PhaseEnded, "at most one team holds a realm"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to end game")
		return
	}
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, winner))
}

// requireRunning rejects mutations outside PhaseRunning
func (e *Engine) requireRunning() error {
	if phase := e.Phase(); !phase.CanReceiveActions() {
		return fmt.Errorf("game is %s: %w", phase, core.ErrGameOver)
	}
	return nil
}

// afterMutation publishes the events of a committed transaction, audits the
// board when asked to and checks for the end of the game.
func (e *Engine) afterMutation(pending []events.Event) {
	if e.assertInvariants {
		core.AssertInvariant(e.CheckInvariants())
	}
	for _, ev := range pending {
		e.eventBus.Publish(ev)
	}
	e.checkGameOver()
}
