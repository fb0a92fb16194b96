package game

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/region"
	"github.com/rs/zerolog"
)

// EconomyManager handles region income, upkeep and purchases
type EconomyManager struct {
	incomePerTile int
	gameID        string
	logger        zerolog.Logger
}

// NewEconomyManager creates a new economy manager
func NewEconomyManager(incomePerTile int, gameID string, logger zerolog.Logger) *EconomyManager {
	return &EconomyManager{
		incomePerTile: incomePerTile,
		gameID:        gameID,
		logger:        logger.With().Str("component", "EconomyManager").Logger(),
	}
}

// CollectIncome credits each multi-tile region with its income and debits
// its upkeep. A region that cannot pay loses every movable piece and its
// treasury. Single tiles neither earn nor pay. Returns one event per region
// settled.
func (em *EconomyManager) CollectIncome(regions []*region.Region) []events.Event {
	var (
		pending      []events.Event
		totalIncome  int
		totalUpkeep  int
		totalStarved int
	)

	for _, r := range regions {
		if r.Size() <= 1 {
			continue
		}
		income := r.Income(em.incomePerTile)
		upkeep := r.Upkeep()
		r.Deposit(income)

		starved := 0
		if err := r.Withdraw(upkeep); err != nil {
			starved = len(r.Starve())
			r.Sack()
			em.logger.Debug().
				Stringer("region", r.ID()).
				Int("upkeep", upkeep).
				Int("starved", starved).
				Msg("Region could not pay upkeep")
		}

		totalIncome += income
		totalUpkeep += upkeep
		totalStarved += starved
		pending = append(pending, events.NewIncomeCollectedEvent(em.gameID, r.Team(), r.ID(), income, upkeep, r.Balance(), starved))
	}

	em.logger.Debug().
		Int("regions", len(pending)).
		Int("total_income", totalIncome).
		Int("total_upkeep", totalUpkeep).
		Int("total_starved", totalStarved).
		Msg("Income collected")
	return pending
}

// Charge debits the price of kind from r. Only regions with a hut may buy.
func (em *EconomyManager) Charge(r *region.Region, kind core.Piece) error {
	if !kind.Purchasable() {
		return fmt.Errorf("buy %s: %w", kind, core.ErrNotPurchasable)
	}
	if r.HutCount() == 0 {
		return fmt.Errorf("buy %s for %s without a hut: %w", kind, r, core.ErrNotPurchasable)
	}
	if err := r.Withdraw(kind.Cost()); err != nil {
		return fmt.Errorf("buy %s: %w", kind, err)
	}
	em.logger.Debug().
		Str("piece", kind.String()).
		Int("cost", kind.Cost()).
		Stringer("region", r.ID()).
		Int("balance", r.Balance()).
		Msg("Piece purchased")
	return nil
}

// CollectIncome settles income and upkeep for every region of team
func (e *Engine) CollectIncome(team int) error {
	if err := e.requireRunning(); err != nil {
		return err
	}
	e.afterMutation(e.economy.CollectIncome(e.RegionsForTeam(team)))
	return nil
}

// Purchase debits the price of kind from the region regionID. The caller
// places the piece afterwards.
func (e *Engine) Purchase(kind core.Piece, regionID core.RegionID) error {
	if err := e.requireRunning(); err != nil {
		return err
	}
	r, ok := e.regions[regionID]
	if !ok {
		return fmt.Errorf("buy %s for region %s: %w", kind, regionID, core.ErrUnknownRegion)
	}
	return e.economy.Charge(r, kind)
}

// BuyAndPlace purchases kind for regionID and places it on target. The
// treasury is only debited when the placement is legal.
func (e *Engine) BuyAndPlace(kind core.Piece, regionID core.RegionID, target core.Coordinate) (core.RegionID, error) {
	if err := e.requireRunning(); err != nil {
		return core.NoRegion, err
	}
	if err := e.ValidateMove(kind, regionID, target); err != nil {
		return core.NoRegion, err
	}
	if err := e.Purchase(kind, regionID); err != nil {
		return core.NoRegion, err
	}
	return e.PlacePiece(kind, regionID, target)
}
