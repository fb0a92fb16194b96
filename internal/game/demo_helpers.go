package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
	"github.com/rs/zerolog/log"
)

// RandomActions creates a set of random, currently legal actions for team.
// Realms that can afford a soldier buy one aimed at a capture, and every
// soldier on the board is moved with even odds. Actions are generated against
// the current board, so later ones may be rejected once earlier ones have
// been applied. This is a helper intended for demos, tests and simple
// baseline agents; the result only depends on the board and rng.
func RandomActions(e *Engine, team int, rng *rand.Rand) []core.Action {
	var actions []core.Action

	for _, r := range e.RegionsForTeam(team) {
		if _, hasHut := r.HutLocation(); hasHut && r.Balance() >= core.PieceSoldier1.Cost() && rng.Intn(2) == 0 {
			var captures []core.Coordinate
			for _, c := range e.LegalTargets(core.PieceSoldier1, r.ID()) {
				if !r.ContainsTile(c) {
					captures = append(captures, c)
				}
			}
			if len(captures) > 0 {
				target := captures[rng.Intn(len(captures))]
				actions = append(actions, &core.BuyAction{
					Team:   team,
					Region: r.ID(),
					Piece:  core.PieceSoldier1,
					Target: target,
				})
				log.Debug().
					Int("team", team).
					Stringer("region", r.ID()).
					Stringer("target", target).
					Msg("Generated random buy")
			}
		}

		pieces := r.Pieces()
		for _, from := range r.Tiles() {
			piece := pieces[from]
			if !piece.Movable() || rng.Intn(2) == 0 {
				continue
			}
			var targets []core.Coordinate
			for _, c := range e.LegalTargets(piece, r.ID()) {
				if c != from {
					targets = append(targets, c)
				}
			}
			if len(targets) == 0 {
				continue
			}
			to := targets[rng.Intn(len(targets))]
			actions = append(actions, &core.MoveAction{Team: team, From: from, To: to})
			log.Debug().
				Int("team", team).
				Stringer("from", from).
				Stringer("to", to).
				Msg("Generated random move")
		}
	}
	return actions
}
