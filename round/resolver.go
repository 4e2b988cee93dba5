package round

import "github.com/lixenwraith/whack-a-mole/game"

// Resolver adjudicates a hit against the entity that was revealed
// The table depends only on mode, entity and actor, so one value serves every round
type Resolver struct{}

// Resolve returns the outcome and the table delta before flooring
func (Resolver) Resolve(mode game.Mode, e game.Entity, actor game.PlayerID) (game.Outcome, int) {
	if mode == game.ModeTwoPlayer {
		return resolveTwoPlayer(e, actor)
	}
	return resolveSinglePlayer(e)
}

// resolveSinglePlayer: mole +1, bomb -1
// Neutral never spawns in single-player and scores as a mole if it does
func resolveSinglePlayer(e game.Entity) (game.Outcome, int) {
	switch e.Kind {
	case game.KindBomb:
		return game.OutcomeExploded, -1
	case game.KindMole, game.KindNeutral:
		return game.OutcomeWhacked, 1
	default:
		return game.OutcomeNone, 0
	}
}

// resolveTwoPlayer: bomb -3, neutral +2, own mole +1, opponent's mole -1
func resolveTwoPlayer(e game.Entity, actor game.PlayerID) (game.Outcome, int) {
	switch {
	case e.Kind == game.KindBomb:
		return game.OutcomeBomb, -3
	case e.Kind == game.KindNeutral, e.Kind == game.KindMole && e.Owner == game.PlayerNone:
		return game.OutcomeNeutral, 2
	case e.Kind == game.KindMole && e.Owner == actor:
		return game.OutcomeCorrect, 1
	case e.Kind == game.KindMole:
		return game.OutcomeWrong, -1
	default:
		return game.OutcomeNone, 0
	}
}
