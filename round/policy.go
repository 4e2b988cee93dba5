package round

import "github.com/lixenwraith/whack-a-mole/game"

// EntityPolicy chooses what the next reveal holds
type EntityPolicy interface {
	Next(p *Picker) game.Entity
	Reset()
}

// DefaultMoleChance is the single-player probability of a mole over a bomb
const DefaultMoleChance = 0.7

// WeightedPolicy draws a mole with MoleChance, otherwise a bomb
type WeightedPolicy struct {
	MoleChance float64
}

// Next draws one entity
func (w *WeightedPolicy) Next(p *Picker) game.Entity {
	if p.Chance(w.MoleChance) {
		return game.Entity{Kind: game.KindMole}
	}
	return game.Entity{Kind: game.KindBomb}
}

// Reset is a no-op, draws are independent
func (w *WeightedPolicy) Reset() {}

// RoundRobinPolicy cycles a fixed entity order
type RoundRobinPolicy struct {
	order []game.Entity
	next  int
}

// TwoPlayerOrder is the two-player reveal cycle
var TwoPlayerOrder = []game.Entity{
	{Kind: game.KindMole, Owner: game.Player1},
	{Kind: game.KindMole, Owner: game.Player2},
	{Kind: game.KindNeutral},
	{Kind: game.KindBomb},
}

// NewRoundRobinPolicy creates a cycle over order
func NewRoundRobinPolicy(order []game.Entity) *RoundRobinPolicy {
	return &RoundRobinPolicy{order: append([]game.Entity(nil), order...)}
}

// Next returns the current entity and advances the cursor
func (r *RoundRobinPolicy) Next(_ *Picker) game.Entity {
	e := r.order[r.next]
	r.next = (r.next + 1) % len(r.order)
	return e
}

// Reset rewinds the cursor to the first entity
func (r *RoundRobinPolicy) Reset() {
	r.next = 0
}

// policyFor selects the entity policy of a mode
func policyFor(mode game.Mode) EntityPolicy {
	if mode == game.ModeTwoPlayer {
		return NewRoundRobinPolicy(TwoPlayerOrder)
	}
	return &WeightedPolicy{MoleChance: DefaultMoleChance}
}
