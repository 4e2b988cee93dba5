package round

import (
	"maps"

	"github.com/lixenwraith/whack-a-mole/game"
)

// Ledger holds per-player scores, never below zero
type Ledger struct {
	players []game.PlayerID
	scores  map[game.PlayerID]int
}

// NewLedger creates a zeroed ledger for players
func NewLedger(players []game.PlayerID) *Ledger {
	l := &Ledger{
		players: append([]game.PlayerID(nil), players...),
		scores:  make(map[game.PlayerID]int, len(players)),
	}
	l.Reset()
	return l
}

// Reset zeroes every participant
func (l *Ledger) Reset() {
	clear(l.scores)
	for _, p := range l.players {
		l.scores[p] = 0
	}
}

// Has reports whether p is a participant
func (l *Ledger) Has(p game.PlayerID) bool {
	_, ok := l.scores[p]
	return ok
}

// Apply adds delta to p, flooring at zero
// Returns the delta actually applied and the resulting score
func (l *Ledger) Apply(p game.PlayerID, delta int) (applied, score int) {
	old, ok := l.scores[p]
	if !ok {
		return 0, 0
	}
	score = max(0, old+delta)
	l.scores[p] = score
	return score - old, score
}

// Score returns the current score of p
func (l *Ledger) Score(p game.PlayerID) int {
	return l.scores[p]
}

// Players returns participants in seat order
func (l *Ledger) Players() []game.PlayerID {
	return append([]game.PlayerID(nil), l.players...)
}

// Snapshot returns an independent copy of all scores
func (l *Ledger) Snapshot() map[game.PlayerID]int {
	return maps.Clone(l.scores)
}

// Winner decides a two-player round, single-player rounds have no winner
func Winner(mode game.Mode, scores map[game.PlayerID]int) (winner game.PlayerID, tie bool) {
	if mode != game.ModeTwoPlayer {
		return game.PlayerNone, false
	}
	s1, s2 := scores[game.Player1], scores[game.Player2]
	switch {
	case s1 > s2:
		return game.Player1, false
	case s2 > s1:
		return game.Player2, false
	default:
		return game.PlayerNone, true
	}
}
