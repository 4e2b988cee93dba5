package audio

import "github.com/lixenwraith/whack-a-mole/game"

// Cue is a short sound tied to a round event
type Cue int

const (
	CueWhack   Cue = iota // Single-player mole
	CueCorrect            // Own mole
	CueNeutral            // Bonus
	CueWrong              // Opponent's mole
	CueBomb               // Bomb in either mode
	CueStart
	CueEnd
	cueCount
)

var cueNames = [cueCount]string{"whack", "correct", "neutral", "wrong", "bomb", "start", "end"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue maps a cue name back to its Cue
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// CueForOutcome picks the cue announcing a resolved hit
func CueForOutcome(o game.Outcome) (Cue, bool) {
	switch o {
	case game.OutcomeWhacked:
		return CueWhack, true
	case game.OutcomeCorrect:
		return CueCorrect, true
	case game.OutcomeNeutral:
		return CueNeutral, true
	case game.OutcomeWrong:
		return CueWrong, true
	case game.OutcomeBomb, game.OutcomeExploded:
		return CueBomb, true
	default:
		return 0, false
	}
}
