package game

// Outcome classifies a resolved hit
type Outcome int

const (
	OutcomeNone Outcome = iota

	// Single-player
	OutcomeWhacked  // Mole hit, +1
	OutcomeExploded // Bomb hit, -1

	// Two-player
	OutcomeCorrect // Own mole, +1
	OutcomeNeutral // Neutral bonus, +2
	OutcomeWrong   // Opponent's mole, -1
	OutcomeBomb    // Bomb, -3
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWhacked:
		return "Whacked"
	case OutcomeExploded:
		return "Exploded"
	case OutcomeCorrect:
		return "Correct"
	case OutcomeNeutral:
		return "Neutral"
	case OutcomeWrong:
		return "Wrong"
	case OutcomeBomb:
		return "Bomb"
	default:
		return "None"
	}
}

// Penalty reports whether the outcome is a negative one
func (o Outcome) Penalty() bool {
	return o == OutcomeExploded || o == OutcomeWrong || o == OutcomeBomb
}
