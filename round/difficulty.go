package round

import (
	"fmt"
	"time"

	"github.com/lixenwraith/whack-a-mole/game"
)

// Window is the uniform sampling range for how long a reveal stays up
type Window struct {
	Min time.Duration
	Max time.Duration
}

// Validate checks 1ms <= Min <= Max
// Reveals are sampled in whole milliseconds, a shorter minimum would sample a zero-length reveal
func (w Window) Validate() error {
	if w.Min < time.Millisecond {
		return fmt.Errorf("window minimum must be at least 1ms, got %v", w.Min)
	}
	if w.Max < w.Min {
		return fmt.Errorf("window maximum %v below minimum %v", w.Max, w.Min)
	}
	return nil
}

// Tier is the time-derived two-player pacing step
type Tier int

const (
	Tier0 Tier = iota // More than upper threshold of time left
	Tier1
	Tier2 // Final stretch
)

func (t Tier) String() string {
	switch t {
	case Tier0:
		return "Tier0"
	case Tier1:
		return "Tier1"
	case Tier2:
		return "Tier2"
	default:
		return "Unknown"
	}
}

// Difficulty maps a level or a remaining-time fraction to a reveal Window
type Difficulty struct {
	Levels [3]Window // Indexed by game.Level
	Tiers  [3]Window // Indexed by Tier

	// Fraction boundaries, strictly greater than Upper is Tier0, strictly greater than Lower is Tier1
	Upper float64
	Lower float64
}

// DefaultDifficulty returns the stock pacing tables
func DefaultDifficulty() Difficulty {
	ms := time.Millisecond
	return Difficulty{
		Levels: [3]Window{
			game.LevelEasy:   {500 * ms, 1500 * ms},
			game.LevelMedium: {200 * ms, 1000 * ms},
			game.LevelHard:   {100 * ms, 800 * ms},
		},
		Tiers: [3]Window{
			Tier0: {800 * ms, 1500 * ms},
			Tier1: {500 * ms, 1000 * ms},
			Tier2: {300 * ms, 700 * ms},
		},
		Upper: 0.66,
		Lower: 0.33,
	}
}

// IsZero reports an unset Difficulty
func (d Difficulty) IsZero() bool {
	return d == Difficulty{}
}

// Validate checks every window and the threshold ordering
func (d Difficulty) Validate() error {
	for i, w := range d.Levels {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("level %s: %w", game.Level(i), err)
		}
	}
	for i, w := range d.Tiers {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%s: %w", Tier(i), err)
		}
	}
	if !(d.Lower > 0 && d.Lower < d.Upper && d.Upper < 1) {
		return fmt.Errorf("tier thresholds must satisfy 0 < lower < upper < 1, got lower=%v upper=%v", d.Lower, d.Upper)
	}
	return nil
}

// LevelWindow returns the single-player window for l
func (d Difficulty) LevelWindow(l game.Level) Window {
	if !l.Valid() {
		l = game.LevelEasy
	}
	return d.Levels[l]
}

// TierFor derives the two-player tier from the fraction of time remaining
func (d Difficulty) TierFor(fraction float64) Tier {
	switch {
	case fraction > d.Upper:
		return Tier0
	case fraction > d.Lower:
		return Tier1
	default:
		return Tier2
	}
}

// TierWindow returns the two-player window for t
func (d Difficulty) TierWindow(t Tier) Window {
	if t < Tier0 || t > Tier2 {
		t = Tier0
	}
	return d.Tiers[t]
}
