package round

import (
	"fmt"
	"time"

	"github.com/lixenwraith/whack-a-mole/game"
)

const (
	// DefaultSinglePlayerSeconds is the single-player round length
	DefaultSinglePlayerSeconds = 25
	// DefaultTwoPlayerSeconds is the two-player round length
	DefaultTwoPlayerSeconds = 30
	// DefaultHoleCount is a 3x3 grid
	DefaultHoleCount = 9
	// DefaultSettleDelay separates a hit from the next reveal
	DefaultSettleDelay = 100 * time.Millisecond
)

// Config is accepted at round construction and applies to every Start until reconfigured
type Config struct {
	Mode            game.Mode
	DurationSeconds int // 0 selects the mode default
	HoleCount       int
	Level           game.Level // Single-player pacing

	// SettleDelay is the pause between a resolved hit and the next reveal, 0 selects DefaultSettleDelay
	SettleDelay time.Duration
	// SpawnGap is the pause between a despawn and the next reveal, 0 reveals immediately
	SpawnGap time.Duration

	// Seed makes hole and entity selection reproducible, 0 seeds randomly
	Seed uint64

	// Difficulty overrides the pacing tables, zero value selects DefaultDifficulty
	Difficulty Difficulty
}

// WithDefaults fills unset optional fields, HoleCount is never defaulted
func (c Config) WithDefaults() Config {
	if c.DurationSeconds == 0 {
		if c.Mode == game.ModeTwoPlayer {
			c.DurationSeconds = DefaultTwoPlayerSeconds
		} else {
			c.DurationSeconds = DefaultSinglePlayerSeconds
		}
	}
	if c.SettleDelay == 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	if c.Difficulty.IsZero() {
		c.Difficulty = DefaultDifficulty()
	}
	return c
}

// Validate fails fast on configurations the engine cannot run
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, game.ErrUnknownMode, int(c.Mode))
	}
	if c.HoleCount < 1 {
		return fmt.Errorf("%w: hole count must be at least 1, got %d", ErrInvalidConfig, c.HoleCount)
	}
	if !c.Level.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, game.ErrUnknownLevel, int(c.Level))
	}
	if c.DurationSeconds < 1 {
		return fmt.Errorf("%w: round duration must be at least 1s, got %ds", ErrInvalidConfig, c.DurationSeconds)
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("%w: settle delay cannot be negative", ErrInvalidConfig)
	}
	if c.SpawnGap < 0 {
		return fmt.Errorf("%w: spawn gap cannot be negative", ErrInvalidConfig)
	}
	if err := c.Difficulty.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
