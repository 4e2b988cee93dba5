// Package config loads whack-a-mole settings from YAML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/whack-a-mole/game"
	"github.com/lixenwraith/whack-a-mole/round"
)

// ErrUnknownKey reports a key binding name the terminal frontend cannot map
var ErrUnknownKey = errors.New("unknown key name")

// File is the on-disk configuration
type File struct {
	Mode       string          `yaml:"mode"`     // single | two
	Level      string          `yaml:"level"`    // easy | medium | hard
	Holes      int             `yaml:"holes"`    // grid size
	Duration   int             `yaml:"duration"` // seconds, 0 selects the mode default
	SettleMs   int             `yaml:"settle_ms"`
	SpawnGapMs int             `yaml:"spawn_gap_ms"`
	Seed       uint64          `yaml:"seed"`
	Difficulty *DifficultyFile `yaml:"difficulty"`
	Keys       KeyBindings     `yaml:"keys"`
	Sound      bool            `yaml:"sound"`
}

// WindowFile is a reveal window in milliseconds
type WindowFile struct {
	MinMs int `yaml:"min_ms"`
	MaxMs int `yaml:"max_ms"`
}

// DifficultyFile overrides pacing tables, omitted entries keep their defaults
type DifficultyFile struct {
	Easy   *WindowFile  `yaml:"easy"`
	Medium *WindowFile  `yaml:"medium"`
	Hard   *WindowFile  `yaml:"hard"`
	Tiers  []WindowFile `yaml:"tiers"` // exactly three when present
	Upper  float64      `yaml:"upper"`
	Lower  float64      `yaml:"lower"`
}

// KeyBindings maps terminal keys to actions
// Names are single characters or one of KeyNames
type KeyBindings struct {
	Player1 []string `yaml:"player1"` // Hit the revealed hole as Player1
	Player2 []string `yaml:"player2"` // Hit the revealed hole as Player2
	Pause   string   `yaml:"pause"`
	Start   string   `yaml:"start"`
	Quit    string   `yaml:"quit"`
	Mute    string   `yaml:"mute"`
}

// KeyNames are the named keys accepted in bindings
var KeyNames = []string{"space", "enter", "tab", "backspace", "esc", "up", "down", "left", "right"}

// Default returns the built-in configuration
func Default() *File {
	return &File{
		Mode:  "single",
		Level: "medium",
		Holes: round.DefaultHoleCount,
		Keys: KeyBindings{
			Player1: []string{"space"},
			Player2: []string{"enter"},
			Pause:   "p",
			Start:   "s",
			Quit:    "q",
			Mute:    "m",
		},
		Sound: true,
	}
}

// LoadFile reads and validates a YAML configuration file
func LoadFile(filePath string) (*File, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result
// Unknown fields are rejected
func Parse(data []byte) (*File, error) {
	f := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse config YAML: %w", round.ErrInvalidConfig, err)
	}

	if err := validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate re-checks f after programmatic changes such as command-line overrides
func (f *File) Validate() error {
	return validate(f)
}

// validate checks everything RoundConfig and the frontend rely on
func validate(f *File) error {
	if _, err := game.ParseMode(f.Mode); err != nil {
		return fmt.Errorf("%w: %w", round.ErrInvalidConfig, err)
	}
	if _, err := game.ParseLevel(f.Level); err != nil {
		return fmt.Errorf("%w: %w", round.ErrInvalidConfig, err)
	}
	if f.Holes < 1 {
		return fmt.Errorf("%w: holes must be >= 1, got %d", round.ErrInvalidConfig, f.Holes)
	}
	if f.Holes > 10 {
		// Digit keys address holes 1-9 and 0
		return fmt.Errorf("%w: holes must be <= 10, got %d", round.ErrInvalidConfig, f.Holes)
	}
	if f.Duration < 0 {
		return fmt.Errorf("%w: duration must be >= 0, got %d", round.ErrInvalidConfig, f.Duration)
	}
	if f.SettleMs < 0 || f.SpawnGapMs < 0 {
		return fmt.Errorf("%w: settle_ms and spawn_gap_ms must be >= 0", round.ErrInvalidConfig)
	}
	if d := f.Difficulty; d != nil && d.Tiers != nil && len(d.Tiers) != 3 {
		return fmt.Errorf("%w: difficulty.tiers needs 3 windows, got %d", round.ErrInvalidConfig, len(d.Tiers))
	}
	return validateKeys(&f.Keys)
}

func validateKeys(k *KeyBindings) error {
	if len(k.Player1) == 0 || len(k.Player2) == 0 {
		return fmt.Errorf("%w: keys.player1 and keys.player2 need at least one key", round.ErrInvalidConfig)
	}

	seen := make(map[string]string)
	check := func(action, name string) error {
		if !ValidKeyName(name) {
			return fmt.Errorf("%w: %w: %q for %s", round.ErrInvalidConfig, ErrUnknownKey, name, action)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("%w: key %q bound to both %s and %s", round.ErrInvalidConfig, name, prev, action)
		}
		seen[name] = action
		return nil
	}

	for _, name := range k.Player1 {
		if err := check("player1", name); err != nil {
			return err
		}
	}
	for _, name := range k.Player2 {
		if err := check("player2", name); err != nil {
			return err
		}
	}
	for _, b := range []struct{ action, name string }{
		{"pause", k.Pause}, {"start", k.Start}, {"quit", k.Quit}, {"mute", k.Mute},
	} {
		if err := check(b.action, b.name); err != nil {
			return err
		}
	}
	return nil
}

// ValidKeyName accepts a single printable non-digit character or a named key
// Digits are reserved for hole selection
func ValidKeyName(name string) bool {
	for _, n := range KeyNames {
		if n == name {
			return true
		}
	}
	r := []rune(name)
	return len(r) == 1 && r[0] > ' ' && r[0] != 0x7f && (r[0] < '0' || r[0] > '9')
}

// RoundConfig converts the file into an engine configuration
func (f *File) RoundConfig() (round.Config, error) {
	mode, err := game.ParseMode(f.Mode)
	if err != nil {
		return round.Config{}, fmt.Errorf("%w: %w", round.ErrInvalidConfig, err)
	}
	level, err := game.ParseLevel(f.Level)
	if err != nil {
		return round.Config{}, fmt.Errorf("%w: %w", round.ErrInvalidConfig, err)
	}

	cfg := round.Config{
		Mode:            mode,
		DurationSeconds: f.Duration,
		HoleCount:       f.Holes,
		Level:           level,
		SettleDelay:     time.Duration(f.SettleMs) * time.Millisecond,
		SpawnGap:        time.Duration(f.SpawnGapMs) * time.Millisecond,
		Seed:            f.Seed,
	}
	if f.Difficulty != nil {
		cfg.Difficulty = f.Difficulty.apply(round.DefaultDifficulty())
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return round.Config{}, err
	}
	return cfg, nil
}

func (d *DifficultyFile) apply(base round.Difficulty) round.Difficulty {
	for level, w := range map[game.Level]*WindowFile{
		game.LevelEasy:   d.Easy,
		game.LevelMedium: d.Medium,
		game.LevelHard:   d.Hard,
	} {
		if w != nil {
			base.Levels[level] = w.window()
		}
	}
	for i, w := range d.Tiers {
		if i < len(base.Tiers) {
			base.Tiers[i] = w.window()
		}
	}
	if d.Upper != 0 {
		base.Upper = d.Upper
	}
	if d.Lower != 0 {
		base.Lower = d.Lower
	}
	return base
}

func (w WindowFile) window() round.Window {
	return round.Window{
		Min: time.Duration(w.MinMs) * time.Millisecond,
		Max: time.Duration(w.MaxMs) * time.Millisecond,
	}
}
