// Package game holds the value types shared by the round engine, its events and presentation
package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode reports a mode name or value outside SinglePlayer/TwoPlayer
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownLevel reports a level name or value outside Easy/Medium/Hard
	ErrUnknownLevel = errors.New("unknown difficulty level")
)

// PlayerID identifies a player, PlayerNone doubles as "no owner"
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case PlayerNone:
		return "None"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Unknown"
	}
}

// Other returns the opposing player in a two-player round
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// Kind is what a revealed hole holds
type Kind int

const (
	KindNone Kind = iota
	KindMole
	KindBomb
	KindNeutral
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindMole:
		return "Mole"
	case KindBomb:
		return "Bomb"
	case KindNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// Entity is the transient occupant of one reveal
// Owner is only meaningful for a two-player Mole
type Entity struct {
	Kind  Kind
	Owner PlayerID
}

func (e Entity) String() string {
	if e.Kind == KindMole && e.Owner != PlayerNone {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Owner)
	}
	return e.Kind.String()
}

// Mode selects the scoring table, entity policy and pacing model
type Mode int

const (
	ModeSinglePlayer Mode = iota
	ModeTwoPlayer
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "SinglePlayer"
	case ModeTwoPlayer:
		return "TwoPlayer"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeSinglePlayer || m == ModeTwoPlayer
}

// Players returns the ledger participants for the mode
func (m Mode) Players() []PlayerID {
	if m == ModeTwoPlayer {
		return []PlayerID{Player1, Player2}
	}
	return []PlayerID{Player1}
}

// ParseMode accepts "single", "singleplayer", "1p", "two", "twoplayer", "2p" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "singleplayer", "single-player", "1p", "1":
		return ModeSinglePlayer, nil
	case "two", "twoplayer", "two-player", "2p", "2":
		return ModeTwoPlayer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Level is the user-selected single-player difficulty
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether l is a known level
func (l Level) Valid() bool {
	return l >= LevelEasy && l <= LevelHard
}

// ParseLevel maps "easy", "medium", "hard" (case-insensitive) to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return LevelEasy, nil
	case "medium":
		return LevelMedium, nil
	case "hard":
		return LevelHard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
