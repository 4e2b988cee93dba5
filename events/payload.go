package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/whack-a-mole/game"
)

// RoundStartedPayload describes the configuration of the new round
type RoundStartedPayload struct {
	RoundID   uuid.UUID
	Mode      game.Mode
	Level     game.Level // Single-player only
	HoleCount int
	Duration  int // Seconds
	Players   []game.PlayerID
}

// RoundPausedPayload contains the countdown state frozen by the pause
type RoundPausedPayload struct {
	RoundID   uuid.UUID
	Remaining int
}

// RoundResumedPayload contains the countdown state the round resumes from
type RoundResumedPayload struct {
	RoundID   uuid.UUID
	Remaining int
}

// TimeRemainingPayload contains the countdown after a tick
type TimeRemainingPayload struct {
	Remaining int     // Seconds
	Fraction  float64 // Remaining / Duration, 0..1
}

// EntitySpawnedPayload describes a reveal
type EntitySpawnedPayload struct {
	Hole    int
	Kind    game.Kind
	Owner   game.PlayerID
	Visible time.Duration // Despawn timeout armed for this reveal
}

// DespawnReason explains why a hole was hidden without a hit
type DespawnReason int

const (
	DespawnTimeout DespawnReason = iota
	DespawnPaused
	DespawnRoundEnded
	DespawnReset
)

func (r DespawnReason) String() string {
	switch r {
	case DespawnTimeout:
		return "Timeout"
	case DespawnPaused:
		return "Paused"
	case DespawnRoundEnded:
		return "RoundEnded"
	case DespawnReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// EntityDespawnedPayload describes a hide without a hit
type EntityDespawnedPayload struct {
	Hole   int
	Kind   game.Kind
	Reason DespawnReason
}

// HitResolvedPayload describes a scored hit
type HitResolvedPayload struct {
	Player  game.PlayerID
	Hole    int
	Entity  game.Entity
	Outcome game.Outcome
	Delta   int // Applied delta after flooring, may be smaller in magnitude than the table value
	Score   int // Player score after the hit
}

// RoundEndedPayload is the single game-over payload
type RoundEndedPayload struct {
	RoundID uuid.UUID
	Mode    game.Mode
	Scores  map[game.PlayerID]int // Snapshot at expiry
	Winner  game.PlayerID         // PlayerNone on tie or single-player
	Tie     bool
}
