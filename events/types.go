package events

import (
	"time"
)

// EventType represents the type of round event
type EventType int

const (
	// EventRoundStarted signals a fresh round (full reset)
	// Trigger: Controller.Start from Idle, Paused or Ended
	// Payload: *RoundStartedPayload
	EventRoundStarted EventType = iota + 1

	// EventRoundPaused signals scheduling suspended, score and time kept
	// Trigger: Controller.Pause while Running | Payload: *RoundPausedPayload
	EventRoundPaused

	// EventRoundResumed signals scheduling continued after a pause
	// Trigger: Controller.Resume while Paused | Payload: *RoundResumedPayload
	EventRoundResumed

	// EventTimeRemainingChanged signals a countdown step
	// Trigger: 1 s countdown tick | Payload: *TimeRemainingPayload
	EventTimeRemainingChanged

	// EventEntitySpawned signals a hole reveal
	// Trigger: spawn timer | Payload: *EntitySpawnedPayload
	EventEntitySpawned

	// EventEntityDespawned signals a hole hidden without a hit
	// Trigger: despawn timeout, pause, round end | Payload: *EntityDespawnedPayload
	EventEntityDespawned

	// EventHitResolved signals a scored hit
	// Trigger: Controller.Hit on the active hole | Payload: *HitResolvedPayload
	EventHitResolved

	// EventRoundEnded carries the final ledger snapshot, emitted exactly once per round
	// Trigger: countdown reached zero | Payload: *RoundEndedPayload
	EventRoundEnded
)

// String returns the registered name of the event type
func (t EventType) String() string {
	return GetEventName(t)
}

// GameEvent is a single emitted event
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// Emitter accepts events from the round engine
// EventQueue is the production emitter; tests may record or re-enter synchronously
type Emitter interface {
	Push(event GameEvent)
}

// EmitterFunc adapts a function to Emitter
type EmitterFunc func(event GameEvent)

// Push calls f(event)
func (f EmitterFunc) Push(event GameEvent) {
	f(event)
}

// Discard drops every event
var Discard Emitter = EmitterFunc(func(GameEvent) {})
