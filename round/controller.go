// Package round implements the whack-a-mole round engine: lifecycle, spawn cadence, hit resolution and scoring
//
// A Controller is not safe for concurrent use. Every method and every timer callback must run on the
// goroutine that drives its engine.Scheduler (engine.Loop.Post in production, the test goroutine with
// engine.ManualScheduler)
package round

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/events"
	"github.com/lixenwraith/whack-a-mole/game"
	"github.com/lixenwraith/whack-a-mole/status"
)

// countdownStep is the countdown resolution
const countdownStep = time.Second

// Option customizes a Controller
type Option func(*Controller)

// WithLogger routes lifecycle logging to logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry publishes round counters to reg
func WithRegistry(reg *status.Registry) Option {
	return func(c *Controller) {
		c.registry = reg
	}
}

// Controller orchestrates the round lifecycle and owns all round state
type Controller struct {
	cfg      Config
	sched    engine.Scheduler
	emitter  events.Emitter
	logger   *log.Logger
	registry *status.Registry
	stats    *metrics

	state     State
	roundID   uuid.UUID
	remaining int
	tier      Tier
	resolving bool

	ledger   *Ledger
	board    *Board
	picker   *Picker
	spawner  *Spawner
	resolver Resolver

	countdown engine.TimerID
	epoch     uint64 // Bumped on every exit from Running
}

// NewController validates cfg and builds an Idle controller
// emitter may be nil to discard events
func NewController(cfg Config, sched engine.Scheduler, emitter events.Emitter, opts ...Option) (*Controller, error) {
	if sched == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidConfig)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if emitter == nil {
		emitter = events.Discard
	}

	c := &Controller{
		sched:   sched,
		emitter: emitter,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stats = newMetrics(c.registry)
	c.apply(cfg)
	c.setState(StateIdle)
	return c, nil
}

// apply rebuilds the round collaborators for cfg
func (c *Controller) apply(cfg Config) {
	c.cfg = cfg
	c.ledger = NewLedger(cfg.Mode.Players())
	c.board = NewBoard(cfg.HoleCount)
	c.picker = NewPicker(newRand(cfg.Seed))
	c.spawner = newSpawner(c.sched, c.board, c.picker, policyFor(cfg.Mode), c, c.stats, cfg.SettleDelay, cfg.SpawnGap)
	c.remaining = cfg.DurationSeconds
	c.tier = Tier0
}

// Reconfigure replaces the configuration between rounds, it takes effect on the next Start
// Refused while Running; a Paused round is abandoned
func (c *Controller) Reconfigure(cfg Config) error {
	if c.state == StateRunning {
		return fmt.Errorf("%w: cannot reconfigure a running round", ErrInvalidConfig)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.stopTimers()
	c.clearBoard(events.DespawnReset)
	c.apply(cfg)
	c.setState(StateIdle)
	c.logger.Printf("[round] reconfigured: mode=%s holes=%d duration=%ds level=%s",
		cfg.Mode, cfg.HoleCount, cfg.DurationSeconds, cfg.Level)
	return nil
}

// Start begins a fresh round: zeroed scores, full countdown, first reveal
// No-op while Running; from Paused or Ended it is a full reset, not a resume
func (c *Controller) Start() {
	if c.state == StateRunning {
		return
	}

	c.stopTimers()
	c.clearBoard(events.DespawnReset)
	c.ledger.Reset()
	c.spawner.Reset()
	c.remaining = c.cfg.DurationSeconds
	c.tier = Tier0
	c.resolving = false
	c.roundID = uuid.New()

	c.setState(StateRunning)
	c.stats.rounds.Add(1)
	c.stats.fraction.Set(1)
	c.logger.Printf("[round] %s started: mode=%s holes=%d duration=%ds", c.roundID, c.cfg.Mode, c.cfg.HoleCount, c.cfg.DurationSeconds)

	payload := &events.RoundStartedPayload{
		RoundID:   c.roundID,
		Mode:      c.cfg.Mode,
		HoleCount: c.cfg.HoleCount,
		Duration:  c.cfg.DurationSeconds,
		Players:   c.ledger.Players(),
	}
	if c.cfg.Mode == game.ModeSinglePlayer {
		payload.Level = c.cfg.Level
	}
	c.emit(events.EventRoundStarted, payload)
	c.emit(events.EventTimeRemainingChanged, &events.TimeRemainingPayload{
		Remaining: c.remaining,
		Fraction:  1,
	})

	c.armCountdown()
	c.spawner.Spawn()
}

// Pause suspends a running round, the revealed entity is removed without scoring
// No-op unless Running
func (c *Controller) Pause() {
	if c.state != StateRunning {
		return
	}
	c.stopTimers()
	c.clearBoard(events.DespawnPaused)
	c.setState(StatePaused)
	c.logger.Printf("[round] %s paused at %ds", c.roundID, c.remaining)
	c.emit(events.EventRoundPaused, &events.RoundPausedPayload{
		RoundID:   c.roundID,
		Remaining: c.remaining,
	})
}

// Resume continues a paused round with its score and remaining time
// The countdown restarts a full second; no-op unless Paused
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.setState(StateRunning)
	c.logger.Printf("[round] %s resumed at %ds", c.roundID, c.remaining)
	c.emit(events.EventRoundResumed, &events.RoundResumedPayload{
		RoundID:   c.roundID,
		Remaining: c.remaining,
	})
	c.armCountdown()
	c.spawner.Spawn()
}

// Toggle pauses a running round and starts any other, matching a single play/pause control
func (c *Controller) Toggle() {
	if c.state == StateRunning {
		c.Pause()
		return
	}
	c.Start()
}

// Tick advances the countdown by one second
// Driven by the internal 1 s timer; an external call restarts the timer period
func (c *Controller) Tick() {
	if c.state != StateRunning {
		return
	}
	if c.countdown != 0 {
		c.sched.Cancel(c.countdown)
		c.countdown = 0
	}

	c.remaining--
	if c.remaining < 0 {
		c.remaining = 0
	}
	fraction := float64(c.remaining) / float64(c.cfg.DurationSeconds)
	if c.cfg.Mode == game.ModeTwoPlayer {
		if tier := c.cfg.Difficulty.TierFor(fraction); tier != c.tier {
			c.logger.Printf("[round] %s pacing %s -> %s", c.roundID, c.tier, tier)
			c.tier = tier
		}
	}
	c.stats.fraction.Set(fraction)
	c.emit(events.EventTimeRemainingChanged, &events.TimeRemainingPayload{
		Remaining: c.remaining,
		Fraction:  fraction,
	})

	if c.remaining == 0 {
		c.end()
		return
	}
	c.armCountdown()
}

// end closes the round with the ledger snapshot taken before any teardown
func (c *Controller) end() {
	scores := c.ledger.Snapshot()

	c.stopTimers()
	c.clearBoard(events.DespawnRoundEnded)
	c.setState(StateEnded)

	winner, tie := Winner(c.cfg.Mode, scores)
	c.logger.Printf("[round] %s ended: scores=%v winner=%s tie=%t", c.roundID, scores, winner, tie)
	c.emit(events.EventRoundEnded, &events.RoundEndedPayload{
		RoundID: c.roundID,
		Mode:    c.cfg.Mode,
		Scores:  scores,
		Winner:  winner,
		Tie:     tie,
	})
}

// Hit submits player's strike on hole
// Returns false for stale hits: not Running, hole not revealed, unknown player, or a resolution in progress
// Stale hits produce no event and no error
func (c *Controller) Hit(player game.PlayerID, hole int) bool {
	if c.state != StateRunning || c.resolving || !c.ledger.Has(player) {
		c.stats.staleHits.Add(1)
		return false
	}
	active, ok := c.board.Active()
	if !ok || active.ID != hole {
		c.stats.staleHits.Add(1)
		return false
	}

	c.resolving = true
	defer func() { c.resolving = false }()

	entity, _ := c.board.Clear(hole)
	outcome, delta := c.resolver.Resolve(c.cfg.Mode, entity, player)
	applied, score := c.ledger.Apply(player, delta)
	c.spawner.OnHit()
	c.stats.hits.Add(1)

	c.emit(events.EventHitResolved, &events.HitResolvedPayload{
		Player:  player,
		Hole:    hole,
		Entity:  entity,
		Outcome: outcome,
		Delta:   applied,
		Score:   score,
	})
	return true
}

// HitActive strikes whatever hole is revealed, for inputs that carry a player but no target
func (c *Controller) HitActive(player game.PlayerID) bool {
	active, ok := c.board.Active()
	if !ok {
		c.stats.staleHits.Add(1)
		return false
	}
	return c.Hit(player, active.ID)
}

// State returns the lifecycle phase
func (c *Controller) State() State {
	return c.state
}

// Config returns the effective configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// RoundID identifies the current or last round, uuid.Nil before the first Start
func (c *Controller) RoundID() uuid.UUID {
	return c.roundID
}

// Remaining returns the countdown in seconds
func (c *Controller) Remaining() int {
	return c.remaining
}

// Tier returns the current two-player pacing tier
func (c *Controller) Tier() Tier {
	return c.tier
}

// Score returns the current score of p
func (c *Controller) Score(p game.PlayerID) int {
	return c.ledger.Score(p)
}

// Scores returns a copy of the ledger
func (c *Controller) Scores() map[game.PlayerID]int {
	return c.ledger.Snapshot()
}

// ActiveHole returns the revealed hole id
func (c *Controller) ActiveHole() (int, bool) {
	h, ok := c.board.Active()
	return h.ID, ok
}

// Holes returns a copy of the board
func (c *Controller) Holes() []Hole {
	out := make([]Hole, c.board.Len())
	for i := range out {
		out[i], _ = c.board.Hole(i)
	}
	return out
}

// spawnHost implementation

func (c *Controller) isRunning() bool   { return c.state == StateRunning }
func (c *Controller) isResolving() bool { return c.resolving }

func (c *Controller) window() Window {
	if c.cfg.Mode == game.ModeTwoPlayer {
		return c.cfg.Difficulty.TierWindow(c.tier)
	}
	return c.cfg.Difficulty.LevelWindow(c.cfg.Level)
}

func (c *Controller) emit(t events.EventType, payload any) {
	c.emitter.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: c.sched.Now(),
	})
}

// armCountdown schedules the next Tick for this round only
func (c *Controller) armCountdown() {
	epoch := c.epoch
	c.countdown = c.sched.After(countdownStep, func() {
		if epoch != c.epoch || c.state != StateRunning {
			return
		}
		c.countdown = 0
		c.Tick()
	})
}

// stopTimers cancels the countdown and the spawner, invalidating anything already in flight
func (c *Controller) stopTimers() {
	if c.countdown != 0 {
		c.sched.Cancel(c.countdown)
		c.countdown = 0
	}
	c.spawner.Stop()
	c.epoch++
}

// clearBoard hides the revealed hole without scoring
func (c *Controller) clearBoard(reason events.DespawnReason) {
	h, ok := c.board.ClearActive()
	if !ok {
		return
	}
	c.stats.despawns.Add(1)
	c.emit(events.EventEntityDespawned, &events.EntityDespawnedPayload{
		Hole:   h.ID,
		Kind:   h.Entity.Kind,
		Reason: reason,
	})
}

func (c *Controller) setState(s State) {
	if s != c.state && !CanTransition(c.state, s) && s != StateIdle {
		c.logger.Printf("[round] unexpected transition %s -> %s", c.state, s)
	}
	c.state = s
	c.stats.state.Store(s.String())
}
