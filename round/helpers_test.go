package round

import (
	"testing"
	"time"

	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/events"
	"github.com/lixenwraith/whack-a-mole/game"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// recorder captures emitted events in order
type recorder struct {
	events []events.GameEvent
}

func (r *recorder) Push(ev events.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t events.EventType) (events.GameEvent, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return events.GameEvent{}, false
}

func (r *recorder) indexOf(t events.EventType) int {
	for i, ev := range r.events {
		if ev.Type == t {
			return i
		}
	}
	return -1
}

func (r *recorder) reset() {
	r.events = nil
}

func newTestController(t *testing.T, cfg Config) (*Controller, *engine.ManualScheduler, *recorder) {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	sched := engine.NewManualScheduler(testEpoch)
	rec := &recorder{}
	c, err := NewController(cfg, sched, rec)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, sched, rec
}

func twoPlayerConfig() Config {
	return Config{Mode: game.ModeTwoPlayer, HoleCount: 5, DurationSeconds: 30}
}

func singlePlayerConfig(level game.Level) Config {
	return Config{Mode: game.ModeSinglePlayer, HoleCount: 6, Level: level}
}

// forcePolicy makes every reveal hold e
func forcePolicy(c *Controller, e game.Entity) {
	c.spawner.policy = NewRoundRobinPolicy([]game.Entity{e})
}

// mustActive returns the revealed hole or fails
func mustActive(t *testing.T, c *Controller) int {
	t.Helper()
	id, ok := c.ActiveHole()
	if !ok {
		t.Fatal("expected a revealed hole")
	}
	return id
}

func newSchedForTest() *engine.ManualScheduler {
	return engine.NewManualScheduler(testEpoch)
}
