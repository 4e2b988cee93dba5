package round

import (
	"time"

	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/events"
)

// spawnHost is the controller surface the spawner depends on
type spawnHost interface {
	isRunning() bool
	isResolving() bool
	window() Window
	emit(t events.EventType, payload any)
}

// Spawner owns the reveal/hide cadence
// At most one of its timers is meaningful at a time: a pending spawn or a pending despawn
type Spawner struct {
	sched  engine.Scheduler
	board  *Board
	picker *Picker
	policy EntityPolicy
	host   spawnHost
	stats  *metrics

	settle time.Duration // Hit -> next reveal
	gap    time.Duration // Despawn -> next reveal, 0 is immediate

	spawnTimer   engine.TimerID
	despawnTimer engine.TimerID
	lastHole     int
	epoch        uint64 // Bumped by Stop, invalidates callbacks that escaped cancellation
}

func newSpawner(sched engine.Scheduler, board *Board, picker *Picker, policy EntityPolicy, host spawnHost, stats *metrics, settle, gap time.Duration) *Spawner {
	return &Spawner{
		sched:    sched,
		board:    board,
		picker:   picker,
		policy:   policy,
		host:     host,
		stats:    stats,
		settle:   settle,
		gap:      gap,
		lastHole: NoHole,
	}
}

// ScheduleNext arms a reveal after delay, replacing any pending one
func (s *Spawner) ScheduleNext(delay time.Duration) {
	s.cancel(&s.spawnTimer)
	epoch := s.epoch
	s.spawnTimer = s.sched.After(delay, func() {
		if epoch != s.epoch {
			return
		}
		s.spawnTimer = 0
		s.Spawn()
	})
}

// Spawn reveals one entity now and arms its despawn timer
// Returns false when the round is not running or a hole is already up
func (s *Spawner) Spawn() bool {
	if !s.host.isRunning() {
		return false
	}
	if s.host.isResolving() {
		s.ScheduleNext(s.settle)
		return false
	}
	if _, up := s.board.Active(); up {
		return false
	}

	id := s.picker.PickHole(s.board.Len(), s.lastHole)
	entity := s.policy.Next(s.picker)
	s.board.Activate(id, entity)
	s.lastHole = id

	// Armed before emitting so a synchronous subscriber hitting the hole can cancel it
	visible := s.picker.SampleDuration(s.host.window())
	epoch := s.epoch
	s.despawnTimer = s.sched.After(visible, func() {
		if epoch != s.epoch {
			return
		}
		s.despawnTimer = 0
		s.expire(id)
	})

	s.stats.spawns.Add(1)
	s.host.emit(events.EventEntitySpawned, &events.EntitySpawnedPayload{
		Hole:    id,
		Kind:    entity.Kind,
		Owner:   entity.Owner,
		Visible: visible,
	})
	return true
}

// expire hides an unhit reveal and continues the cadence
func (s *Spawner) expire(id int) {
	entity, ok := s.board.Clear(id)
	if !ok {
		return
	}
	s.stats.despawns.Add(1)
	s.host.emit(events.EventEntityDespawned, &events.EntityDespawnedPayload{
		Hole:   id,
		Kind:   entity.Kind,
		Reason: events.DespawnTimeout,
	})

	if !s.host.isRunning() {
		return
	}
	if s.gap > 0 {
		s.ScheduleNext(s.gap)
		return
	}
	s.Spawn()
}

// OnHit cancels the pending despawn and schedules the next reveal after the settle delay
func (s *Spawner) OnHit() {
	s.cancel(&s.despawnTimer)
	if s.host.isRunning() {
		s.ScheduleNext(s.settle)
	}
}

// Stop cancels every pending timer and invalidates in-flight callbacks
func (s *Spawner) Stop() {
	s.cancel(&s.spawnTimer)
	s.cancel(&s.despawnTimer)
	s.epoch++
}

// Reset stops the spawner and rewinds selection state for a new round
func (s *Spawner) Reset() {
	s.Stop()
	s.policy.Reset()
	s.lastHole = NoHole
}

// Pending reports whether a spawn or despawn is armed
func (s *Spawner) Pending() bool {
	return s.spawnTimer != 0 || s.despawnTimer != 0
}

func (s *Spawner) cancel(id *engine.TimerID) {
	if *id != 0 {
		s.sched.Cancel(*id)
		*id = 0
	}
}
