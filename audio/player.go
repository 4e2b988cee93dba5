package audio

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/whack-a-mole/events"
)

// Player turns round events into cues on the system speaker
// Safe for use from any goroutine; playback failures never reach the round
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	out         func(Cue, beep.Streamer) // Playback sink, the speaker mixer once initialized

	muted  atomic.Bool
	played atomic.Int64
	logger *log.Logger
}

// NewPlayer creates an uninitialized player, nil cfg selects DefaultConfig
func NewPlayer(cfg *Config, logger *log.Logger) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Initialize opens the speaker
// An error leaves the player silent; the game runs without sound
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.out = func(_ Cue, s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Close silences pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.out = nil
	p.initialized = false
}

// Play queues cue, returns false when silent
func (p *Player) Play(cue Cue) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return false
	}
	s := Synthesize(cue, p.cfg)
	if s == nil {
		return false
	}
	p.out(cue, s)
	p.played.Add(1)
	return true
}

// ToggleMute flips mute, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	p.logger.Printf("[audio] muted=%t", muted)
	return !muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played returns the number of cues queued so far
func (p *Player) Played() int64 {
	return p.played.Load()
}

// HandleEvent plays the cue for a routed round event
func (p *Player) HandleEvent(_ time.Time, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRoundStarted:
		p.Play(CueStart)
	case events.EventRoundEnded:
		p.Play(CueEnd)
	case events.EventHitResolved:
		payload, ok := ev.Payload.(*events.HitResolvedPayload)
		if !ok {
			return
		}
		if cue, ok := CueForOutcome(payload.Outcome); ok {
			p.Play(cue)
		}
	}
}

// EventTypes lists the events that produce cues
func (p *Player) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRoundStarted,
		events.EventHitResolved,
		events.EventRoundEnded,
	}
}
