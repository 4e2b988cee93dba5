package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/config"
	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/events"
	"github.com/lixenwraith/whack-a-mole/round"
	"github.com/lixenwraith/whack-a-mole/status"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// syncPoster runs posted work inline, standing in for engine.Loop
var syncPoster = PosterFunc(func(fn func()) bool {
	fn()
	return true
})

type fakeSound struct{ toggles int }

func (f *fakeSound) ToggleMute() bool {
	f.toggles++
	return f.toggles%2 == 0
}

type harness struct {
	app    *App
	ctrl   *round.Controller
	sched  *engine.ManualScheduler
	screen tcell.SimulationScreen
	sound  *fakeSound
	now    time.Time
}

func newHarness(t *testing.T, cfg round.Config) *harness {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	if cfg.Seed == 0 {
		cfg.Seed = 99
	}
	sched := engine.NewManualScheduler(testStart)
	queue := events.NewEventQueue()
	reg := status.NewRegistry()
	ctrl, err := round.NewController(cfg, sched, queue, round.WithRegistry(reg))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	keys, err := NewKeymap(config.Default().Keys)
	if err != nil {
		t.Fatalf("NewKeymap: %v", err)
	}

	sound := &fakeSound{}
	app, err := NewApp(Options{
		Screen:     screen,
		Poster:     syncPoster,
		Controller: ctrl,
		Queue:      queue,
		Keymap:     keys,
		Config:     cfg,
		Duration:   cfg.DurationSeconds,
		Registry:   reg,
		Sound:      sound,
		Help:       "q quit",
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return &harness{app: app, ctrl: ctrl, sched: sched, screen: screen, sound: sound, now: testStart}
}

// advance moves round time and renders a frame
func (h *harness) advance(d time.Duration) {
	h.sched.Advance(d)
	h.now = h.now.Add(d)
	h.app.Step(h.now)
}

func (h *harness) key(k tcell.Key, r rune) bool {
	return h.app.handleInput(tcell.NewEventKey(k, r, tcell.ModNone))
}

func (h *harness) text() string {
	return strings.Join(screenRows(h.screen), "\n")
}

func screenRows(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return rows
}
