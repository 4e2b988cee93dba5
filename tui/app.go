package tui

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/core"
	"github.com/lixenwraith/whack-a-mole/events"
	"github.com/lixenwraith/whack-a-mole/game"
	"github.com/lixenwraith/whack-a-mole/round"
	"github.com/lixenwraith/whack-a-mole/status"
)

// DefaultFrameInterval is ~60 FPS
const DefaultFrameInterval = 16 * time.Millisecond

// Poster runs work on the goroutine that owns the controller
type Poster interface {
	Post(fn func()) bool
}

// PosterFunc adapts a function to Poster
type PosterFunc func(fn func()) bool

// Post calls f(fn)
func (f PosterFunc) Post(fn func()) bool { return f(fn) }

// Muter is the sound control surface the frontend needs
type Muter interface {
	ToggleMute() bool
}

// Options wires an App
type Options struct {
	Screen     tcell.Screen
	Poster     Poster
	Controller *round.Controller
	Queue      *events.EventQueue
	Keymap     *Keymap
	Config     round.Config // As given to the controller
	Duration   int          // Round length the user asked for in seconds, 0 follows the mode default
	Registry   *status.Registry
	Sound      Muter // Optional
	Logger     *log.Logger
	Help       string
	Frame      time.Duration
}

// App is the terminal frontend loop
// Input is posted to the controller's goroutine; state comes back only as events through the queue
type App struct {
	screen   tcell.Screen
	poster   Poster
	ctrl     *round.Controller
	router   *events.Router[time.Time]
	view     *View
	renderer *Renderer
	keys     *Keymap
	sound    Muter
	logger   *log.Logger
	frame    time.Duration
	cfg      round.Config // UI copy, source of level/mode changes between rounds
	duration int          // Requested round length, survives mode switches
}

// NewApp validates opts and builds the frontend
func NewApp(opts Options) (*App, error) {
	if opts.Screen == nil || opts.Poster == nil || opts.Controller == nil || opts.Queue == nil || opts.Keymap == nil {
		return nil, errors.New("tui: screen, poster, controller, queue and keymap are required")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Frame <= 0 {
		opts.Frame = DefaultFrameInterval
	}

	a := &App{
		screen:   opts.Screen,
		poster:   opts.Poster,
		ctrl:     opts.Controller,
		router:   events.NewRouter[time.Time](opts.Queue),
		view:     NewView(opts.Config.Mode, opts.Config.Level, opts.Config.HoleCount),
		renderer: NewRenderer(opts.Screen, opts.Registry, opts.Help),
		keys:     opts.Keymap,
		sound:    opts.Sound,
		logger:   opts.Logger,
		frame:    opts.Frame,
		cfg:      opts.Config,
		duration: opts.Duration,
	}
	a.router.Register(a.view)
	return a, nil
}

// Register adds a routed event consumer such as the audio player
func (a *App) Register(h events.Handler[time.Time]) {
	a.router.Register(h)
}

// View exposes the presentation model
func (a *App) View() *View {
	return a.view
}

// Run processes input and frames until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.Step(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
		}
		a.Step(time.Now())
	}
}

// Step dispatches pending events and draws one frame
func (a *App) Step(now time.Time) {
	if a.router.DispatchAll(now) > 0 && a.view.Phase != PhaseReady {
		a.cfg.Mode = a.view.Mode
		if a.view.Mode == game.ModeSinglePlayer {
			a.cfg.Level = a.view.Level
		}
	}
	a.renderer.Draw(a.view, now)
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.Execute(a.keys.Resolve(ev))
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Execute carries out one command, returns false on quit
func (a *App) Execute(cmd Command) bool {
	switch cmd.Action {
	case ActionQuit:
		return false

	case ActionHitActive:
		a.post(func() { a.ctrl.HitActive(cmd.Player) })

	case ActionHitHole:
		a.post(func() { a.ctrl.Hit(cmd.Player, cmd.Hole) })

	case ActionTogglePause:
		a.post(func() {
			switch a.ctrl.State() {
			case round.StateRunning:
				a.ctrl.Pause()
			case round.StatePaused:
				a.ctrl.Resume()
			default:
				a.ctrl.Start()
			}
		})

	case ActionStart:
		a.post(a.ctrl.Start)

	case ActionMute:
		if a.sound != nil {
			a.sound.ToggleMute()
		}

	case ActionLevel:
		if a.betweenRounds() && a.cfg.Mode == game.ModeSinglePlayer {
			a.cfg.Level = cmd.Level
			a.reconfigure()
		}

	case ActionToggleMode:
		if a.betweenRounds() {
			if a.cfg.Mode == game.ModeTwoPlayer {
				a.cfg.Mode = game.ModeSinglePlayer
			} else {
				a.cfg.Mode = game.ModeTwoPlayer
			}
			a.cfg.DurationSeconds = a.duration
			a.reconfigure()
		}
	}
	return true
}

func (a *App) betweenRounds() bool {
	return a.view.Phase == PhaseReady || a.view.Phase == PhaseOver
}

// reconfigure resets the view immediately and applies cfg on the controller goroutine
func (a *App) reconfigure() {
	cfg := a.cfg
	a.view.Reset(cfg.Mode, cfg.Level, cfg.HoleCount)
	a.post(func() {
		if err := a.ctrl.Reconfigure(cfg); err != nil {
			a.logger.Printf("[tui] reconfigure rejected: %v", err)
		}
	})
}

func (a *App) post(fn func()) {
	if !a.poster.Post(fn) {
		a.logger.Printf("[tui] command dropped, loop stopped")
	}
}
