package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/audio"
	"github.com/lixenwraith/whack-a-mole/config"
	"github.com/lixenwraith/whack-a-mole/core"
	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/events"
	"github.com/lixenwraith/whack-a-mole/round"
	"github.com/lixenwraith/whack-a-mole/status"
	"github.com/lixenwraith/whack-a-mole/tui"
)

var (
	modeFlag     = flag.String("mode", "", "Game mode: single, two")
	levelFlag    = flag.String("level", "", "Single-player level: easy, medium, hard")
	holesFlag    = flag.Int("holes", 0, "Number of holes (1-10)")
	durationFlag = flag.Int("duration", 0, "Round length in seconds, 0 for the mode default")
	configFlag   = flag.String("config", "", "YAML configuration file")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 for a random round")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/whack.log")
	muteFlag     = flag.Bool("mute", false, "Start with sound off")
)

// overrides are command-line values that win over the config file
type overrides struct {
	mode     string
	level    string
	holes    int
	duration int
	seed     uint64
	mute     bool
}

// resolveConfig loads path (or the defaults) and applies non-zero overrides
func resolveConfig(path string, o overrides) (*config.File, round.Config, error) {
	file := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, round.Config{}, err
		}
		file = loaded
	}

	if o.mode != "" {
		file.Mode = o.mode
	}
	if o.level != "" {
		file.Level = o.level
	}
	if o.holes != 0 {
		file.Holes = o.holes
	}
	if o.duration != 0 {
		file.Duration = o.duration
	}
	if o.seed != 0 {
		file.Seed = o.seed
	}
	if o.mute {
		file.Sound = false
	}

	if err := file.Validate(); err != nil {
		return nil, round.Config{}, err
	}
	cfg, err := file.RoundConfig()
	if err != nil {
		return nil, round.Config{}, err
	}
	return file, cfg, nil
}

// helpLine summarizes the bindings for the footer
func helpLine(kb config.KeyBindings) string {
	return fmt.Sprintf("%s P1 | %s P2 | 1-9,0 hole | %s pause | %s start | F1-F3 level | F4 mode | %s mute | %s quit",
		strings.Join(kb.Player1, "/"), strings.Join(kb.Player2, "/"), kb.Pause, kb.Start, kb.Mute, kb.Quit)
}

func main() {
	// Panic recovery for the main goroutine, engine goroutines use core.Go
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	file, cfg, err := resolveConfig(*configFlag, overrides{
		mode:     *modeFlag,
		level:    *levelFlag,
		holes:    *holesFlag,
		duration: *durationFlag,
		seed:     *seedFlag,
		mute:     *muteFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	keys, err := tui.NewKeymap(file.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	registry := status.NewRegistry()
	queue := events.NewEventQueue()
	loop := engine.NewLoop(engine.NewMonotonicTimeProvider(), engine.DefaultLoopResolution)

	ctrl, err := round.NewController(cfg, loop, queue,
		round.WithLogger(log.Default()),
		round.WithRegistry(registry),
	)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create round: %v\n", err)
		os.Exit(2)
	}

	audioCfg := audio.LoadConfig()
	if !file.Sound {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg, log.Default())
	if err := player.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("[audio] initialization failed: %v", err)
	} else {
		defer player.Close()
	}

	app, err := tui.NewApp(tui.Options{
		Screen:     screen,
		Poster:     loop,
		Controller: ctrl,
		Queue:      queue,
		Keymap:     keys,
		Config:     cfg,
		Duration:   file.Duration,
		Registry:   registry,
		Sound:      player,
		Logger:     log.Default(),
		Help:       helpLine(file.Keys),
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create frontend: %v\n", err)
		os.Exit(1)
	}
	app.Register(player)

	loop.Start()
	defer loop.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[main] mode=%s holes=%d duration=%ds level=%s", cfg.Mode, cfg.HoleCount, cfg.DurationSeconds, cfg.Level)
	if err := app.Run(ctx); err != nil {
		log.Printf("[main] frontend stopped: %v", err)
	}
}
