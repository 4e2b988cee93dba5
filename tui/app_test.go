package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/game"
	"github.com/lixenwraith/whack-a-mole/round"
)

func TestAppStartRendersRunningRound(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeTwoPlayer, HoleCount: 5})
	h.app.Step(h.now)
	if !strings.Contains(h.text(), "Ready") {
		t.Fatalf("Expected Ready before start:\n%s", h.text())
	}

	h.key(tcell.KeyRune, 's')
	h.app.Step(h.now)

	out := h.text()
	for _, want := range []string{"WHACK-A-MOLE", "Two Player", "Running", "P1: 0", "P2: 0", "Time  30s", "M1", "round.rounds=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q on screen:\n%s", want, out)
		}
	}
	if h.app.View().Phase != PhaseRunning {
		t.Errorf("Phase = %s", h.app.View().Phase)
	}
}

func TestAppHitUpdatesScoreAndFeed(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeTwoPlayer, HoleCount: 5})
	h.key(tcell.KeyRune, 's')
	h.app.Step(h.now)

	// First two-player reveal is Player1's mole
	h.key(tcell.KeyRune, ' ')
	h.app.Step(h.now)

	if got := h.app.View().Scores[game.Player1]; got != 1 {
		t.Fatalf("P1 score = %d, want 1", got)
	}
	out := h.text()
	if !strings.Contains(out, "Correct (+1)") || !strings.Contains(out, "P1: 1") {
		t.Errorf("Hit not rendered:\n%s", out)
	}

	// Next reveal after the settle delay is Player2's mole, Player1 striking it is wrong
	h.advance(round.DefaultSettleDelay)
	h.key(tcell.KeyRune, ' ')
	h.app.Step(h.now)
	if got := h.app.View().Scores[game.Player1]; got != 0 {
		t.Errorf("P1 score after wrong hit = %d, want 0", got)
	}
	if !strings.Contains(h.text(), "Wrong (-1)") {
		t.Errorf("Wrong hit missing from feed:\n%s", h.text())
	}
}

func TestAppDigitHitsSpecificHole(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeSinglePlayer, HoleCount: 9, Level: game.LevelEasy})
	h.key(tcell.KeyRune, 's')
	h.app.Step(h.now)

	active, ok := h.ctrl.ActiveHole()
	if !ok {
		t.Fatal("No revealed hole")
	}
	wrong := (active + 1) % 9
	h.key(tcell.KeyRune, rune('1'+wrong))
	h.app.Step(h.now)
	if len(h.app.View().Feed) != 0 {
		t.Fatal("Hit on a hidden hole was resolved")
	}

	h.key(tcell.KeyRune, rune('1'+active))
	h.app.Step(h.now)
	if len(h.app.View().Feed) != 1 {
		t.Fatalf("Hit on the revealed hole not resolved, feed=%v", h.app.View().Feed)
	}
}

func TestAppPauseResumeAndEnd(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeSinglePlayer, HoleCount: 4, DurationSeconds: 3})
	h.key(tcell.KeyRune, 's')
	h.advance(0)

	h.key(tcell.KeyRune, 'p')
	h.app.Step(h.now)
	if h.app.View().Phase != PhasePaused || !strings.Contains(h.text(), "Paused") {
		t.Fatalf("Expected paused screen:\n%s", h.text())
	}

	h.key(tcell.KeyRune, 'p')
	h.app.Step(h.now)
	if h.app.View().Phase != PhaseRunning {
		t.Fatalf("Expected resume, phase %s", h.app.View().Phase)
	}

	h.advance(3 * time.Second)
	if h.app.View().Phase != PhaseOver {
		t.Fatalf("Expected round over, phase %s", h.app.View().Phase)
	}
	if !strings.Contains(h.text(), "Final score:") {
		t.Errorf("Result missing:\n%s", h.text())
	}
}

func TestAppLevelAndModeBetweenRounds(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeSinglePlayer, HoleCount: 6, Level: game.LevelMedium})

	h.key(tcell.KeyF3, 0)
	h.app.Step(h.now)
	if got := h.ctrl.Config().Level; got != game.LevelHard {
		t.Fatalf("Level = %s, want Hard", got)
	}
	if !strings.Contains(h.text(), "Single Player / Hard") {
		t.Errorf("Level not shown:\n%s", h.text())
	}

	h.key(tcell.KeyF4, 0)
	h.app.Step(h.now)
	if got := h.ctrl.Config(); got.Mode != game.ModeTwoPlayer || got.DurationSeconds != round.DefaultTwoPlayerSeconds {
		t.Fatalf("Mode switch gave %+v", got)
	}

	h.key(tcell.KeyRune, 's')
	h.app.Step(h.now)
	h.key(tcell.KeyF4, 0)
	h.app.Step(h.now)
	if h.ctrl.Config().Mode != game.ModeTwoPlayer || h.ctrl.State() != round.StateRunning {
		t.Error("Mode switch applied during a running round")
	}
}

func TestAppModeSwitchKeepsRequestedDuration(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeSinglePlayer, HoleCount: 6, DurationSeconds: 45})

	for _, want := range []game.Mode{game.ModeTwoPlayer, game.ModeSinglePlayer, game.ModeTwoPlayer} {
		h.key(tcell.KeyF4, 0)
		h.app.Step(h.now)
		got := h.ctrl.Config()
		if got.Mode != want || got.DurationSeconds != 45 {
			t.Fatalf("after switch to %s: mode=%s duration=%d, want 45", want, got.Mode, got.DurationSeconds)
		}
	}
}

func TestAppMuteAndQuit(t *testing.T) {
	h := newHarness(t, round.Config{Mode: game.ModeSinglePlayer, HoleCount: 3})
	if !h.key(tcell.KeyRune, 'm') || h.sound.toggles != 1 {
		t.Error("Mute key not forwarded")
	}
	if h.key(tcell.KeyRune, 'q') {
		t.Error("q did not quit")
	}
	if h.key(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C did not quit")
	}
	if !h.key(tcell.KeyRune, 'z') {
		t.Error("Unbound key quit")
	}
}
