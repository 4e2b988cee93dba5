package tui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/config"
	"github.com/lixenwraith/whack-a-mole/game"
)

func TestKeymapDefaults(t *testing.T) {
	km, err := NewKeymap(config.Default().Keys)
	if err != nil {
		t.Fatalf("NewKeymap: %v", err)
	}

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"space", tcell.KeyRune, ' ', Command{Action: ActionHitActive, Player: game.Player1}},
		{"enter", tcell.KeyEnter, 0, Command{Action: ActionHitActive, Player: game.Player2}},
		{"digit 1", tcell.KeyRune, '1', Command{Action: ActionHitHole, Player: game.Player1, Hole: 0}},
		{"digit 9", tcell.KeyRune, '9', Command{Action: ActionHitHole, Player: game.Player1, Hole: 8}},
		{"digit 0", tcell.KeyRune, '0', Command{Action: ActionHitHole, Player: game.Player1, Hole: 9}},
		{"pause", tcell.KeyRune, 'p', Command{Action: ActionTogglePause}},
		{"start", tcell.KeyRune, 's', Command{Action: ActionStart}},
		{"quit", tcell.KeyRune, 'q', Command{Action: ActionQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Command{Action: ActionQuit}},
		{"mute", tcell.KeyRune, 'm', Command{Action: ActionMute}},
		{"easy", tcell.KeyF1, 0, Command{Action: ActionLevel, Level: game.LevelEasy}},
		{"hard", tcell.KeyF3, 0, Command{Action: ActionLevel, Level: game.LevelHard}},
		{"mode", tcell.KeyF4, 0, Command{Action: ActionToggleMode}},
		{"unbound", tcell.KeyRune, 'z', Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Resolve(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if got != tt.want {
				t.Errorf("Resolve = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeymapCustomBindings(t *testing.T) {
	kb := config.Default().Keys
	kb.Player1 = []string{"a"}
	kb.Player2 = []string{"l", "tab"}
	km, err := NewKeymap(kb)
	if err != nil {
		t.Fatalf("NewKeymap: %v", err)
	}

	if got := km.Resolve(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)); got.Player != game.Player1 {
		t.Errorf("a -> %+v", got)
	}
	if got := km.Resolve(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)); got.Player != game.Player2 {
		t.Errorf("tab -> %+v", got)
	}
	if got := km.Resolve(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); got.Action != ActionNone {
		t.Errorf("space still bound: %+v", got)
	}
}

func TestKeymapRejectsUnknownKey(t *testing.T) {
	kb := config.Default().Keys
	kb.Pause = "pause-key"
	if _, err := NewKeymap(kb); !errors.Is(err, config.ErrUnknownKey) {
		t.Errorf("error = %v, want ErrUnknownKey", err)
	}
}
