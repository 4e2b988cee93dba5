package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/config"
	"github.com/lixenwraith/whack-a-mole/game"
)

// Action is what a key asks the frontend to do
type Action int

const (
	ActionNone Action = iota
	ActionHitActive   // Player hits whatever hole is revealed
	ActionHitHole     // Player1 hits a specific hole
	ActionTogglePause // Pause a running round, resume a paused one
	ActionStart       // Fresh round
	ActionQuit
	ActionMute
	ActionLevel      // Select a single-player level between rounds
	ActionToggleMode // Switch single/two-player between rounds
)

// Command is a resolved key press
type Command struct {
	Action Action
	Player game.PlayerID
	Hole   int
	Level  game.Level
}

type keyID struct {
	key tcell.Key
	r   rune
}

var namedKeys = map[string]keyID{
	"space":     {tcell.KeyRune, ' '},
	"enter":     {tcell.KeyEnter, 0},
	"tab":       {tcell.KeyTab, 0},
	"backspace": {tcell.KeyBackspace2, 0},
	"esc":       {tcell.KeyEscape, 0},
	"up":        {tcell.KeyUp, 0},
	"down":      {tcell.KeyDown, 0},
	"left":      {tcell.KeyLeft, 0},
	"right":     {tcell.KeyRight, 0},
}

// Keymap resolves tcell key events to commands
type Keymap struct {
	bindings map[keyID]Command
}

// NewKeymap builds a keymap from configured bindings
// Digits select holes (1-9, 0 is the tenth); F1-F3 pick a level and F4 switches mode
func NewKeymap(kb config.KeyBindings) (*Keymap, error) {
	km := &Keymap{bindings: make(map[keyID]Command)}

	bind := func(name string, cmd Command) error {
		id, err := parseKey(name)
		if err != nil {
			return err
		}
		km.bindings[id] = cmd
		return nil
	}

	for _, name := range kb.Player1 {
		if err := bind(name, Command{Action: ActionHitActive, Player: game.Player1}); err != nil {
			return nil, err
		}
	}
	for _, name := range kb.Player2 {
		if err := bind(name, Command{Action: ActionHitActive, Player: game.Player2}); err != nil {
			return nil, err
		}
	}
	for _, b := range []struct {
		name string
		cmd  Command
	}{
		{kb.Pause, Command{Action: ActionTogglePause}},
		{kb.Start, Command{Action: ActionStart}},
		{kb.Quit, Command{Action: ActionQuit}},
		{kb.Mute, Command{Action: ActionMute}},
	} {
		if err := bind(b.name, b.cmd); err != nil {
			return nil, err
		}
	}

	for d := '0'; d <= '9'; d++ {
		hole := int(d - '1')
		if d == '0' {
			hole = 9
		}
		km.bindings[keyID{tcell.KeyRune, d}] = Command{Action: ActionHitHole, Player: game.Player1, Hole: hole}
	}
	km.bindings[keyID{tcell.KeyF1, 0}] = Command{Action: ActionLevel, Level: game.LevelEasy}
	km.bindings[keyID{tcell.KeyF2, 0}] = Command{Action: ActionLevel, Level: game.LevelMedium}
	km.bindings[keyID{tcell.KeyF3, 0}] = Command{Action: ActionLevel, Level: game.LevelHard}
	km.bindings[keyID{tcell.KeyF4, 0}] = Command{Action: ActionToggleMode}
	km.bindings[keyID{tcell.KeyCtrlC, 0}] = Command{Action: ActionQuit}

	return km, nil
}

// Resolve maps one key event, ActionNone when unbound
func (km *Keymap) Resolve(ev *tcell.EventKey) Command {
	id := keyID{key: ev.Key()}
	if id.key == tcell.KeyRune {
		id.r = ev.Rune()
	}
	if id.key == tcell.KeyBackspace {
		id.key = tcell.KeyBackspace2
	}
	if cmd, ok := km.bindings[id]; ok {
		return cmd
	}
	return Command{}
}

func parseKey(name string) (keyID, error) {
	if !config.ValidKeyName(name) {
		return keyID{}, fmt.Errorf("%w: %q", config.ErrUnknownKey, name)
	}
	if id, ok := namedKeys[name]; ok {
		return id, nil
	}
	return keyID{tcell.KeyRune, []rune(name)[0]}, nil
}
