// Package tui is the terminal frontend: it renders round events with tcell and turns keys into round commands
package tui

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/whack-a-mole/events"
	"github.com/lixenwraith/whack-a-mole/game"
)

// FeedSize is the number of resolved hits kept in the live feed
const FeedSize = 5

// flashDuration keeps a struck hole highlighted
const flashDuration = 250 * time.Millisecond

// Phase is the frontend's idea of the round lifecycle, derived only from events
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseOver:
		return "Round over"
	default:
		return "Unknown"
	}
}

// Cell is the rendered state of one hole
type Cell struct {
	Entity  game.Entity // Zero while hidden
	Flash   game.Outcome
	FlashAt time.Time
}

// FeedEntry is one line of the live feed
type FeedEntry struct {
	Player  game.PlayerID
	Outcome game.Outcome
	Label   string
	At      time.Time
}

// View is the presentation model, updated only through HandleEvent
// Owned by the UI goroutine
type View struct {
	Phase     Phase
	RoundID   uuid.UUID
	Mode      game.Mode
	Level     game.Level
	Players   []game.PlayerID
	Cells     []Cell
	Scores    map[game.PlayerID]int
	Remaining int
	Fraction  float64
	Feed      []FeedEntry
	Winner    game.PlayerID
	Tie       bool
}

// NewView creates an empty board of holes for mode
func NewView(mode game.Mode, level game.Level, holes int) *View {
	v := &View{
		Mode:     mode,
		Level:    level,
		Players:  mode.Players(),
		Cells:    make([]Cell, holes),
		Scores:   make(map[game.PlayerID]int),
		Fraction: 1,
	}
	for _, p := range v.Players {
		v.Scores[p] = 0
	}
	return v
}

// Reset returns the view to an empty board, keeping its identity for registered routers
func (v *View) Reset(mode game.Mode, level game.Level, holes int) {
	*v = *NewView(mode, level, holes)
}

// FeedLabel names an outcome the way the live feed shows it
func FeedLabel(o game.Outcome) string {
	switch o {
	case game.OutcomeCorrect:
		return "Correct (+1)"
	case game.OutcomeNeutral:
		return "Neutral (+2)"
	case game.OutcomeWrong:
		return "Wrong (-1)"
	case game.OutcomeBomb:
		return "Bomb! (-3)"
	case game.OutcomeWhacked:
		return "Whacked (+1)"
	case game.OutcomeExploded:
		return "Exploded (-1)"
	default:
		return o.String()
	}
}

// HandleEvent folds one round event into the view
func (v *View) HandleEvent(now time.Time, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.RoundStartedPayload:
		v.Phase = PhaseRunning
		v.RoundID = p.RoundID
		v.Mode = p.Mode
		v.Level = p.Level
		v.Players = append(v.Players[:0], p.Players...)
		v.Cells = make([]Cell, p.HoleCount)
		v.Scores = make(map[game.PlayerID]int, len(p.Players))
		for _, pl := range p.Players {
			v.Scores[pl] = 0
		}
		v.Remaining = p.Duration
		v.Fraction = 1
		v.Feed = v.Feed[:0]
		v.Winner, v.Tie = game.PlayerNone, false

	case *events.RoundPausedPayload:
		v.Phase = PhasePaused
		v.Remaining = p.Remaining

	case *events.RoundResumedPayload:
		v.Phase = PhaseRunning
		v.Remaining = p.Remaining

	case *events.TimeRemainingPayload:
		v.Remaining = p.Remaining
		v.Fraction = p.Fraction

	case *events.EntitySpawnedPayload:
		if c := v.cell(p.Hole); c != nil {
			c.Entity = game.Entity{Kind: p.Kind, Owner: p.Owner}
		}

	case *events.EntityDespawnedPayload:
		if c := v.cell(p.Hole); c != nil {
			c.Entity = game.Entity{}
		}

	case *events.HitResolvedPayload:
		if c := v.cell(p.Hole); c != nil {
			c.Entity = game.Entity{}
			c.Flash = p.Outcome
			c.FlashAt = now
		}
		v.Scores[p.Player] = p.Score
		v.pushFeed(FeedEntry{Player: p.Player, Outcome: p.Outcome, Label: FeedLabel(p.Outcome), At: now})

	case *events.RoundEndedPayload:
		v.Phase = PhaseOver
		v.Remaining = 0
		v.Fraction = 0
		for pl, s := range p.Scores {
			v.Scores[pl] = s
		}
		v.Winner, v.Tie = p.Winner, p.Tie
		for i := range v.Cells {
			v.Cells[i].Entity = game.Entity{}
		}
	}
}

// EventTypes subscribes the view to every round event
func (v *View) EventTypes() []events.EventType {
	return events.AllTypes()
}

// Flashing reports whether hole id still shows its last outcome at now
func (v *View) Flashing(id int, now time.Time) (game.Outcome, bool) {
	c := v.cell(id)
	if c == nil || c.Flash == game.OutcomeNone || now.Sub(c.FlashAt) > flashDuration {
		return game.OutcomeNone, false
	}
	return c.Flash, true
}

// Result is the end-of-round headline
func (v *View) Result() string {
	if v.Phase != PhaseOver {
		return ""
	}
	if v.Mode != game.ModeTwoPlayer {
		return fmt.Sprintf("Final score: %d", v.Scores[game.Player1])
	}
	if v.Tie {
		return "It's a tie!"
	}
	return fmt.Sprintf("%s wins!", v.Winner)
}

func (v *View) cell(id int) *Cell {
	if id < 0 || id >= len(v.Cells) {
		return nil
	}
	return &v.Cells[id]
}

func (v *View) pushFeed(e FeedEntry) {
	if len(v.Feed) == FeedSize {
		copy(v.Feed, v.Feed[1:])
		v.Feed = v.Feed[:FeedSize-1]
	}
	v.Feed = append(v.Feed, e)
}
