package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack-a-mole/game"
	"github.com/lixenwraith/whack-a-mole/status"
)

const (
	cellWidth  = 9
	cellHeight = 3
	barWidth   = 30
	gridTop    = 4
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBarFull  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBarLow   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGood     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFlashOK  = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleFlashBad = tcell.StyleDefault.Background(tcell.ColorDarkRed)
)

// Renderer draws a View onto a tcell screen
type Renderer struct {
	screen   tcell.Screen
	registry *status.Registry
	help     string
}

// NewRenderer creates a renderer, registry may be nil to hide the metrics footer
func NewRenderer(screen tcell.Screen, registry *status.Registry, help string) *Renderer {
	return &Renderer{screen: screen, registry: registry, help: help}
}

// Draw renders one frame
func (r *Renderer) Draw(v *View, now time.Time) {
	r.screen.Clear()
	width, height := r.screen.Size()

	r.drawHeader(v)
	r.drawTimeBar(v)
	bottom := r.drawGrid(v, now)
	bottom = r.drawFeed(v, bottom+1)

	if res := v.Result(); res != "" {
		r.text(0, bottom+1, res+"  (press start for a new round)", styleTitle)
	}

	if r.registry != nil && height > 1 {
		r.text(0, height-2, clip(r.metricsLine(), width), styleDim)
	}
	r.text(0, height-1, clip(r.help, width), styleDim)

	r.screen.Show()
}

func (r *Renderer) drawHeader(v *View) {
	mode := "Single Player"
	if v.Mode == game.ModeTwoPlayer {
		mode = "Two Player"
	} else {
		mode += " / " + v.Level.String()
	}
	x := r.text(0, 0, "WHACK-A-MOLE", styleTitle)
	x = r.text(x+2, 0, "["+mode+"]", styleDefault)
	r.text(x+2, 0, v.Phase.String(), phaseStyle(v.Phase))

	x = 0
	for _, p := range v.Players {
		x = r.text(x, 1, fmt.Sprintf("%s: %d", playerLabel(p), v.Scores[p]), playerStyle(p))
		x += 4
	}
}

func (r *Renderer) drawTimeBar(v *View) {
	filled := int(math.Round(v.Fraction * barWidth))
	filled = max(0, min(barWidth, filled))
	style := styleBarFull
	if v.Fraction <= 0.33 {
		style = styleBarLow
	}
	x := r.text(0, 2, fmt.Sprintf("Time %3ds ", v.Remaining), styleDefault)
	x = r.text(x, 2, strings.Repeat("█", filled), style)
	r.text(x, 2, strings.Repeat("░", barWidth-filled), styleDim)
}

// drawGrid lays holes out in a near-square grid, returns the last row used
func (r *Renderer) drawGrid(v *View, now time.Time) int {
	n := len(v.Cells)
	if n == 0 {
		return gridTop
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	for i := range v.Cells {
		x := (i % cols) * (cellWidth + 1)
		y := gridTop + (i/cols)*cellHeight
		r.drawCell(v, i, x, y, now)
	}
	rows := (n + cols - 1) / cols
	return gridTop + rows*cellHeight
}

func (r *Renderer) drawCell(v *View, id, x, y int, now time.Time) {
	frame := styleDim
	fill := styleDefault
	if o, ok := v.Flashing(id, now); ok {
		if o.Penalty() {
			fill = styleFlashBad
		} else {
			fill = styleFlashOK
		}
	}

	inner := cellWidth - 2
	r.text(x, y, "┌"+strings.Repeat("─", inner)+"┐", frame)
	r.text(x, y+1, "│", frame)
	r.text(x+1, y+1, strings.Repeat(" ", inner), fill)
	glyph, style := entityGlyph(v.Cells[id].Entity)
	r.text(x+1+(inner-len([]rune(glyph)))/2, y+1, glyph, style.Background(backgroundOf(fill)))
	r.text(x+cellWidth-1, y+1, "│", frame)
	label := holeLabel(id)
	r.text(x, y+2, "└"+label+strings.Repeat("─", inner-len(label))+"┘", frame)
}

func (r *Renderer) drawFeed(v *View, y int) int {
	r.text(0, y, "Live feed", styleTitle)
	for i := len(v.Feed) - 1; i >= 0; i-- {
		y++
		e := v.Feed[i]
		style := styleGood
		if e.Outcome.Penalty() {
			style = styleBad
		}
		x := r.text(2, y, playerLabel(e.Player)+" ", playerStyle(e.Player))
		r.text(x, y, e.Label, style)
	}
	return y
}

func (r *Renderer) metricsLine() string {
	var b strings.Builder
	for _, m := range r.registry.Snapshot() {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(m.Key)
		b.WriteByte('=')
		b.WriteString(m.Value)
	}
	return b.String()
}

// text draws s at (x, y) and returns the column after it
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func entityGlyph(e game.Entity) (string, tcell.Style) {
	switch e.Kind {
	case game.KindMole:
		switch e.Owner {
		case game.Player1:
			return "M1", playerStyle(game.Player1).Bold(true)
		case game.Player2:
			return "M2", playerStyle(game.Player2).Bold(true)
		default:
			return "M", tcell.StyleDefault.Foreground(tcell.ColorOlive).Bold(true)
		}
	case game.KindBomb:
		return "*B*", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case game.KindNeutral:
		return "+2", tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return "", styleDefault
	}
}

func playerStyle(p game.PlayerID) tcell.Style {
	switch p {
	case game.Player1:
		return tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	case game.Player2:
		return tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	default:
		return styleDefault
	}
}

func phaseStyle(p Phase) tcell.Style {
	switch p {
	case PhaseRunning:
		return styleGood
	case PhasePaused:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case PhaseOver:
		return styleBad
	default:
		return styleDim
	}
}

func playerLabel(p game.PlayerID) string {
	switch p {
	case game.Player1:
		return "P1"
	case game.Player2:
		return "P2"
	default:
		return "--"
	}
}

// holeLabel is the digit key of hole id
func holeLabel(id int) string {
	if id == 9 {
		return "0"
	}
	return fmt.Sprint(id + 1)
}

func backgroundOf(s tcell.Style) tcell.Color {
	_, bg, _ := s.Decompose()
	return bg
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:max(0, width)])
}
