package round

import "github.com/lixenwraith/whack-a-mole/game"

// Hole is one fixed slot of the grid
type Hole struct {
	ID     int
	Entity game.Entity // Kind is KindNone while hidden
	Active bool
}

// Board is the ordered hole collection with at most one active hole
type Board struct {
	holes  []Hole
	active int
}

// NewBoard creates n hidden holes
func NewBoard(n int) *Board {
	b := &Board{
		holes:  make([]Hole, n),
		active: NoHole,
	}
	for i := range b.holes {
		b.holes[i].ID = i
	}
	return b
}

// Len returns the hole count
func (b *Board) Len() int {
	return len(b.holes)
}

// Hole returns a copy of hole id
func (b *Board) Hole(id int) (Hole, bool) {
	if id < 0 || id >= len(b.holes) {
		return Hole{}, false
	}
	return b.holes[id], true
}

// Active returns the revealed hole if any
func (b *Board) Active() (Hole, bool) {
	if b.active == NoHole {
		return Hole{}, false
	}
	return b.holes[b.active], true
}

// ActiveCount counts revealed holes
func (b *Board) ActiveCount() int {
	n := 0
	for _, h := range b.holes {
		if h.Active {
			n++
		}
	}
	return n
}

// Activate reveals e in hole id, refused while another hole is up
func (b *Board) Activate(id int, e game.Entity) bool {
	if id < 0 || id >= len(b.holes) || b.active != NoHole {
		return false
	}
	b.holes[id].Entity = e
	b.holes[id].Active = true
	b.active = id
	return true
}

// Clear hides hole id and returns the entity it held
func (b *Board) Clear(id int) (game.Entity, bool) {
	if id < 0 || id >= len(b.holes) || !b.holes[id].Active {
		return game.Entity{}, false
	}
	e := b.holes[id].Entity
	b.holes[id] = Hole{ID: id}
	if b.active == id {
		b.active = NoHole
	}
	return e, true
}

// ClearActive hides whatever hole is up
func (b *Board) ClearActive() (Hole, bool) {
	h, ok := b.Active()
	if !ok {
		return Hole{}, false
	}
	b.Clear(h.ID)
	return h, true
}
