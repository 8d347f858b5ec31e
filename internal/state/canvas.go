package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Canvas holds the committed strokes of the drawing screen plus the stroke
// currently under the pointer. All operations are total: calls that make no
// sense in the current state are ignored.
type Canvas struct {
	strokes []Stroke
	current *Stroke
	clock   Clock
	mu      sync.RWMutex

	// OnChange is called after every mutation, outside the lock.
	OnChange func(Op)
}

func NewCanvas() *Canvas {
	return &Canvas{strokes: make([]Stroke, 0)}
}

// BeginStroke starts a new empty stroke. An unfinished stroke is discarded.
func (c *Canvas) BeginStroke(style Style) {
	c.mu.Lock()
	c.current = &Stroke{
		ID:      uuid.NewString(),
		Points:  make([]Point, 0, 32),
		Color:   style.Color,
		Width:   style.Width,
		Opacity: style.Opacity,
		Time:    time.Now(),
	}
	op := Op{Type: OpBeginStroke, Stroke: c.currentCopy(), Seq: c.clock.Tick()}
	c.mu.Unlock()
	c.notify(op)
}

// AddPoint appends p to the stroke in progress, if any.
func (c *Canvas) AddPoint(p Point) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.current.Points = append(c.current.Points, p)
	op := Op{Type: OpAddPoint, Target: c.current.ID, Point: p, Seq: c.clock.Tick()}
	c.mu.Unlock()
	c.notify(op)
}

// EndStroke commits the stroke in progress when it has at least one point.
// The in-progress slot is emptied either way.
func (c *Canvas) EndStroke() (Stroke, bool) {
	c.mu.Lock()
	cur := c.current
	c.current = nil
	if cur == nil || len(cur.Points) == 0 {
		c.mu.Unlock()
		return Stroke{}, false
	}
	c.strokes = append(c.strokes, *cur)
	committed := cur.Clone()
	op := Op{Type: OpInsertStroke, Stroke: &committed, Seq: c.clock.Tick()}
	n := len(c.strokes)
	c.mu.Unlock()

	debugf("[CANVAS] Committed stroke %s with %d points (%d total)", committed.ID, len(committed.Points), n)
	c.notify(op)
	return committed, true
}

// Undo drops the most recently committed stroke. There is no redo.
func (c *Canvas) Undo() (Stroke, bool) {
	c.mu.Lock()
	if len(c.strokes) == 0 {
		c.mu.Unlock()
		return Stroke{}, false
	}
	last := c.strokes[len(c.strokes)-1]
	c.strokes = c.strokes[:len(c.strokes)-1]
	op := Op{Type: OpDeleteStroke, Target: last.ID, Seq: c.clock.Tick()}
	c.mu.Unlock()

	debugf("[CANVAS] Undo removed stroke %s", last.ID)
	c.notify(op)
	return last, true
}

// Clear removes every committed stroke and the stroke in progress.
func (c *Canvas) Clear() {
	c.mu.Lock()
	n := len(c.strokes)
	c.strokes = make([]Stroke, 0)
	c.current = nil
	op := Op{Type: OpClear, Seq: c.clock.Tick()}
	c.mu.Unlock()

	debugf("[CANVAS] Cleared %d strokes", n)
	c.notify(op)
}

// Strokes returns a copy of the committed strokes in commit order.
func (c *Canvas) Strokes() []Stroke {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Stroke, 0, len(c.strokes))
	for _, s := range c.strokes {
		out = append(out, s.Clone())
	}
	return out
}

// Drawing reports whether a stroke is in progress.
func (c *Canvas) Drawing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}

func (c *Canvas) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.strokes)
}

func (c *Canvas) Empty() bool { return c.Len() == 0 }

// RenderList is what a renderer draws: committed strokes, then the stroke in
// progress last.
func (c *Canvas) RenderList() []Stroke {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Stroke, 0, len(c.strokes)+1)
	for _, s := range c.strokes {
		out = append(out, s.Clone())
	}
	if c.current != nil {
		out = append(out, c.current.Clone())
	}
	return out
}

// must hold c.mu
func (c *Canvas) currentCopy() *Stroke {
	s := c.current.Clone()
	return &s
}

func (c *Canvas) notify(op Op) {
	if c.OnChange != nil {
		c.OnChange(op)
	}
}
