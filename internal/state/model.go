package state

import (
	"image/color"
	"time"
)

type Point struct{ X, Y float32 }

// Style is the pen used for a new stroke.
type Style struct {
	Color   color.Color
	Width   float32
	Opacity float32 // 0..1, multiplied into the color's alpha when drawn
}

// DefaultStyle matches the drawing screen's initial pen.
func DefaultStyle() Style {
	return Style{Color: color.Black, Width: 5, Opacity: 1}
}

type Stroke struct {
	ID      string
	Points  []Point
	Color   color.Color
	Width   float32
	Opacity float32
	Time    time.Time
}

// Style returns the pen the stroke was drawn with.
func (s Stroke) Style() Style {
	return Style{Color: s.Color, Width: s.Width, Opacity: s.Opacity}
}

// Clone returns a copy that shares no point storage with s.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = make([]Point, len(s.Points))
	copy(c.Points, s.Points)
	return c
}

type OpType string

const (
	OpBeginStroke  OpType = "begin_stroke"
	OpAddPoint     OpType = "add_point"
	OpInsertStroke OpType = "insert_stroke"
	OpDeleteStroke OpType = "delete_stroke"
	OpClear        OpType = "clear"
)

// Op describes one mutation of a Canvas. Seq is strictly increasing per canvas.
// OpAddPoint carries only the appended Point, not the whole stroke.
type Op struct {
	Type   OpType
	Stroke *Stroke
	Target string // ID of stroke deleted or extended
	Point  Point
	Seq    uint64
}

// TodoItem is one entry in a TodoList.
type TodoItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}
