package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawStroke(c *Canvas, pts ...Point) {
	c.BeginStroke(DefaultStyle())
	for _, p := range pts {
		c.AddPoint(p)
	}
	c.EndStroke()
}

func TestCanvasCommitsPointsInOrder(t *testing.T) {
	c := NewCanvas()
	style := Style{Color: color.NRGBA{R: 255, A: 255}, Width: 8, Opacity: 0.5}
	pts := []Point{{1, 1}, {2, 3}, {5, 8}, {2, 3}}

	c.BeginStroke(style)
	for _, p := range pts {
		c.AddPoint(p)
	}
	s, ok := c.EndStroke()
	require.True(t, ok)
	require.Equal(t, pts, s.Points)
	require.Equal(t, style, s.Style())
	require.NotEmpty(t, s.ID)

	strokes := c.Strokes()
	require.Len(t, strokes, 1)
	require.Equal(t, pts, strokes[0].Points)
	require.False(t, c.Drawing())
}

func TestCanvasAddPointWithoutStroke(t *testing.T) {
	c := NewCanvas()
	c.AddPoint(Point{1, 2})
	_, ok := c.EndStroke()
	require.False(t, ok)
	require.True(t, c.Empty())
}

func TestCanvasEmptyStrokeNotCommitted(t *testing.T) {
	c := NewCanvas()
	c.BeginStroke(DefaultStyle())
	_, ok := c.EndStroke()
	require.False(t, ok)
	require.Zero(t, c.Len())
	require.False(t, c.Drawing())
}

func TestCanvasUndo(t *testing.T) {
	c := NewCanvas()
	_, ok := c.Undo()
	require.False(t, ok)

	drawStroke(c, Point{0, 0}, Point{1, 1})
	drawStroke(c, Point{5, 5})
	first := c.Strokes()[0]

	removed, ok := c.Undo()
	require.True(t, ok)
	require.Equal(t, []Point{{5, 5}}, removed.Points)
	require.Equal(t, []Stroke{first}, c.Strokes())
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas()
	drawStroke(c, Point{0, 0})
	drawStroke(c, Point{1, 1})
	c.BeginStroke(DefaultStyle())
	c.AddPoint(Point{3, 3})

	c.Clear()
	require.True(t, c.Empty())
	require.False(t, c.Drawing())
	require.Empty(t, c.RenderList())
}

func TestCanvasRenderListPutsCurrentLast(t *testing.T) {
	c := NewCanvas()
	drawStroke(c, Point{0, 0}, Point{1, 0})
	c.BeginStroke(DefaultStyle())
	c.AddPoint(Point{9, 9})

	list := c.RenderList()
	require.Len(t, list, 2)
	assert.Equal(t, []Point{{9, 9}}, list[1].Points)
	assert.Equal(t, 1, c.Len())
}

func TestCanvasStrokesAreCopies(t *testing.T) {
	c := NewCanvas()
	drawStroke(c, Point{0, 0}, Point{1, 1})
	got := c.Strokes()
	got[0].Points[0] = Point{99, 99}
	require.Equal(t, Point{0, 0}, c.Strokes()[0].Points[0])
}

func TestCanvasOpsAreSequenced(t *testing.T) {
	c := NewCanvas()
	var ops []Op
	c.OnChange = func(op Op) { ops = append(ops, op) }

	drawStroke(c, Point{0, 0}, Point{1, 1})
	c.Undo()
	c.Clear()

	types := make([]OpType, 0, len(ops))
	for i, op := range ops {
		types = append(types, op.Type)
		if i > 0 {
			require.Greater(t, op.Seq, ops[i-1].Seq)
		}
	}
	require.Equal(t, []OpType{
		OpBeginStroke, OpAddPoint, OpAddPoint, OpInsertStroke, OpDeleteStroke, OpClear,
	}, types)
	require.Equal(t, ops[3].Stroke.ID, ops[4].Target)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	require.False(t, ok)

	strokes := []Stroke{
		{Points: []Point{{10, 10}, {20, 30}}, Width: 2},
		{Points: nil, Width: 50},
		{Points: []Point{{-5, 15}}, Width: 0},
	}
	r, ok := Bounds(strokes)
	require.True(t, ok)
	require.Equal(t, Rect{X: -5, Y: 9, Width: 26, Height: 22}, r)
}

func TestCanvasAddPointOpCarriesOnlyThePoint(t *testing.T) {
	c := NewCanvas()
	var ops []Op
	c.OnChange = func(op Op) { ops = append(ops, op) }

	c.BeginStroke(DefaultStyle())
	c.AddPoint(Point{1, 2})
	c.AddPoint(Point{3, 4})

	require.Len(t, ops, 3)
	id := ops[0].Stroke.ID
	for i, want := range []Point{{1, 2}, {3, 4}} {
		op := ops[i+1]
		require.Equal(t, OpAddPoint, op.Type)
		require.Nil(t, op.Stroke)
		require.Equal(t, id, op.Target)
		require.Equal(t, want, op.Point)
	}
}
