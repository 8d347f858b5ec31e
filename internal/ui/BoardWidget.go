package ui

import (
	"image/color"
	"math"

	"TaskApp/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the freehand drawing surface. Dragging (mouse or touch)
// draws a stroke, a tap leaves a dot and scrolling pans the view. All state
// lives in the state.Canvas; the widget only forwards input and redraws.
type BoardWidget struct {
	widget.BaseWidget
	canvas     *state.Canvas
	style      state.Style
	panX, panY float32
	renderer   *boardWidgetRenderer
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Canvas, style state.Style) *BoardWidget {
	b := &BoardWidget{canvas: c, style: style}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetColor(c color.Color) { b.style.Color = c }
func (b *BoardWidget) SetWidth(w float32)     { b.style.Width = w }
func (b *BoardWidget) SetOpacity(o float32)   { b.style.Opacity = o }
func (b *BoardWidget) Style() state.Style     { return b.style }

func (b *BoardWidget) toCanvas(p fyne.Position) state.Point {
	return state.Point{X: p.X - b.panX, Y: p.Y - b.panY}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.canvas.Drawing() {
		b.canvas.BeginStroke(b.style)
		// the first event already moved; start where the pointer went down
		b.canvas.AddPoint(b.toCanvas(e.Position.Subtract(e.Dragged)))
	}
	b.canvas.AddPoint(b.toCanvas(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.canvas.EndStroke()
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.canvas.BeginStroke(b.style)
	b.canvas.AddPoint(b.toCanvas(e.Position))
	b.canvas.EndStroke()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.Refresh()
}

// Apply redraws the board after a canvas change. A point added to the stroke
// in progress only appends its segment; anything else rebuilds.
func (b *BoardWidget) Apply(op state.Op) {
	if op.Type == state.OpAddPoint && b.renderer != nil && b.renderer.appendPoint(op) {
		return
	}
	b.Refresh()
}

// ResetView undoes any panning.
func (b *BoardWidget) ResetView() {
	b.panX, b.panY = 0, 0
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	b.renderer = r
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
	live       *state.Stroke // stroke in progress, nil when idle
}

func (r *boardWidgetRenderer) rebuild() {
	drawing := r.board.canvas.Drawing()
	list := r.board.canvas.RenderList()
	objects := []fyne.CanvasObject{r.background}
	for _, s := range list {
		objects = append(objects, r.strokeObjects(s)...)
	}
	r.objects = objects
	r.live = nil
	if drawing && len(list) > 0 {
		r.live = &list[len(list)-1]
	}
}

// appendPoint extends the stroke in progress by one segment. It reports false
// when the point does not belong to the stroke it is tracking.
func (r *boardWidgetRenderer) appendPoint(op state.Op) bool {
	if r.live == nil || r.live.ID != op.Target {
		return false
	}
	r.live.Points = append(r.live.Points, op.Point)
	n := len(r.live.Points)
	if n < 2 {
		// a lone point shows as a dot once committed
		return true
	}
	r.objects = append(r.objects, r.segment(*r.live, n-2, n-1))
	canvas.Refresh(r.board)
	return true
}

// strokeObjects draws a stroke as one line per segment, or a dot when it has
// a single point.
func (r *boardWidgetRenderer) strokeObjects(s state.Stroke) []fyne.CanvasObject {
	col := displayColor(s)
	offset := fyne.NewPos(r.board.panX, r.board.panY)

	if len(s.Points) == 1 {
		p := fyne.NewPos(s.Points[0].X, s.Points[0].Y).Add(offset)
		dot := canvas.NewCircle(col)
		d := max(s.Width, 1)
		dot.Resize(fyne.NewSize(d, d))
		dot.Move(p.SubtractXY(d/2, d/2))
		return []fyne.CanvasObject{dot}
	}

	out := make([]fyne.CanvasObject, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		out = append(out, r.segment(s, i-1, i))
	}
	return out
}

func (r *boardWidgetRenderer) segment(s state.Stroke, from, to int) *canvas.Line {
	offset := fyne.NewPos(r.board.panX, r.board.panY)
	seg := canvas.NewLine(displayColor(s))
	seg.StrokeWidth = s.Width
	seg.Position1 = fyne.NewPos(s.Points[from].X, s.Points[from].Y).Add(offset)
	seg.Position2 = fyne.NewPos(s.Points[to].X, s.Points[to].Y).Add(offset)
	return seg
}

func displayColor(s state.Stroke) color.Color {
	var c color.Color = color.Black
	if s.Color != nil {
		c = s.Color
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * float64(min(max(s.Opacity, 0), 1))))
	return n
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	r.background.Resize(r.board.Size())
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
