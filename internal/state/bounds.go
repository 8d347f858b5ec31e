package state

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the box covering the stroke's points, padded by half its
// width so thick lines are not clipped.
func (s Stroke) Bounds() Rect {
	if len(s.Points) == 0 {
		return Rect{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	pad := s.Width / 2
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// Bounds returns the box covering every stroke with at least one point.
func Bounds(strokes []Stroke) (Rect, bool) {
	var out Rect
	found := false
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		b := s.Bounds()
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	return out, found
}
