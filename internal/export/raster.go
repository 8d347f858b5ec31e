package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"TaskApp/internal/state"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// capSides is how many edges approximate a round cap.
const capSides = 16

// Render rasterizes strokes in canvas coordinates onto a w x h image filled
// with bg. Strokes are drawn in order, each as a polyline with round caps at
// every point, its color's alpha scaled by the stroke opacity.
func Render(strokes []state.Stroke, w, h int, bg color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	z := vector.NewRasterizer(w, h)
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		z.Reset(w, h)
		z.DrawOp = draw.Over
		tracePolyline(z, s.Points, s.Width/2)
		z.Draw(img, img.Bounds(), image.NewUniform(strokeColor(s)), image.Point{})
	}
	return img
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SaveImage writes img to path; the format follows the file extension.
func SaveImage(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func strokeColor(s state.Stroke) color.NRGBA {
	n := color.NRGBAModel.Convert(colorOrBlack(s.Color)).(color.NRGBA)
	op := s.Opacity
	if op < 0 {
		op = 0
	} else if op > 1 {
		op = 1
	}
	n.A = uint8(math.Round(float64(n.A) * float64(op)))
	return n
}

// tracePolyline adds one quad per segment and one disc per point. All
// shapes share the same winding so overlaps never cancel out.
func tracePolyline(z *vector.Rasterizer, pts []state.Point, r float32) {
	if r < 0.5 {
		r = 0.5
	}
	for i, p := range pts {
		traceDisc(z, p, r)
		if i == 0 {
			continue
		}
		traceSegment(z, pts[i-1], p, r)
	}
}

func traceSegment(z *vector.Rasterizer, a, b state.Point, r float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*r, dx/l*r
	z.MoveTo(a.X+nx, a.Y+ny)
	z.LineTo(b.X+nx, b.Y+ny)
	z.LineTo(b.X-nx, b.Y-ny)
	z.LineTo(a.X-nx, a.Y-ny)
	z.ClosePath()
}

func traceDisc(z *vector.Rasterizer, c state.Point, r float32) {
	for i := 0; i <= capSides; i++ {
		// negative angles keep the disc wound like traceSegment's quads
		theta := -2 * math.Pi * float64(i) / capSides
		x := c.X + r*float32(math.Cos(theta))
		y := c.Y + r*float32(math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}
