package export

import (
	"fmt"
	"image/color"
	"io"

	"TaskApp/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageW  = 210.0 // A4, mm
	pageH  = 297.0
	margin = 10.0
)

// WritePDF draws strokes on one A4 page, scaled so their bounding box fits
// inside the margins. Strokes keep their color, width and opacity.
func WritePDF(w io.Writer, strokes []state.Stroke) error {
	p := drawPDF(strokes)
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// ExportPDF is WritePDF to a file.
func ExportPDF(path string, strokes []state.Stroke) error {
	p := drawPDF(strokes)
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	return nil
}

func drawPDF(strokes []state.Stroke) *gofpdf.Fpdf {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	box, ok := state.Bounds(strokes)
	if !ok {
		return p
	}
	scale, offX, offY := fit(box)

	for _, st := range strokes {
		if len(st.Points) == 0 {
			continue
		}
		c := color.NRGBAModel.Convert(colorOrBlack(st.Color)).(color.NRGBA)
		p.SetAlpha(float64(st.Opacity)*float64(c.A)/255, "Normal")
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		lw := float64(st.Width) * scale

		x0, y0 := offX+float64(st.Points[0].X)*scale, offY+float64(st.Points[0].Y)*scale
		if len(st.Points) == 1 {
			p.Circle(x0, y0, lw/2, "F")
			continue
		}
		p.SetLineWidth(lw)
		p.MoveTo(x0, y0)
		for _, pt := range st.Points[1:] {
			p.LineTo(offX+float64(pt.X)*scale, offY+float64(pt.Y)*scale)
		}
		p.DrawPath("D")
	}
	p.SetAlpha(1, "Normal")
	return p
}

// fit returns the scale and offsets that map box into the printable area,
// centered, without enlarging drawings that already fit.
func fit(box state.Rect) (scale, offX, offY float64) {
	availW, availH := pageW-2*margin, pageH-2*margin
	bw, bh := float64(box.Width), float64(box.Height)

	scale = 1
	if bw > 0 && bw*scale > availW {
		scale = availW / bw
	}
	if bh > 0 && bh*scale > availH {
		scale = availH / bh
	}
	offX = margin + (availW-bw*scale)/2 - float64(box.X)*scale
	offY = margin + (availH-bh*scale)/2 - float64(box.Y)*scale
	return scale, offX, offY
}

func colorOrBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
