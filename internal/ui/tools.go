package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Palette is the set of pen colors offered on the drawing screen.
var Palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, G: 59, B: 48, A: 255},   // red
	color.NRGBA{R: 0, G: 122, B: 255, A: 255},   // blue
	color.NRGBA{R: 52, G: 199, B: 89, A: 255},   // green
	color.NRGBA{R: 255, G: 204, B: 0, A: 255},   // yellow
	color.NRGBA{R: 255, G: 149, B: 0, A: 255},   // orange
	color.NRGBA{R: 175, G: 82, B: 222, A: 255},  // purple
	color.NRGBA{R: 255, G: 45, B: 85, A: 255},   // pink
	color.NRGBA{R: 162, G: 132, B: 94, A: 255},  // brown
	color.NRGBA{R: 142, G: 142, B: 147, A: 255}, // gray
	color.NRGBA{R: 50, G: 173, B: 230, A: 255},  // cyan
	color.NRGBA{R: 0, G: 199, B: 190, A: 255},   // mint
	color.NRGBA{R: 88, G: 86, B: 214, A: 255},   // indigo
	color.NRGBA{R: 48, G: 176, B: 199, A: 255},  // teal
	color.White,
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(s.Color)
	dot.StrokeColor = color.Gray{Y: 150}
	dot.StrokeWidth = 1

	frame := canvas.NewRectangle(color.Transparent)
	frame.SetMinSize(fyne.NewSize(28, 28))

	return widget.NewSimpleRenderer(container.NewStack(frame, dot))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// penControls is the palette plus width and opacity sliders.
type penControls struct {
	width   *widget.Slider
	opacity *widget.Slider
	content fyne.CanvasObject
}

func newPenControls(board *BoardWidget) *penControls {
	pc := &penControls{}
	style := board.Style()

	swatches := make([]fyne.CanvasObject, 0, len(Palette))
	for _, c := range Palette {
		swatches = append(swatches, newColorSwatch(c, board.SetColor))
	}
	palette := container.NewHScroll(container.NewHBox(swatches...))

	widthLabel := widget.NewLabel("")
	pc.width = widget.NewSlider(1, 20)
	pc.width.Step = 1
	pc.width.OnChanged = func(v float64) {
		board.SetWidth(float32(v))
		widthLabel.SetText(fmt.Sprintf("Width %.0f", v))
	}
	pc.width.Value = float64(style.Width)
	pc.width.OnChanged(pc.width.Value)

	opacityLabel := widget.NewLabel("")
	pc.opacity = widget.NewSlider(0.1, 1)
	pc.opacity.Step = 0.05
	pc.opacity.OnChanged = func(v float64) {
		board.SetOpacity(float32(v))
		opacityLabel.SetText(fmt.Sprintf("Opacity %.0f%%", v*100))
	}
	pc.opacity.Value = float64(style.Opacity)
	pc.opacity.OnChanged(pc.opacity.Value)

	sliders := container.New(layout.NewFormLayout(),
		widthLabel, pc.width,
		opacityLabel, pc.opacity,
	)
	pc.content = container.NewVBox(palette, sliders)
	return pc
}
