package ui

import (
	"fmt"
	"log"

	"TaskApp/internal/config"
	"TaskApp/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DrawingView is the drawing tab: the board, pen controls and the
// undo/clear/export actions.
type DrawingView struct {
	canvas *state.Canvas
	board  *BoardWidget
	pen    *penControls
	cfg    config.DrawingConfig
	win    fyne.Window

	undoBtn   *widget.Button
	clearBtn  *widget.Button
	pngBtn    *widget.Button
	pdfBtn    *widget.Button
	countText *widget.Label

	content fyne.CanvasObject
}

func NewDrawingView(c *state.Canvas, cfg config.DrawingConfig, win fyne.Window) *DrawingView {
	v := &DrawingView{canvas: c, cfg: cfg, win: win}
	style := state.DefaultStyle()
	style.Width = cfg.StrokeWidth
	style.Opacity = cfg.Opacity
	v.board = NewBoardWidget(c, style)
	v.pen = newPenControls(v.board)

	v.undoBtn = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), v.Undo)
	v.clearBtn = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), v.Clear)
	v.pngBtn = widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() { v.export(formatPNG) })
	v.pdfBtn = widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), func() { v.export(formatPDF) })
	v.countText = widget.NewLabel("")

	c.OnChange = func(op state.Op) {
		v.board.Apply(op)
		if op.Type != state.OpAddPoint {
			v.refreshControls()
		}
	}

	actions := container.NewHBox(v.undoBtn, v.clearBtn, v.pngBtn, v.pdfBtn, v.countText)
	v.content = container.NewBorder(nil, container.NewVBox(v.pen.content, actions), nil, nil, v.board)
	v.refreshControls()
	return v
}

func (v *DrawingView) Content() fyne.CanvasObject { return v.content }

// Undo drops the last committed stroke.
func (v *DrawingView) Undo() {
	v.canvas.Undo()
}

func (v *DrawingView) Clear() {
	v.canvas.Clear()
	v.board.ResetView()
	log.Println("[DRAW] Canvas cleared")
}

func (v *DrawingView) refreshControls() {
	n := v.canvas.Len()
	for _, b := range []*widget.Button{v.undoBtn, v.clearBtn, v.pngBtn, v.pdfBtn} {
		if n == 0 {
			b.Disable()
		} else {
			b.Enable()
		}
	}
	switch n {
	case 0:
		v.countText.SetText("")
	case 1:
		v.countText.SetText("1 stroke")
	default:
		v.countText.SetText(fmt.Sprintf("%d strokes", n))
	}
}
