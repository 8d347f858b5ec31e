package ui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"TaskApp/internal/export"
	"TaskApp/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

type exportFormat string

const (
	formatPNG exportFormat = "png"
	formatPDF exportFormat = "pdf"
)

// export asks where to save and writes the committed strokes there.
func (v *DrawingView) export(format exportFormat) {
	if v.canvas.Empty() {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		v.saveTo(writer, format)
	}, v.win)

	d.SetFileName(fmt.Sprintf("drawing-%s.%s", time.Now().Format("20060102-150405"), format))
	d.SetFilter(storage.NewExtensionFileFilter([]string{"." + string(format)}))
	if dir := v.cfg.ExportDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			if l, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
				d.SetLocation(l)
			}
		}
	}
	d.Show()
}

// saveTo writes the strokes to the location picked in the save dialog. Local
// files with the expected extension are rewritten by path; anything else is
// streamed through the writer.
func (v *DrawingView) saveTo(writer fyne.URIWriteCloser, format exportFormat) {
	strokes := v.canvas.Strokes()
	uri := writer.URI()

	var err error
	if uri.Scheme() == "file" && strings.EqualFold(uri.Extension(), "."+string(format)) {
		if cerr := writer.Close(); cerr != nil {
			log.Printf("[EXPORT] Error closing writer: %v", cerr)
		}
		err = v.saveFile(uri.Path(), strokes, format)
	} else {
		err = v.write(writer, strokes, format)
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", uri, cerr)
		}
	}
	if err != nil {
		log.Printf("[EXPORT] %v", err)
		dialog.ShowError(err, v.win)
		return
	}
	log.Printf("[EXPORT] Saved %d strokes to %s", len(strokes), uri)
}

// saveFile renders strokes in format straight to path.
func (v *DrawingView) saveFile(path string, strokes []state.Stroke, format exportFormat) error {
	switch format {
	case formatPNG:
		img := export.Render(strokes, v.cfg.ExportWidth, v.cfg.ExportHeight, color.White)
		return export.SaveImage(path, img)
	case formatPDF:
		return export.ExportPDF(path, strokes)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// write renders strokes in format to w.
func (v *DrawingView) write(w io.Writer, strokes []state.Stroke, format exportFormat) error {
	switch format {
	case formatPNG:
		img := export.Render(strokes, v.cfg.ExportWidth, v.cfg.ExportHeight, color.White)
		return export.EncodePNG(w, img)
	case formatPDF:
		return export.WritePDF(w, strokes)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
