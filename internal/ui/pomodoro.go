package ui

import (
	"TaskApp/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// PomodoroView is the timer tab.
type PomodoroView struct {
	timer    *state.Countdown
	clock    *canvas.Text
	progress *widget.ProgressBar
	status   *widget.Label
	startBtn *widget.Button
	resetBtn *widget.Button
	content  fyne.CanvasObject
}

func NewPomodoroView(t *state.Countdown) *PomodoroView {
	v := &PomodoroView{timer: t}

	v.clock = canvas.NewText(t.Label(), theme.Color(theme.ColorNameForeground))
	v.clock.TextSize = 64
	v.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	v.clock.Alignment = fyne.TextAlignCenter

	v.progress = widget.NewProgressBar()
	v.progress.TextFormatter = func() string { return "" }
	v.status = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	v.startBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), t.Toggle)
	v.startBtn.Importance = widget.HighImportance
	v.resetBtn = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), t.Reset)

	t.OnTick = func(int) { v.refresh() }
	t.OnStateChange = func(state.TimerState) { v.refresh() }
	t.OnComplete = v.completed

	v.content = container.NewVBox(
		layout.NewSpacer(),
		v.clock,
		container.NewPadded(v.progress),
		v.status,
		container.NewCenter(container.NewHBox(v.startBtn, v.resetBtn)),
		layout.NewSpacer(),
	)
	v.refresh()
	return v
}

func (v *PomodoroView) Content() fyne.CanvasObject { return v.content }

func (v *PomodoroView) refresh() {
	t := v.timer
	v.clock.Text = t.Label()
	v.clock.Refresh()
	v.progress.SetValue(t.Progress())

	switch {
	case t.Running():
		v.status.SetText("Focusing...")
		v.startBtn.SetText("Pause")
		v.startBtn.SetIcon(theme.MediaPauseIcon())
	case t.Completed():
		v.status.SetText("Done! Take a break.")
		v.startBtn.SetText("Start")
		v.startBtn.SetIcon(theme.MediaPlayIcon())
	case t.AtStart():
		v.status.SetText("Ready")
		v.startBtn.SetText("Start")
		v.startBtn.SetIcon(theme.MediaPlayIcon())
	default:
		v.status.SetText("Paused")
		v.startBtn.SetText("Resume")
		v.startBtn.SetIcon(theme.MediaPlayIcon())
	}

	if t.AtStart() {
		v.resetBtn.Disable()
	} else {
		v.resetBtn.Enable()
	}
}

func (v *PomodoroView) completed() {
	v.refresh()
	if a := fyne.CurrentApp(); a != nil {
		a.SendNotification(fyne.NewNotification("Pomodoro complete", "Time for a break."))
	}
}
