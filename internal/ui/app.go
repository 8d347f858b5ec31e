package ui

import (
	"log"

	"TaskApp/internal/auth"
	"TaskApp/internal/config"
	"TaskApp/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// Screens holds the three feature views and the state they display.
type Screens struct {
	Todo     *TodoView
	Pomodoro *PomodoroView
	Drawing  *DrawingView
}

// NewScreens builds each feature over fresh in-memory state. sched drives
// the pomodoro ticks.
func NewScreens(cfg *config.Config, sched state.Scheduler, win fyne.Window) *Screens {
	timer := state.NewCountdown(cfg.Pomodoro.Seconds, cfg.Pomodoro.TickInterval.Duration, sched)
	return &Screens{
		Todo:     NewTodoView(state.NewTodoList()),
		Pomodoro: NewPomodoroView(timer),
		Drawing:  NewDrawingView(state.NewCanvas(), cfg.Drawing, win),
	}
}

// Tabs lays the screens out as bottom tabs.
func (s *Screens) Tabs() *container.AppTabs {
	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("To-Do", theme.ListIcon(), s.Todo.Content()),
		container.NewTabItemWithIcon("Pomodoro", theme.HistoryIcon(), s.Pomodoro.Content()),
		container.NewTabItemWithIcon("Drawing", theme.DocumentCreateIcon(), s.Drawing.Content()),
	)
	tabs.SetTabLocation(container.TabLocationBottom)
	return tabs
}

// uiScheduler delivers ticks on the Fyne main goroutine.
func uiScheduler() state.Scheduler {
	return state.TickerScheduler{Dispatch: fyne.Do}
}

func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	screens := NewScreens(cfg, uiScheduler(), myWindow)
	tabs := screens.Tabs()

	if cfg.Window.SkipLogin {
		myWindow.SetContent(tabs)
	} else {
		login := NewLoginView(myWindow)
		login.OnSuccess = func(c auth.Credentials) {
			log.Printf("[LOGIN] Signed in as %s", c.Email)
			myWindow.SetContent(tabs)
		}
		myWindow.SetContent(login.Content())
	}

	myWindow.SetOnClosed(screens.Pomodoro.timer.Reset)
	myWindow.ShowAndRun()
}
