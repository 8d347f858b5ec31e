package ui

import (
	"log"

	"TaskApp/internal/auth"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LoginView checks the email and password format before letting the user
// through. There is no account backend.
type LoginView struct {
	email    *widget.Entry
	password *widget.Entry
	submit   *widget.Button
	content  fyne.CanvasObject

	OnSuccess func(auth.Credentials)
	// OnAlert shows a rejected login. Defaults to an information dialog.
	OnAlert func(*auth.Alert)
}

func NewLoginView(win fyne.Window) *LoginView {
	v := &LoginView{}
	v.OnAlert = func(a *auth.Alert) {
		dialog.ShowInformation(a.Title, a.Message, win)
	}

	v.email = widget.NewEntry()
	v.email.SetPlaceHolder("you@example.com")
	v.password = widget.NewPasswordEntry()
	v.password.SetPlaceHolder("Password")
	v.password.OnSubmitted = func(string) { v.Submit() }
	v.submit = widget.NewButtonWithIcon("Sign in", theme.LoginIcon(), v.Submit)
	v.submit.Importance = widget.HighImportance

	title := canvas.NewText("TaskApp", theme.Color(theme.ColorNamePrimary))
	title.TextSize = 36
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := widget.NewForm(
		widget.NewFormItem("Email", v.email),
		widget.NewFormItem("Password", v.password),
	)
	v.content = container.NewCenter(container.NewVBox(title, form, v.submit))
	return v
}

func (v *LoginView) Content() fyne.CanvasObject { return v.content }

func (v *LoginView) Submit() {
	creds := auth.Credentials{Email: v.email.Text, Password: v.password.Text}
	if alert := auth.Validate(creds); alert != nil {
		log.Printf("[LOGIN] Rejected: %s", alert.Title)
		if v.OnAlert != nil {
			v.OnAlert(alert)
		}
		return
	}
	v.password.SetText("")
	if v.OnSuccess != nil {
		v.OnSuccess(creds)
	}
}
