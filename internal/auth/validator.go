package auth

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Alert is a dismissible notification shown when login input is rejected.
type Alert struct {
	Title   string
	Message string
}

func (a *Alert) Error() string { return a.Title + ": " + a.Message }

var (
	InvalidEmail    = &Alert{Title: "Invalid email", Message: "Please enter a correctly formatted email."}
	InvalidPassword = &Alert{Title: "Invalid password", Message: "Password must not be empty."}
)

// Credentials is what the login form submits.
type Credentials struct {
	Email    string
	Password string
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPassword(password string) bool {
	return password != ""
}

// Validate checks the email first, then the password, and returns the alert
// for the first failure.
func Validate(c Credentials) *Alert {
	if !IsValidEmail(strings.TrimSpace(c.Email)) {
		return InvalidEmail
	}
	if !IsValidPassword(c.Password) {
		return InvalidPassword
	}
	return nil
}
