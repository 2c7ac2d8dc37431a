package main

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	loginEmailKey    = "email"
	loginPasswordKey = "password"
	loginSignupKey   = "signup"
)

func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(loginEmailKey).
				Title("Email").
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter an email address")
					}
					return nil
				}),
			huh.NewInput().
				Key(loginPasswordKey).
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if len(s) < 8 {
						return errors.New("at least 8 characters")
					}
					return nil
				}),
			huh.NewConfirm().
				Key(loginSignupKey).
				Title("New here?").
				Affirmative("Sign up").
				Negative("Log in"),
		),
	)
}

// submitLogin exchanges the credentials for a bearer token. The client
// stores the token itself; the handler persists it to the config file.
func (m model) submitLogin(email, password string, signup bool) tea.Cmd {
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var token string
		var err error
		if signup {
			token, err = client.Signup(ctx, email, password, email)
		} else {
			token, err = client.Login(ctx, email, password)
		}

		return loginResultMsg{token: token, err: err}
	}
}

func (m model) loginView() string {
	var b strings.Builder

	b.WriteString(m.styles.titleStyle.Render("welcome to pluto"))
	b.WriteString("\n\n")
	if m.errorMsg != "" {
		b.WriteString(m.styles.errorStyle.Render(m.errorMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(m.loginForm.View())

	return b.String()
}
