package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
)

// authModel is the sign-in / registration gate shown before any other view.
type authModel struct {
	store *store.Store

	registering bool
	form        *huh.Form
	errText     string

	identifier *string
	name       *string
	secret     *string
}

func newAuthModel(s *store.Store) authModel {
	identifier, name, secret := "", "", ""
	m := authModel{
		store:      s,
		identifier: &identifier,
		name:       &name,
		secret:     &secret,
	}
	m.buildForm()
	return m
}

func (m *authModel) buildForm() {
	fields := []huh.Field{
		huh.NewInput().Title("Account").Placeholder("name@example.com").Value(m.identifier),
	}
	if m.registering {
		fields = append(fields, huh.NewInput().Title("Display Name").Value(m.name))
	}
	fields = append(fields,
		huh.NewInput().Title("Secret").EchoMode(huh.EchoModePassword).Value(m.secret),
	)
	m.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false).WithShowErrors(true)
}

func (m authModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			m.registering = !m.registering
			m.errText = ""
			m.buildForm()
			return m, m.form.Init()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}
	return m, cmd
}

func (m authModel) submit() (authModel, tea.Cmd) {
	var account *store.Account
	var err error
	if m.registering {
		account, err = m.store.CreateAccount(*m.identifier, *m.name, *m.secret)
	} else {
		account, err = m.store.Authenticate(*m.identifier, *m.secret)
	}

	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateAccount):
			m.errText = "An account with that identifier already exists."
		case errors.Is(err, store.ErrInvalidCredentials):
			m.errText = "Invalid credentials."
		default:
			m.errText = err.Error()
		}
		*m.secret = ""
		m.buildForm()
		return m, m.form.Init()
	}

	if err := m.store.SetActiveAccount(account); err != nil {
		m.errText = err.Error()
		m.buildForm()
		return m, m.form.Init()
	}
	return m, func() tea.Msg { return loggedInMsg{account: account} }
}

func (m authModel) view(width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("taskmaster")
	mode := "Sign In"
	hint := "ctrl+r: need an account? register"
	if m.registering {
		mode = "Create Account"
		hint = "ctrl+r: already registered? sign in"
	}

	parts := []string{
		title,
		mutedStyle.Render(mode),
		"",
		m.form.View(),
	}
	if m.errText != "" {
		parts = append(parts, errorStyle.Render(m.errText))
	}
	parts = append(parts, "", mutedStyle.Render(hint+"  ctrl+c: quit"))

	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
