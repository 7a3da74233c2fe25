package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/store"
)

// Options carries config-derived defaults into the TUI.
type Options struct {
	QuizMinutes     int
	DefaultCategory string
}

// App is the root Bubble Tea model. Until an account is signed in it
// renders the auth gate; afterwards it routes between the views.
type App struct {
	store   *store.Store
	opts    Options
	width   int
	height  int
	account *store.Account

	activeView viewState
	showHelp   bool

	auth      authModel
	tasks     tasksModel
	analytics analyticsModel
	quiz      quizModel
	rhythm    rhythmModel
	tips      tipsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store, opts Options) App {
	h := help.New()
	h.ShowAll = false

	app := App{
		store:      s,
		opts:       opts,
		activeView: viewTasks,
		auth:       newAuthModel(s),
		tasks:      newTasksModel(s, opts.DefaultCategory),
		analytics:  newAnalyticsModel(s),
		quiz:       newQuizModel(opts.QuizMinutes),
		rhythm:     newRhythmModel(s),
		tips:       newTipsModel(),
		help:       h,
	}

	// Restore a persisted session, if any. A corrupt session blob reads
	// as "not signed in".
	if account, err := s.ActiveAccount(); err == nil && account != nil {
		app.account = account
		app.tasks.account = account.Identifier
		app.analytics.account = account.Identifier
		app.rhythm.account = account.Identifier
	}
	return app
}

func (a App) Init() tea.Cmd {
	if a.account == nil {
		return tea.Batch(a.auth.Init(), tickCmd())
	}
	return tea.Batch(a.tasks.refresh(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.tasks.setSize(a.width, contentHeight)
		a.analytics.setSize(a.width, contentHeight)
		a.quiz.setSize(a.width, contentHeight)
		a.rhythm.setSize(a.width, contentHeight)
		a.tips.setSize(a.width, contentHeight)
		return a, nil

	case loggedInMsg:
		a.account = msg.account
		a.tasks.account = msg.account.Identifier
		a.analytics.account = msg.account.Identifier
		a.rhythm.account = msg.account.Identifier
		a.activeView = viewTasks
		a.status = "Signed in as " + msg.account.DisplayName
		a.statusErr = false
		return a, a.tasks.refresh()

	case loggedOutMsg:
		a.account = nil
		a.auth = newAuthModel(a.store)
		a.status = ""
		return a, a.auth.Init()

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		// The quiz countdown only advances while its view is visible; the
		// engine is reset when the user navigates away, so no orphaned
		// countdown survives.
		if a.account != nil && a.activeView == viewQuiz {
			var cmd tea.Cmd
			a.quiz, cmd = a.quiz.update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return a, tea.Batch(cmds...)
	}

	if a.account == nil {
		var cmd tea.Cmd
		a.auth, cmd = a.auth.update(msg)
		return a, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// If a child view is capturing input (form or text field), delegate.
		if a.isInputActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Logout):
			a.store.ClearActiveAccount()
			a.quiz.cancel()
			return a, func() tea.Msg { return loggedOutMsg{} }
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewTasks)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewAnalytics)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewQuiz)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewRhythm)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewTips)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % 5)
		}
	}

	return a.updateActiveView(msg)
}

// switchView changes the active view, tearing down a running quiz
// countdown if the user navigates away from it.
func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	if a.activeView == viewQuiz && v != viewQuiz {
		a.quiz.cancel()
	}
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewAnalytics:
		a.analytics, cmd = a.analytics.update(msg)
	case viewQuiz:
		a.quiz, cmd = a.quiz.update(msg)
	case viewRhythm:
		a.rhythm, cmd = a.rhythm.update(msg)
	case viewTips:
		a.tips, cmd = a.tips.update(msg)
	}
	return a, cmd
}

func (a App) isInputActive() bool {
	switch a.activeView {
	case viewTasks:
		return a.tasks.formActive
	case viewQuiz:
		return a.quiz.inputActive()
	case viewRhythm:
		return a.rhythm.inputActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewTasks:
		return a.tasks.refresh()
	case viewAnalytics:
		return a.analytics.refresh()
	case viewRhythm:
		return a.rhythm.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.account == nil {
		return a.auth.view(a.width, a.height)
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTasks:
		content = a.tasks.view()
	case viewAnalytics:
		content = a.analytics.view()
	case viewQuiz:
		content = a.quiz.view()
	case viewRhythm:
		content = a.rhythm.view()
	case viewTips:
		content = a.tips.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("taskmaster")
	user := mutedStyle.Render(a.account.DisplayName)

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - lipgloss.Width(user) - 6
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow, "  ", user),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	countdown := ""
	if a.quiz.running() {
		countdown = warningStyle.Render("  quiz " + formatCountdown(a.quiz.remaining()))
	}

	return headerStyle.Render(helpView + status + countdown)
}
