package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/taskmaster/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTasks viewState = iota
	viewAnalytics
	viewQuiz
	viewRhythm
	viewTips
)

var viewNames = []string{"Tasks", "Analytics", "Quiz", "Rhythm", "Tips"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type loggedInMsg struct {
	account *store.Account
}

type loggedOutMsg struct{}

type tasksDataMsg struct {
	tasks []store.Task
}

type rhythmDataMsg struct {
	today   []store.HourLog
	history []store.HourLog
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func statusCmd(text string, isError bool) func() tea.Msg {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}
