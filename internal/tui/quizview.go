package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/export"
	"github.com/sadopc/taskmaster/internal/quiz"
)

type quizModel struct {
	engine *quiz.Engine
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formSource  *string // pasted pipe-delimited text
	formFile    *string // or a file to read instead
	formMinutes *string

	qIndex    int
	optCursor int
}

func newQuizModel(defaultMinutes int) quizModel {
	source, file, minutes := "", "", strconv.Itoa(defaultMinutes)
	return quizModel{
		engine:      quiz.NewEngine(defaultMinutes),
		formSource:  &source,
		formFile:    &file,
		formMinutes: &minutes,
	}
}

func (m *quizModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m quizModel) running() bool {
	return m.engine.State() == quiz.StateRunning
}

func (m quizModel) remaining() int {
	return m.engine.Remaining()
}

func (m quizModel) inputActive() bool {
	return m.formActive
}

// cancel tears down a running session when the host navigates away.
func (m *quizModel) cancel() {
	if m.engine.State() == quiz.StateRunning {
		m.engine.Reset()
	}
}

func (m quizModel) update(msg tea.Msg) (quizModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		if m.engine.Tick() {
			return m, statusCmd("Time's up — quiz submitted", false)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.engine.State() {
		case quiz.StateSetup:
			return m.updateSetup(msg)
		case quiz.StateRunning:
			return m.updateRunning(msg)
		case quiz.StateResults:
			return m.updateResults(msg)
		case quiz.StateReview:
			if key.Matches(msg, keys.Back) {
				m.engine.BackToResults()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m quizModel) updateSetup(msg tea.KeyMsg) (quizModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.New):
		return m.showLoadForm()
	case key.Matches(msg, keys.Start):
		if err := m.engine.Start(); err != nil {
			if errors.Is(err, quiz.ErrEmptyQuestionSet) {
				return m, statusCmd("Load questions before starting", true)
			}
			return m, statusCmd(err.Error(), true)
		}
		m.qIndex = 0
		m.optCursor = 0
		return m, statusCmd("Quiz started", false)
	}
	return m, nil
}

func (m quizModel) updateRunning(msg tea.KeyMsg) (quizModel, tea.Cmd) {
	questions := m.engine.Questions()
	current := questions[m.qIndex]

	switch {
	case key.Matches(msg, keys.Up):
		if m.optCursor > 0 {
			m.optCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.optCursor < len(current.Options)-1 {
			m.optCursor++
		}
	case key.Matches(msg, keys.Enter):
		m.engine.RecordAnswer(m.qIndex, current.Options[m.optCursor])
	case key.Matches(msg, keys.Left):
		if m.qIndex > 0 {
			m.qIndex--
			m.optCursor = 0
		}
	case key.Matches(msg, keys.Right):
		if m.qIndex < len(questions)-1 {
			m.qIndex++
			m.optCursor = 0
		}
	case key.Matches(msg, keys.Submit):
		m.engine.Submit()
		return m, statusCmd("Quiz submitted", false)
	}
	return m, nil
}

func (m quizModel) updateResults(msg tea.KeyMsg) (quizModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Review):
		m.engine.Review()
	case key.Matches(msg, keys.Restart):
		m.engine.Restart()
	case key.Matches(msg, keys.Export):
		report := m.engine.Report()
		if report == nil {
			return m, nil
		}
		path := fmt.Sprintf("quiz_report_%s.csv", time.Now().Format("2006-01-02_150405"))
		if err := export.ReportToCSV(report, path); err != nil {
			return m, statusCmd(err.Error(), true)
		}
		return m, func() tea.Msg { return exportDoneMsg{path: path} }
	}
	return m, nil
}

func (m quizModel) showLoadForm() (quizModel, tea.Cmd) {
	*m.formSource = ""
	*m.formFile = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Paste questions").
				Description("Question|CorrectAnswer|OptionA|OptionB|OptionC|OptionD").
				Value(m.formSource),
			huh.NewInput().
				Title("...or load from file").
				Placeholder("questions.txt").
				Value(m.formFile),
			huh.NewInput().Title("Duration (minutes)").Value(m.formMinutes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m quizModel) updateForm(msg tea.Msg) (quizModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m.submitLoadForm()
	}
	return m, cmd
}

func (m quizModel) submitLoadForm() (quizModel, tea.Cmd) {
	minutes, err := strconv.Atoi(strings.TrimSpace(*m.formMinutes))
	if err != nil || minutes <= 0 {
		return m, statusCmd("duration must be a positive number of minutes", true)
	}

	source := *m.formSource
	if file := strings.TrimSpace(*m.formFile); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return m, statusCmd(err.Error(), true)
		}
		source = string(data)
	}

	questions, err := quiz.ParseString(source)
	if err != nil {
		if errors.Is(err, quiz.ErrNoValidQuestions) {
			return m, statusCmd("Input parsed but contained no valid questions", true)
		}
		return m, statusCmd(err.Error(), true)
	}

	m.engine.Load(questions)
	m.engine.SetDuration(minutes)
	return m, statusCmd(fmt.Sprintf("Loaded %d questions", len(questions)), false)
}

func (m quizModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Load Questions"), "", m.form.View()),
		)
	}

	switch m.engine.State() {
	case quiz.StateSetup:
		return m.viewSetup(w)
	case quiz.StateRunning:
		return m.viewRunning(w)
	case quiz.StateResults:
		return m.viewResults(w)
	case quiz.StateReview:
		return m.viewReview(w)
	}
	return ""
}

func (m quizModel) viewSetup(w int) string {
	loaded := mutedStyle.Render("No questions loaded.")
	if n := len(m.engine.Questions()); n > 0 {
		loaded = successStyle.Render(fmt.Sprintf("%d questions loaded, %d minute timer.", n, m.engine.Duration()))
	}
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Quiz"), "",
			loaded, "",
			mutedStyle.Render("n: load questions  s: start"),
		),
	)
}

func (m quizModel) viewRunning(w int) string {
	questions := m.engine.Questions()
	q := questions[m.qIndex]

	countdown := countdownStyle.Width(w - 6).Render(formatCountdown(m.engine.Remaining()))
	counter := mutedStyle.Render(fmt.Sprintf("Question %d of %d", m.qIndex+1, len(questions)))

	var optLines []string
	recorded, hasAnswer := m.engine.Answer(m.qIndex)
	for i, opt := range q.Options {
		marker := "  "
		if hasAnswer && opt == recorded {
			marker = successStyle.Render("✓ ")
		}
		line := marker + opt
		if i == m.optCursor {
			line = selectedItemStyle.Render("> " + line)
		} else {
			line = normalItemStyle.Render("  " + line)
		}
		optLines = append(optLines, line)
	}

	controls := mutedStyle.Render("↑/↓: option  enter: answer  ←/→: question  S: submit")
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			countdown, "",
			counter,
			titleStyle.Render(q.Text), "",
			lipgloss.JoinVertical(lipgloss.Left, optLines...), "",
			controls,
		),
	)
}

func (m quizModel) viewResults(w int) string {
	report := m.engine.Report()
	score := fmt.Sprintf("%d / %d correct — %s%%", report.Score, report.Total, report.Percent())

	var scoreStyle lipgloss.Style
	switch {
	case report.Percentage >= 70:
		scoreStyle = successStyle
	case report.Percentage >= 40:
		scoreStyle = warningStyle
	default:
		scoreStyle = errorStyle
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Results"), "",
			scoreStyle.Bold(true).Render(score), "",
			mutedStyle.Render("v: review answers  r: restart  x: export report"),
		),
	)
}

func (m quizModel) viewReview(w int) string {
	report := m.engine.Report()

	var lines []string
	for i, row := range report.Rows {
		result := errorStyle.Render("✗")
		if row.Correct {
			result = successStyle.Render("✓")
		}
		lines = append(lines, fmt.Sprintf("%s Q%d. %s", result, i+1, row.Question))
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("    correct: %s   yours: %s", row.CorrectAnswer, row.Response)))
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Review"), "",
			lipgloss.JoinVertical(lipgloss.Left, lines...), "",
			mutedStyle.Render("esc: back to results"),
		),
	)
}
