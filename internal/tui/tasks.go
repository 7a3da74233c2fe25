package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/export"
	"github.com/sadopc/taskmaster/internal/store"
)

var statusIcons = map[store.TaskStatus]string{
	store.StatusToDo:       "○",
	store.StatusInProgress: "◐",
	store.StatusCompleted:  "●",
}

type tasksModel struct {
	store   *store.Store
	account string
	width   int
	height  int

	tasks  []store.Task
	cursor int

	formActive bool
	form       *huh.Form
	editingID  int64 // 0 = creating

	// Form field pointers (survive value copies)
	formName     *string
	formDuration *string
	formCategory *string
	formPoints   *string

	defaultCategory string
}

func newTasksModel(s *store.Store, defaultCategory string) tasksModel {
	if defaultCategory == "" {
		defaultCategory = "other"
	}
	name, duration, category, points := "", "", defaultCategory, ""
	return tasksModel{
		store:           s,
		formName:        &name,
		formDuration:    &duration,
		formCategory:    &category,
		formPoints:      &points,
		defaultCategory: defaultCategory,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := m.store.ListTasks(m.account)
		return tasksDataMsg{tasks: tasks}
	}
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = maxInt(0, len(m.tasks)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.New):
			return m.showForm(nil)
		case key.Matches(msg, keys.Edit):
			if len(m.tasks) > 0 {
				t := m.tasks[m.cursor]
				return m.showForm(&t)
			}
		case key.Matches(msg, keys.Complete):
			if len(m.tasks) > 0 {
				t := m.tasks[m.cursor]
				if _, err := m.store.CompleteTask(m.account, t.ID); err != nil {
					return m, statusCmd(err.Error(), true)
				}
				return m, m.refresh()
			}
		case key.Matches(msg, keys.Delete):
			if len(m.tasks) > 0 {
				t := m.tasks[m.cursor]
				if err := m.store.RemoveTask(m.account, t.ID); err != nil {
					return m, statusCmd(err.Error(), true)
				}
				return m, m.refresh()
			}
		case key.Matches(msg, keys.Export):
			return m, m.exportTasks()
		}
	}
	return m, nil
}

func (m tasksModel) exportTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.store.ListTasks(m.account)
		if err != nil {
			return statusMsg{text: err.Error(), isError: true}
		}
		path := fmt.Sprintf("taskmaster_backup_%s_%s.json", m.account, time.Now().Format("2006-01-02"))
		if err := export.TasksToJSON(tasks, path); err != nil {
			return statusMsg{text: err.Error(), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}

func (m tasksModel) showForm(editing *store.Task) (tasksModel, tea.Cmd) {
	if editing == nil {
		m.editingID = 0
		*m.formName = ""
		*m.formDuration = "30"
		*m.formCategory = m.defaultCategory
		*m.formPoints = "5"
	} else {
		m.editingID = editing.ID
		*m.formName = editing.Name
		*m.formDuration = strconv.Itoa(editing.DurationMinutes)
		*m.formCategory = editing.Category
		*m.formPoints = strconv.Itoa(editing.Points)
	}

	catOptions := make([]huh.Option[string], len(store.Categories))
	for i, c := range store.Categories {
		catOptions[i] = huh.NewOption(c, c)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task Name").Value(m.formName),
			huh.NewInput().Title("Duration (minutes)").Value(m.formDuration),
			huh.NewSelect[string]().Title("Category").Options(catOptions...).Value(m.formCategory),
			huh.NewInput().Title("Points").Value(m.formPoints),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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
		return m.submitForm()
	}
	return m, cmd
}

func (m tasksModel) submitForm() (tasksModel, tea.Cmd) {
	duration, err := strconv.Atoi(strings.TrimSpace(*m.formDuration))
	if err != nil {
		return m, statusCmd("duration must be a number of minutes", true)
	}
	points, err := strconv.Atoi(strings.TrimSpace(*m.formPoints))
	if err != nil {
		return m, statusCmd("points must be a number", true)
	}

	draft := store.TaskDraft{
		Name:            *m.formName,
		DurationMinutes: duration,
		Category:        *m.formCategory,
		Points:          points,
	}

	if m.editingID == 0 {
		_, err = m.store.AddTask(m.account, draft)
	} else {
		_, err = m.store.UpdateTask(m.account, m.editingID, draft)
	}
	if err != nil {
		return m, statusCmd(err.Error(), true)
	}
	return m, m.refresh()
}

func (m tasksModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := "New Task"
		if m.editingID != 0 {
			title = "Edit Task"
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", m.form.View()),
		)
	}

	header := titleStyle.Render("Tasks")
	if len(m.tasks) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				header, "",
				mutedStyle.Render("No tasks yet. Press n to add one."),
			),
		)
	}

	var lines []string
	for i, t := range m.tasks {
		icon := statusIcons[t.Status]
		line := fmt.Sprintf("%s %-30s %-10s %4dm %3dpt", icon, truncate(t.Name, 30), t.Category, t.DurationMinutes, t.Points)
		switch {
		case i == m.cursor:
			line = selectedItemStyle.Render("> " + line)
		case t.Status == store.StatusCompleted:
			line = successStyle.Render("  " + line)
		default:
			line = normalItemStyle.Render("  " + line)
		}
		lines = append(lines, line)
	}

	controls := mutedStyle.Render("n: new  e: edit  c: complete  d: delete  x: export")
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", controls),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
