package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/analytics"
	"github.com/sadopc/taskmaster/internal/store"
)

var statusLabels = map[store.TaskStatus]string{
	store.StatusToDo:       "To Do",
	store.StatusInProgress: "In Progress",
	store.StatusCompleted:  "Completed",
}

var statusColors = map[store.TaskStatus]lipgloss.Color{
	store.StatusToDo:       colorSubtle,
	store.StatusInProgress: colorHighlight,
	store.StatusCompleted:  colorSuccess,
}

type analyticsModel struct {
	store   *store.Store
	account string
	width   int
	height  int

	summary analytics.Summary
	chart   barchart.Model
}

func newAnalyticsModel(s *store.Store) analyticsModel {
	return analyticsModel{
		store: s,
		chart: barchart.New(40, 10),
	}
}

func (m *analyticsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type analyticsDataMsg struct {
	summary analytics.Summary
}

func (m analyticsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := m.store.ListTasks(m.account)
		return analyticsDataMsg{summary: analytics.Summarize(tasks)}
	}
}

func (m analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	if msg, ok := msg.(analyticsDataMsg); ok {
		m.summary = msg.summary
		m.buildChart()
	}
	return m, nil
}

func (m *analyticsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	m.chart = barchart.New(chartWidth, 10)

	var bars []barchart.BarData
	for _, sc := range m.summary.StatusBreakdown {
		style := lipgloss.NewStyle().Foreground(statusColors[sc.Status])
		bars = append(bars, barchart.BarData{
			Label: statusLabels[sc.Status],
			Values: []barchart.BarValue{
				{Name: statusLabels[sc.Status], Value: float64(sc.Count), Style: style},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m analyticsModel) view() string {
	w := m.width - 4

	header := titleStyle.Render("Analytics")

	totals := fmt.Sprintf(
		"%d tasks  •  %d completed  •  %d points earned  •  %s focused",
		m.summary.TotalTasks, m.summary.TotalCompleted,
		m.summary.TotalPoints, formatMinutes(m.summary.TotalMinutes),
	)

	var catLines []string
	if len(m.summary.CategoryBreakdown) > 0 {
		catLines = append(catLines, titleStyle.Render("By category"))
		for _, cc := range m.summary.CategoryBreakdown {
			catLines = append(catLines, fmt.Sprintf("  %-10s %d", cc.Category, cc.Count))
		}
	}

	parts := []string{
		header, "",
		highlightStyle.Render(totals), "",
		m.chart.View(),
	}
	if len(catLines) > 0 {
		parts = append(parts, "")
		parts = append(parts, catLines...)
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
