package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/rhythm"
	"github.com/sadopc/taskmaster/internal/store"
)

// Display shell: 6am through 9pm, matching the hours most people log.
const (
	rhythmFirstHour = 6
	rhythmLastHour  = 21
)

type rhythmModel struct {
	store   *store.Store
	account string
	width   int
	height  int

	input       textinput.Model
	inputActive bool

	today   []store.HourLog
	history []store.HourLog
	chart   barchart.Model
}

func newRhythmModel(s *store.Store) rhythmModel {
	ti := textinput.New()
	ti.Placeholder = "6a^10a%Deep Work%f5e4"
	ti.CharLimit = 120
	return rhythmModel{
		store: s,
		input: ti,
		chart: barchart.New(60, 10),
	}
}

func (m *rhythmModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (m rhythmModel) refresh() tea.Cmd {
	return func() tea.Msg {
		day, _ := m.store.HourLogs(m.account, today())
		history, _ := m.store.AllHourLogs(m.account)
		return rhythmDataMsg{today: day, history: history}
	}
}

func (m rhythmModel) update(msg tea.Msg) (rhythmModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rhythmDataMsg:
		m.today = msg.today
		m.history = msg.history
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		if m.inputActive {
			switch msg.String() {
			case "esc":
				m.inputActive = false
				m.input.Blur()
				return m, nil
			case "enter":
				return m.submitCommand()
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		if key.Matches(msg, keys.New) || key.Matches(msg, keys.Enter) {
			m.inputActive = true
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m rhythmModel) submitCommand() (rhythmModel, tea.Cmd) {
	entries, err := rhythm.ParseCommand(m.input.Value())
	if err != nil {
		return m, statusCmd(err.Error(), true)
	}

	day := today()
	for _, e := range entries {
		if err := m.store.UpsertHourLog(m.account, day, e.Hour, e.Activity, e.Focus, e.Energy); err != nil {
			return m, statusCmd(err.Error(), true)
		}
	}

	m.input.SetValue("")
	m.inputActive = false
	m.input.Blur()
	note := fmt.Sprintf("Logged %q across %d hour block(s)", entries[0].Activity, len(entries))
	return m, tea.Batch(m.refresh(), statusCmd(note, false))
}

// buildChart plots logged focus and energy against predicted capacity
// (scaled to the same 0-5 axis) for the display shell hours.
func (m *rhythmModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 30 {
		chartWidth = 30
	}
	m.chart = barchart.New(chartWidth, 10)

	byHour := make(map[float64]store.HourLog)
	for _, l := range m.today {
		byHour[l.Hour] = l
	}

	focusStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	energyStyle := lipgloss.NewStyle().Foreground(colorWarning)
	predictedStyle := lipgloss.NewStyle().Foreground(colorSubtle)

	var bars []barchart.BarData
	for h := float64(rhythmFirstHour); h <= rhythmLastHour; h++ {
		predicted := rhythm.Predict(h, rhythm.HistoryAt(m.history, h), rhythm.PrevLog(m.today, h)) * 5

		values := []barchart.BarValue{
			{Name: "predicted", Value: predicted, Style: predictedStyle},
		}
		if l, ok := byHour[h]; ok {
			values = []barchart.BarValue{
				{Name: "focus", Value: float64(l.Focus), Style: focusStyle},
				{Name: "energy", Value: float64(l.Energy), Style: energyStyle},
			}
		}
		bars = append(bars, barchart.BarData{
			Label:  fmt.Sprintf("%02.0f", h),
			Values: values,
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m rhythmModel) view() string {
	w := m.width - 4

	header := titleStyle.Render("Rhythm")
	avgLine := m.renderAverages()

	input := mutedStyle.Render("n: log a block  (format 6a^10a%Deep Work%f5e4)")
	if m.inputActive {
		input = m.input.View()
	}

	var logLines []string
	for _, l := range m.today {
		logLines = append(logLines, fmt.Sprintf("  %-8s %-28s f%d e%d",
			rhythm.FormatDecimalTime(l.Hour), truncate(l.Activity, 28), l.Focus, l.Energy))
	}
	if len(logLines) == 0 {
		logLines = append(logLines, mutedStyle.Render("  Nothing logged today."))
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "",
			input, "",
			m.chart.View(), "",
			avgLine, "",
			lipgloss.JoinVertical(lipgloss.Left, logLines...),
		),
	)
}

func (m rhythmModel) renderAverages() string {
	if len(m.today) == 0 {
		return mutedStyle.Render("predicted capacity shown in grey until you log")
	}
	var focus, energy int
	for _, l := range m.today {
		focus += l.Focus
		energy += l.Energy
	}
	n := float64(len(m.today))
	return highlightStyle.Render(fmt.Sprintf(
		"avg focus %.1f  •  avg energy %.1f  •  %d blocks logged",
		float64(focus)/n, float64(energy)/n, len(m.today),
	))
}
