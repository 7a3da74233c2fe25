package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskmaster/internal/rhythm"
)

type tipsModel struct {
	width  int
	height int
	tips   []rhythm.Tip
}

func newTipsModel() tipsModel {
	return tipsModel{tips: rhythm.Tips()}
}

func (m *tipsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m tipsModel) update(msg tea.Msg) (tipsModel, tea.Cmd) {
	return m, nil
}

func (m tipsModel) view() string {
	w := m.width - 4

	parts := []string{
		titleStyle.Render("Neuro Tips"),
		mutedStyle.Render("Levers for alertness and recovery, from peer-reviewed literature."),
		"",
	}
	for _, t := range m.tips {
		parts = append(parts,
			highlightStyle.Bold(true).Render(t.Title)+mutedStyle.Render("  ["+t.Category+"]"),
			lipgloss.NewStyle().Width(w-6).Render(t.Desc),
			"",
		)
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
