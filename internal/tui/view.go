package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	styleNumber = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")).
			Padding(0, 1)

	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleInfo = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.puzzle == nil {
		return "Dealing..."
	}

	header := styleHeader.Render(fmt.Sprintf(
		"24 GAME │ difficulty=%s │ operators: %s │ %s",
		m.difficulty,
		operatorGlyphs(m.difficulty.Operators()),
		m.watch.View(),
	))

	numbers := make([]string, len(m.puzzle.Numbers))
	for i, n := range m.puzzle.Numbers {
		numbers[i] = styleNumber.Render(fmt.Sprintf(" %d ", n))
	}
	board := stylePanel.Render(
		"Make " + fmt.Sprint(m.puzzle.Target) + " from:  " +
			lipgloss.JoinHorizontal(lipgloss.Center, numbers...))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		board,
		m.renderEvents(),
		stylePanel.Render(m.input.View()),
		styleDim.Render("  enter to submit · ctrl+c to quit"),
	)
	return body + "\n"
}

func (m Model) renderEvents() string {
	if len(m.events) == 0 {
		return stylePanel.Render(styleDim.Render("Use all four numbers exactly once."))
	}
	start := 0
	if len(m.events) > 8 {
		start = len(m.events) - 8
	}
	var lines []string
	for _, e := range m.events[start:] {
		switch e.kind {
		case eventGood:
			lines = append(lines, styleGood.Render(e.text))
		case eventBad:
			lines = append(lines, styleBad.Render(e.text))
		default:
			lines = append(lines, styleInfo.Render(e.text))
		}
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}
