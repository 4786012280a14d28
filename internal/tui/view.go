// TUI rendering with lipgloss.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/capmind/capmind/internal/format"
)

var (
	focusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	blurredBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var sections []string
	sections = append(sections, m.viewInput())
	if m.searchVisible() {
		sections = append(sections, m.viewSearch())
	}
	sections = append(sections, m.viewHistory())
	if m.err != nil {
		sections = append(sections, errStyle.Render(m.err.Error()))
	}
	sections = append(sections, titleStyle.Render("tab: switch  ctrl+j: save  /: search  esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewInput() string {
	return m.pane(focusInput).Width(m.paneWidth()).Render(m.input.View())
}

func (m Model) viewSearch() string {
	return m.pane(focusSearch).Width(m.paneWidth()).Render(m.search.View())
}

func (m Model) viewHistory() string {
	width := m.paneWidth()
	var b strings.Builder

	if len(m.visible) == 0 {
		b.WriteString(titleStyle.Render("no memos"))
	}
	for i, mm := range m.visible {
		line := format.MemoLine(format.DisplayTime(mm.CreatedAt), mm.Text, width-2)
		if i == m.selected && m.focus == focusHistory {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(m.visible)-1 {
			b.WriteByte('\n')
		}
	}

	return m.pane(focusHistory).Width(width).Render(b.String())
}

// pane returns the border style for a zone, highlighted when focused.
func (m Model) pane(zone focusZone) lipgloss.Style {
	if m.focus == zone {
		return focusedBorder
	}
	return blurredBorder
}

func (m Model) paneWidth() int {
	if m.width < 4 {
		return m.width
	}
	return m.width - 2
}
