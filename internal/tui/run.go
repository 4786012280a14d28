package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the interactive mode and blocks until the user quits.
func Run(store MemoStore) error {
	m, err := NewModel(store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
