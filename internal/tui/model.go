// Package tui implements the interactive capture mode: a memo input box,
// a searchable history list, and keyboard-driven focus switching.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/capmind/capmind/internal/format"
	"github.com/capmind/capmind/pkg/memo"
)

// MemoStore is the slice of the storage engine the TUI needs.
type MemoStore interface {
	Append(text string) (*memo.Memo, error)
	List(limit int) ([]*memo.Memo, error)
}

// focusZone identifies which pane receives key input.
type focusZone int

const (
	focusInput focusZone = iota
	focusHistory
	focusSearch
)

// Model is the bubbletea model for the interactive mode.
type Model struct {
	store MemoStore

	input  textarea.Model
	search textinput.Model

	all      []*memo.Memo // newest first
	visible  []*memo.Memo // all, narrowed by the search query
	selected int

	focus  focusZone
	width  int
	height int
	err    error
}

// NewModel builds the initial model, loading existing memos from the store.
func NewModel(store MemoStore) (Model, error) {
	input := textarea.New()
	input.Placeholder = "What's on your mind?"
	input.ShowLineNumbers = false
	input.Focus()

	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "

	m := Model{
		store:  store,
		input:  input,
		search: search,
		focus:  focusInput,
	}
	if err := m.reloadHistory(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.search.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.toggleFocus()
		return m, nil

	case "ctrl+j", "ctrl+s":
		if m.focus == focusInput {
			m.submitInput()
		}
		return m, nil
	}

	switch m.focus {
	case focusHistory:
		return m.handleHistoryKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	default:
		return m.updateFocused(msg)
	}
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		m.search.SetValue("")
		m.search.Focus()
		m.applySearch()
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

// updateFocused forwards the message to whichever text component has focus.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.applySearch()
		}
	}
	return m, cmd
}

// toggleFocus cycles input -> history -> input, leaving search via history.
func (m *Model) toggleFocus() {
	switch m.focus {
	case focusSearch:
		m.search.Blur()
		m.focus = focusHistory
	case focusHistory:
		m.input.Focus()
		m.focus = focusInput
	case focusInput:
		m.input.Blur()
		m.focus = focusHistory
	}
}

// submitInput persists the input text and refreshes the history. Text that
// normalizes to nothing is ignored without touching storage.
func (m *Model) submitInput() {
	text, err := memo.Normalize([]string{m.input.Value()})
	if err != nil {
		return
	}
	if _, err := m.store.Append(text); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.input.Reset()
	if err := m.reloadHistory(); err != nil {
		m.err = err
	}
}

// reloadHistory fetches all memos and shows them newest first.
func (m *Model) reloadHistory() error {
	memos, err := m.store.List(0)
	if err != nil {
		return err
	}
	m.all = make([]*memo.Memo, 0, len(memos))
	for i := len(memos) - 1; i >= 0; i-- {
		m.all = append(m.all, memos[i])
	}
	m.applySearch()
	return nil
}

// applySearch narrows the visible history to memos whose text or timestamp
// contains the query, case-insensitively.
func (m *Model) applySearch() {
	query := strings.ToLower(m.search.Value())
	if query == "" {
		m.visible = m.all
	} else {
		m.visible = make([]*memo.Memo, 0, len(m.all))
		for _, mm := range m.all {
			if strings.Contains(strings.ToLower(mm.Text), query) ||
				strings.Contains(format.DisplayTime(mm.CreatedAt), query) {
				m.visible = append(m.visible, mm)
			}
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

// searchVisible reports whether the search bar should be rendered.
func (m Model) searchVisible() bool {
	return m.focus == focusSearch || m.search.Value() != ""
}
