package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capmind/capmind/pkg/memo"
)

// fakeStore is an in-memory MemoStore for model tests.
type fakeStore struct {
	memos []*memo.Memo
}

func (f *fakeStore) Append(text string) (*memo.Memo, error) {
	m := &memo.Memo{
		ID:        int64(len(f.memos) + 1),
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	m.UpdatedAt = m.CreatedAt
	f.memos = append(f.memos, m)
	return m, nil
}

func (f *fakeStore) List(limit int) ([]*memo.Memo, error) {
	return f.memos, nil
}

func newTestModel(t *testing.T, store *fakeStore) Model {
	t.Helper()
	m, err := NewModel(store)
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+j":
		msg = tea.KeyMsg{Type: tea.KeyCtrlJ}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestSubmitPersistsMemoAndClearsInput(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	m = typeRunes(m, "remember this")
	m = press(m, "ctrl+j")

	require.Len(t, store.memos, 1)
	assert.Equal(t, "remember this", store.memos[0].Text)
	assert.Empty(t, m.input.Value())
	require.Len(t, m.visible, 1)
}

func TestSubmitEmptyInputDoesNothing(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	m = typeRunes(m, "   ")
	m = press(m, "ctrl+j")

	assert.Empty(t, store.memos)
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	assert.Equal(t, focusInput, m.focus)
	m = press(m, "tab")
	assert.Equal(t, focusHistory, m.focus)
	m = press(m, "tab")
	assert.Equal(t, focusInput, m.focus)
}

func TestHistoryNewestFirst(t *testing.T) {
	store := &fakeStore{}
	_, err := store.Append("old")
	require.NoError(t, err)
	_, err = store.Append("new")
	require.NoError(t, err)

	m := newTestModel(t, store)

	require.Len(t, m.visible, 2)
	assert.Equal(t, "new", m.visible[0].Text)
	assert.Equal(t, "old", m.visible[1].Text)
}

func TestSearchNarrowsHistory(t *testing.T) {
	store := &fakeStore{}
	for _, text := range []string{"buy milk", "call mom", "buy bread"} {
		_, err := store.Append(text)
		require.NoError(t, err)
	}

	m := newTestModel(t, store)
	m = press(m, "tab") // to history
	m = press(m, "/")   // open search
	require.Equal(t, focusSearch, m.focus)

	m = typeRunes(m, "buy")

	require.Len(t, m.visible, 2)
	for _, mm := range m.visible {
		assert.Contains(t, mm.Text, "buy")
	}
}

func TestHistorySelectionMoves(t *testing.T) {
	store := &fakeStore{}
	for _, text := range []string{"a", "b", "c"} {
		_, err := store.Append(text)
		require.NoError(t, err)
	}

	m := newTestModel(t, store)
	m = press(m, "tab")
	assert.Equal(t, 0, m.selected)

	m = press(m, "down")
	assert.Equal(t, 1, m.selected)
	m = press(m, "j")
	assert.Equal(t, 2, m.selected)
	m = press(m, "j") // clamped at the end
	assert.Equal(t, 2, m.selected)

	m = press(m, "up")
	m = press(m, "k")
	m = press(m, "k") // clamped at the start
	assert.Equal(t, 0, m.selected)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, &fakeStore{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	historyFocused := press(m, "tab")
	_, cmd = historyFocused.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsMemosAndHelp(t *testing.T) {
	store := &fakeStore{}
	_, err := store.Append("visible memo")
	require.NoError(t, err)

	m := newTestModel(t, store)
	view := m.View()

	assert.True(t, strings.Contains(view, "visible memo"))
	assert.True(t, strings.Contains(view, "ctrl+j"))
}

func TestViewEmptyHistory(t *testing.T) {
	m := newTestModel(t, &fakeStore{})
	assert.Contains(t, m.View(), "no memos")
}
