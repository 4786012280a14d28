package format

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain text unchanged", content: "buy milk", want: "buy milk"},
		{name: "newlines become spaces", content: "line one\nline two", want: "line one line two"},
		{name: "tabs and CR flattened", content: "a\tb\r\nc", want: "a b c"},
		{name: "whitespace runs collapse", content: "a   b    c", want: "a b c"},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.content))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxWidth int
		want     string
	}{
		{name: "fits untouched", value: "short", maxWidth: 10, want: "short"},
		{name: "exact width untouched", value: "12345", maxWidth: 5, want: "12345"},
		{name: "truncated with ellipsis", value: "a very long memo line", maxWidth: 10, want: "a very ..."},
		{name: "tiny width only dots", value: "abcdef", maxWidth: 2, want: ".."},
		{name: "zero width", value: "abc", maxWidth: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.value, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateWideRunes(t *testing.T) {
	// Double-width runes must never be split mid-cell.
	got := Truncate("日本語のメモです", 9)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 9)
	assert.Contains(t, got, "...")
}

func TestMemoLine(t *testing.T) {
	const ts = "2026-08-27 10:00:00"

	t.Run("time prefix plus content", func(t *testing.T) {
		line := MemoLine(ts, "buy milk", 80)
		assert.Equal(t, ts+"  buy milk", line)
	})

	t.Run("content sanitized", func(t *testing.T) {
		line := MemoLine(ts, "two\nlines", 80)
		assert.Equal(t, ts+"  two lines", line)
	})

	t.Run("fits the given width", func(t *testing.T) {
		line := MemoLine(ts, "a memo that is far too long to fit in the window", 30)
		assert.LessOrEqual(t, runewidth.StringWidth(line), 30)
		assert.Contains(t, line, "...")
	})

	t.Run("width smaller than prefix", func(t *testing.T) {
		line := MemoLine(ts, "content", 10)
		assert.LessOrEqual(t, runewidth.StringWidth(line), 10)
	})

	t.Run("zero width", func(t *testing.T) {
		assert.Empty(t, MemoLine(ts, "content", 0))
	})
}

func TestDisplayTime(t *testing.T) {
	ts := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, ts.Local().Format("2006-01-02 15:04:05"), DisplayTime(ts))
}
