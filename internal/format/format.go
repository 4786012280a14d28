// Package format renders memos for single-line terminal display.
// Formatting is display-only; stored memo text is never modified.
package format

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// displayTimeLayout is the local-time layout used for memo timestamps.
const displayTimeLayout = "2006-01-02 15:04:05"

// DisplayTime renders a memo timestamp in local time.
func DisplayTime(t time.Time) string {
	return t.Local().Format(displayTimeLayout)
}

// Sanitize flattens memo text to a single line: newlines, carriage returns,
// and tabs become spaces, and runs of whitespace collapse to one space.
func Sanitize(content string) string {
	return strings.Join(strings.Fields(content), " ")
}

// MemoLine renders "<time>  <content>" fitted to maxWidth display cells.
// Content is sanitized and truncated with an ellipsis; when the width
// cannot even hold the time prefix, the time itself is truncated.
func MemoLine(displayTime, content string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	prefix := displayTime + "  "
	prefixWidth := runewidth.StringWidth(prefix)
	if maxWidth <= prefixWidth {
		return Truncate(displayTime, maxWidth)
	}

	return prefix + Truncate(Sanitize(content), maxWidth-prefixWidth)
}

// Truncate shortens value to at most maxWidth display cells, appending
// "..." when anything was cut. Width is measured in terminal cells so
// double-width runes are not split.
func Truncate(value string, maxWidth int) string {
	if runewidth.StringWidth(value) <= maxWidth {
		return value
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var (
		b     strings.Builder
		width int
	)
	for _, ch := range value {
		chWidth := runewidth.RuneWidth(ch)
		if width+chWidth > maxWidth-3 {
			break
		}
		b.WriteRune(ch)
		width += chWidth
	}
	b.WriteString("...")
	return b.String()
}
