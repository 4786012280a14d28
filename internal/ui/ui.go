// Package ui styles CLI output with terminal colors.
package ui

import "github.com/fatih/color"

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

// Success formats a confirmation message.
func Success(msg string) string {
	return green("✓") + " " + msg
}

// Fail formats an error message for stderr.
func Fail(msg string) string {
	return red("✗") + " " + msg
}

// Faint renders dimmed text, used for timestamps and ids.
func Faint(msg string) string {
	return faint(msg)
}
