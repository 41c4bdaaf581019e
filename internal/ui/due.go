package ui

import (
	"github.com/amonks/tasklist/todo"
	"github.com/charmbracelet/lipgloss"
)

var dueStyles = map[todo.DueKind]lipgloss.Style{
	todo.DueToday:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	todo.DueTomorrow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	todo.DueOverdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	todo.DueFuture:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

var headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// DueStyle returns the color style for a due classification.
func DueStyle(kind todo.DueKind) lipgloss.Style {
	if style, ok := dueStyles[kind]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// FormatDue renders a due label, colored when stdout accepts ANSI.
func FormatDue(labels todo.Labels, label todo.DueLabel) string {
	text := labels.DueText(label)
	if !ANSIEnabled() {
		return text
	}
	return DueStyle(label.Kind).Render(text)
}

// FormatHeading renders a list heading, styled when stdout accepts ANSI.
func FormatHeading(text string) string {
	if !ANSIEnabled() {
		return text
	}
	return headingStyle.Render(text)
}
