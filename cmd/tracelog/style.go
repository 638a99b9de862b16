package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Philipp01105/tracelog/core"
)

// Define styles using lipgloss
var (
	serialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	senderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("32"))
)

// styleField is the formatter.StyleFunc of the --color flag.
func styleField(kind core.FieldKind, level core.Level, text string) string {
	switch kind {
	case core.FieldSerial:
		return serialStyle.Render(text)
	case core.FieldDate:
		return dateStyle.Render(text)
	case core.FieldFile, core.FieldFilePath, core.FieldLine:
		return locationStyle.Render(text)
	case core.FieldSender, core.FieldFunction:
		return senderStyle.Render(text)
	case core.FieldGroup:
		return groupStyle.Render(text)
	case core.FieldMessage:
		return messageStyle(level).Render(text)
	default:
		return text
	}
}

func messageStyle(level core.Level) lipgloss.Style {
	switch level {
	case core.ErrorLevel, core.CrashLevel:
		return errorStyle
	case core.WarningLevel:
		return warningStyle
	case core.DoneLevel:
		return doneStyle
	default:
		return lipgloss.NewStyle()
	}
}
