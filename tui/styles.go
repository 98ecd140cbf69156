package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	done      lipgloss.Style
	cursor    lipgloss.Style
	err       lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("#B0DB43")
	muted := lipgloss.Color("#5C5C5C")
	text := lipgloss.Color("#1A1A1A")

	if dark {
		muted = lipgloss.Color("#8A8A8A")
		text = lipgloss.Color("#F2F2F2")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA")),
		hint:      lipgloss.NewStyle().Foreground(muted),
		done:      lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D")),
	}
}
