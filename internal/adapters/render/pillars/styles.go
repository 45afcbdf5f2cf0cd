package pillars

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	meta      lipgloss.Style
	header    lipgloss.Style
	capped    lipgloss.Style
	cell      lipgloss.Style
	lastCell  lipgloss.Style
	fresh     lipgloss.Style
	line      lipgloss.Style
	ground    lipgloss.Style
	groundHdr lipgloss.Style
	footer    lipgloss.Style
	spinner   lipgloss.Style
}

func newStyles(width int) styles {
	cell := lipgloss.NewStyle().
		Width(width).
		PaddingRight(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(lipgloss.Color("238"))

	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Width(width - 1).Align(lipgloss.Center),
		capped:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		cell:      cell,
		lastCell:  lipgloss.NewStyle().Width(width),
		fresh:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		line:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ground:    lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
		groundHdr: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("94")).MarginTop(1),
		footer:    lipgloss.NewStyle().Faint(true).MarginTop(1),
		spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
