package tui

import "charm.land/lipgloss/v2"

var (
	headerColor = lipgloss.Color("#E9D7F7")
	borderColor = lipgloss.Color("#BDBDBD")
	accentColor = lipgloss.Color("#6A1B9A")
	errorColor  = lipgloss.Color("#C62828")
	mutedColor  = lipgloss.Color("#757575")
)

type styles struct {
	header      lipgloss.Style
	headerTitle lipgloss.Style
	headerTotal lipgloss.Style
	card        lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	button      lipgloss.Style
	sliderOn    lipgloss.Style
	sliderOff   lipgloss.Style
	err         lipgloss.Style
	help        lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Background(headerColor).
			Foreground(lipgloss.Color("#000000")).
			Padding(1, 2).
			Width(cardWidth).
			Align(lipgloss.Center),
		headerTitle: lipgloss.NewStyle(),
		headerTotal: lipgloss.NewStyle().Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Width(cardWidth),
		label:     lipgloss.NewStyle().Width(labelWidth),
		value:     lipgloss.NewStyle().Bold(true),
		button:    lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		sliderOn:  lipgloss.NewStyle().Foreground(accentColor),
		sliderOff: lipgloss.NewStyle().Foreground(mutedColor),
		err:       lipgloss.NewStyle().Foreground(errorColor),
		help:      lipgloss.NewStyle().Foreground(mutedColor),
	}
}
