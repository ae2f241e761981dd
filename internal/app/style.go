package app

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	accent lipgloss.Color
	border lipgloss.Color
	muted  lipgloss.Color
	text   lipgloss.Color
	alert  lipgloss.Color
}

var (
	darkPalette = palette{
		accent: lipgloss.Color("212"),
		border: lipgloss.Color("63"),
		muted:  lipgloss.Color("244"),
		text:   lipgloss.Color("252"),
		alert:  lipgloss.Color("203"),
	}
	lightPalette = palette{
		accent: lipgloss.Color("127"),
		border: lipgloss.Color("61"),
		muted:  lipgloss.Color("242"),
		text:   lipgloss.Color("235"),
		alert:  lipgloss.Color("160"),
	}
)

type styles struct {
	header    lipgloss.Style
	title     lipgloss.Style
	table     lipgloss.Style
	modal     lipgloss.Style
	mini      lipgloss.Style
	status    lipgloss.Style
	highlight lipgloss.Style
	alert     lipgloss.Style
	text      lipgloss.Style
}

func newStyles(dark bool) styles {
	p := darkPalette
	if !dark {
		p = lightPalette
	}
	return styles{
		header:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		title:     lipgloss.NewStyle().Foreground(p.text).Bold(true),
		table:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		mini:      lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(p.border),
		status:    lipgloss.NewStyle().Foreground(p.muted),
		highlight: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		alert:     lipgloss.NewStyle().Foreground(p.alert).Bold(true),
		text:      lipgloss.NewStyle().Foreground(p.text),
	}
}

func tableStyles(dark bool) table.Styles {
	p := darkPalette
	if !dark {
		p = lightPalette
	}
	s := table.DefaultStyles()
	s.Header = s.Header.BorderForeground(p.border).Foreground(p.accent).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(p.border)
	return s
}
