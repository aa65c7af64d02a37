package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette(Theme{
	Title:   "#7D56F4",
	Success: "#04B575",
	Error:   "#FF0000",
	Warning: "#FFA500",
	Muted:   "#626262",
})

// Theme names the hex colors a [Palette] is built from.
type Theme struct {
	Title   string
	Success string
	Error   string
	Warning string
	Muted   string
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	status lipgloss.Style
}

func NewPalette(t Theme) *Palette {
	return &Palette{
		title:  NewBold(t.Title).MarginBottom(1),
		ok:     NewBold(t.Success),
		err:    NewBold(t.Error),
		warn:   NewStyle(t.Warning),
		status: NewEm(t.Muted),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
