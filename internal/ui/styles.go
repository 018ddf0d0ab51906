package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type palette struct {
	name   string
	text   string
	muted  string
	dim    string
	accent string
	header string
}

var palettes = map[string]palette{
	"dark": {
		name:   "dark",
		text:   "#E6E6E6",
		muted:  "#AAAAAA",
		dim:    "#555555",
		accent: "#FF8C00",
		header: "#1C1C1C",
	},
	"light": {
		name:   "light",
		text:   "#222222",
		muted:  "#666666",
		dim:    "#BBBBBB",
		accent: "#D9480F",
		header: "#F2F2F2",
	},
}

func nextTheme(name string) string {
	if name == "light" {
		return "dark"
	}
	return "light"
}

type styles struct {
	pal palette

	brand     lipgloss.Style
	navItem   lipgloss.Style
	navActive lipgloss.Style
	header    lipgloss.Style
	title     lipgloss.Style
	heading   lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	cue       lipgloss.Style
	border    lipgloss.Style
	focused   lipgloss.Style
	help      lipgloss.Style
	dotPast   lipgloss.Style
	dotActive lipgloss.Style
	dotFuture lipgloss.Style
}

func newStyles(theme string) styles {
	pal, ok := palettes[theme]
	if !ok {
		pal = palettes["dark"]
	}
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return styles{
		pal:       pal,
		brand:     fg(pal.accent).Bold(true),
		navItem:   fg(pal.muted),
		navActive: fg(pal.accent).Bold(true).Underline(true),
		header:    lipgloss.NewStyle().Background(lipgloss.Color(pal.header)),
		title:     lipgloss.NewStyle().Bold(true),
		heading:   fg(pal.text).Bold(true),
		text:      fg(pal.text),
		muted:     fg(pal.muted),
		accent:    fg(pal.accent),
		cue:       fg(pal.accent).Bold(true),
		border:    fg(pal.dim),
		focused:   fg(pal.accent),
		help:      fg(pal.dim),
		dotPast:   fg(pal.muted),
		dotActive: fg(pal.accent).Bold(true),
		dotFuture: fg(pal.dim),
	}
}

// titleColor fades a section title from the dim colour to the accent as the
// section scrolls into view.
func (s styles) titleColor(progress float64) lipgloss.Color {
	from, err := colorful.Hex(s.pal.dim)
	if err != nil {
		return lipgloss.Color(s.pal.accent)
	}
	to, err := colorful.Hex(s.pal.accent)
	if err != nil {
		return lipgloss.Color(s.pal.accent)
	}
	progress = min(max(progress, 0), 1)
	return lipgloss.Color(from.BlendLab(to, progress).Clamped().Hex())
}
