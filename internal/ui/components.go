package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/olivier-w/folio/internal/nav"
	"github.com/olivier-w/folio/internal/scroll"
)

// navSpan is the screen columns a header label occupies.
type navSpan struct {
	id         string
	start, end int
}

func brandText(name string) string {
	if name == "" {
		return "folio"
	}
	return name
}

// navSpans lays out the header labels after the brand.
func navSpans(items nav.List, brand string) []navSpan {
	x := len(margin) + lipgloss.Width(brand) + 3
	spans := make([]navSpan, 0, items.Len())
	for _, it := range items.Items() {
		w := lipgloss.Width(it.Label)
		spans = append(spans, navSpan{id: it.ID, start: x, end: x + w})
		x += w + 2
	}
	return spans
}

func spanAt(spans []navSpan, x int) (string, bool) {
	for _, s := range spans {
		if x >= s.start && x < s.end {
			return s.id, true
		}
	}
	return "", false
}

func renderNav(st styles, items nav.List, brand, active string, width int) string {
	var b strings.Builder
	b.WriteString(margin)
	b.WriteString(st.brand.Render(brand))
	b.WriteString("   ")
	for i, it := range items.Items() {
		if i > 0 {
			b.WriteString("  ")
		}
		if it.ID == active {
			b.WriteString(st.navActive.Render(it.Label))
		} else {
			b.WriteString(st.navItem.Render(it.Label))
		}
	}
	return fitLine(st, b.String(), width)
}

// renderTracker draws one dot per section: past sections filled, the active one
// highlighted, the rest hollow.
func renderTracker(st styles, items nav.List, state scroll.State, reduced bool, width int) string {
	activeIdx := items.Index(string(state.Active))
	var b strings.Builder
	b.WriteString(margin)
	for i, n := 0, items.Len(); i < n; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case i < activeIdx:
			b.WriteString(st.dotPast.Render("•"))
		case i == activeIdx:
			b.WriteString(st.dotActive.Render("●"))
		default:
			b.WriteString(st.dotFuture.Render("○"))
		}
	}
	arrow := "↓"
	if state.Direction == scroll.Up {
		arrow = "↑"
	}
	b.WriteString("   ")
	b.WriteString(st.muted.Render(arrow))
	if reduced {
		b.WriteString(st.muted.Render("  reduced motion"))
	}
	return fitLine(st, b.String(), width)
}

func renderCue(st styles, arrow, label string, width int) string {
	cue := st.cue.Render(arrow + " " + label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, cue)
}

// fitLine truncates s to width and paints the header background across it.
func fitLine(st styles, s string, width int) string {
	if width <= 0 {
		return s
	}
	s = ansi.Truncate(s, width, "…")
	return st.header.Width(width).Render(s)
}
