package scroll

// Bounds is the vertical interval occupied by a section. Bottom = Top + Height.
type Bounds struct {
	Top    float64
	Bottom float64
	Height float64
}

// Contains reports whether y falls in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Section is one sampled, mounted section.
type Section struct {
	ID       SectionID
	Bounds   Bounds
	Progress float64
}

// Sample reads the live layout of every mounted section in ids order and writes
// each section's visibility ratio back through Element.SetProgress.
func Sample(v Viewport, ids []SectionID) []Section {
	scrollY := v.ScrollY()
	viewportHeight := v.Height()

	out := make([]Section, 0, len(ids))
	for _, id := range ids {
		el := v.Element(id)
		if el == nil {
			continue
		}
		top := el.OffsetTop()
		height := el.OffsetHeight()
		if height < 0 {
			height = 0
		}
		b := Bounds{Top: top, Bottom: top + height, Height: height}
		p := visibility(b, scrollY, viewportHeight)
		el.SetProgress(p)
		out = append(out, Section{ID: id, Bounds: b, Progress: p})
	}
	return out
}

// visibility is the visible height of b divided by min(height, viewport), in [0,1].
func visibility(b Bounds, scrollY, viewportHeight float64) float64 {
	rectTop := b.Top - scrollY
	rectBottom := b.Bottom - scrollY
	visibleTop := max(rectTop, 0)
	visibleBottom := min(rectBottom, viewportHeight)
	visible := max(0, visibleBottom-visibleTop)
	maxVisible := min(b.Height, viewportHeight)
	if maxVisible <= 0 {
		return 0
	}
	return clamp(visible/maxVisible, 0, 1)
}

func boundsOf(sections []Section) []Bounds {
	out := make([]Bounds, len(sections))
	for i, s := range sections {
		out[i] = s.Bounds
	}
	return out
}

// nextCandidate is the nearest section whose top lies strictly inside (viewTop, viewBottom).
func nextCandidate(bounds []Bounds, viewTop, viewBottom float64) (Bounds, bool) {
	var best Bounds
	found := false
	for _, b := range bounds {
		if b.Top > viewTop && b.Top < viewBottom {
			if !found || b.Top < best.Top {
				best = b
				found = true
			}
		}
	}
	return best, found
}

// prevCandidate is the nearest section whose bottom lies strictly inside (viewTop, viewBottom).
func prevCandidate(bounds []Bounds, viewTop, viewBottom float64) (Bounds, bool) {
	var best Bounds
	found := false
	for _, b := range bounds {
		if b.Bottom > viewTop && b.Bottom < viewBottom {
			if !found || b.Bottom > best.Bottom {
				best = b
				found = true
			}
		}
	}
	return best, found
}
