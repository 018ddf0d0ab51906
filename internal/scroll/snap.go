package scroll

// SnapTarget decides where a settled scroll should snap to. It mirrors the cue
// candidate rules but tests proximity: moving down, the next section's top must be
// within headerHeight + zone*viewport of the viewport top; moving up, the previous
// section's bottom must be within the last zone*viewport of the viewport.
func SnapTarget(dir Direction, bounds []Bounds, viewTop, viewportHeight, headerHeight, zone float64) (float64, bool) {
	viewBottom := viewTop + viewportHeight
	snapPoint := viewportHeight * zone

	if dir == Down {
		next, ok := nextCandidate(bounds, viewTop, viewBottom)
		if !ok {
			return 0, false
		}
		if next.Top-viewTop <= headerHeight+snapPoint {
			return next.Top - headerHeight, true
		}
		return 0, false
	}

	prev, ok := prevCandidate(bounds, viewTop, viewBottom)
	if !ok {
		return 0, false
	}
	if prev.Bottom-viewTop < viewportHeight-snapPoint {
		return 0, false
	}
	if prev.Height >= viewportHeight-headerHeight {
		return prev.Bottom - viewportHeight, true
	}
	return prev.Top - headerHeight, true
}
