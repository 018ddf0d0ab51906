package scroll

// ResolveActive returns the first section in order whose interval contains probe,
// or current when none does.
func ResolveActive(probe float64, sections []Section, current SectionID) SectionID {
	for _, s := range sections {
		if s.Bounds.Contains(probe) {
			return s.ID
		}
	}
	return current
}
