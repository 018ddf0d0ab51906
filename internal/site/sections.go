package site

// Section ids in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionLicenses   = "licenses"
	SectionInterest   = "interest"
	SectionContact    = "contact"
)

// Order is every section the page knows about, in page order.
var Order = []string{
	SectionHome,
	SectionAbout,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionLicenses,
	SectionInterest,
	SectionContact,
}

// Labels are the navigation labels of each section.
var Labels = map[string]string{
	SectionHome:       "Home",
	SectionAbout:      "About",
	SectionProjects:   "Projects",
	SectionExperience: "Experience",
	SectionEducation:  "Education",
	SectionLicenses:   "Licenses",
	SectionInterest:   "Interests",
	SectionContact:    "Contact",
}

// Has reports whether the document renders the section id.
func (s *Site) Has(id string) bool {
	switch id {
	case SectionExperience:
		return s.Experience != nil
	case SectionEducation:
		return s.Education != nil
	case SectionLicenses:
		return s.Licenses != nil
	case SectionHome, SectionAbout, SectionProjects, SectionInterest, SectionContact:
		return true
	}
	return false
}

// SectionIDs returns the sections present in the document, in page order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, 0, len(Order))
	for _, id := range Order {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
