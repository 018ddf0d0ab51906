package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/olivier-w/folio/internal/layout"
	"github.com/olivier-w/folio/internal/nav"
	"github.com/olivier-w/folio/internal/scroll"
	"github.com/olivier-w/folio/internal/site"
)

const (
	attrSection = "section"
	attrPane    = "pane"
	attrMarquee = "marquee"

	margin   = "  "
	maxWidth = 96
)

type rowKind uint8

const (
	rowText rowKind = iota
	rowTitle
	rowPane
)

// row is one document row. Title rows are styled at draw time because their
// colour follows the section's visibility progress.
type row struct {
	kind  rowKind
	text  string
	node  *layout.Node
	pane  *layout.Pane
	index int
}

// document is the rendered page: the layout tree plus the rows it covers.
type document struct {
	*layout.Document
	rows     []row
	titles   map[string]string
	panes    map[*layout.Node]*layout.Pane
	projects *layout.Pane
	marquee  *layout.Pane
}

// paneOf returns the pane containing n, if any.
func (d *document) paneOf(n *layout.Node) *layout.Pane {
	if n == nil {
		return nil
	}
	if pn := n.Closest(attrPane); pn != nil {
		return d.panes[pn]
	}
	return nil
}

type paneSpec struct {
	id     string
	offset int
	height int
	lines  []string
	attrs  []string
}

// block accumulates the rows of one section.
type block struct {
	st    styles
	width int
	rows  []row
	panes []paneSpec
	title string
}

func (b *block) blank() { b.rows = append(b.rows, row{}) }

func (b *block) line(s string) { b.rows = append(b.rows, row{text: margin + s}) }

func (b *block) wrap(style func(...string) string, s string, indent string) {
	if s == "" {
		return
	}
	w := max(b.width-len(indent), 10)
	for _, l := range strings.Split(ansi.Wordwrap(s, w, ""), "\n") {
		b.line(indent + style(l))
	}
}

func (b *block) heading(s string) {
	if s == "" {
		return
	}
	b.blank()
	b.line(b.st.heading.Render(s))
}

func (b *block) titleRow(s string) {
	b.title = s
	b.rows = append(b.rows, row{kind: rowTitle})
}

func (b *block) bullets(items []string) {
	for _, it := range items {
		w := max(b.width-4, 10)
		for i, l := range strings.Split(ansi.Wordwrap(it, w, ""), "\n") {
			prefix := "    "
			if i == 0 {
				prefix = "  • "
			}
			b.line(b.st.muted.Render(prefix) + b.st.text.Render(l))
		}
	}
}

func (b *block) pane(id string, lines []string, height int, attrs ...string) {
	if len(lines) == 0 {
		return
	}
	b.panes = append(b.panes, paneSpec{
		id:     id,
		offset: len(b.rows),
		height: height,
		lines:  lines,
		attrs:  append([]string{scroll.NoSnapMarker, attrPane}, attrs...),
	})
	for i := 0; i < height; i++ {
		b.rows = append(b.rows, row{kind: rowPane, index: i})
	}
}

// buildDocument lays out every section in nav order. Sections are padded to at
// least the viewport height; the first one leaves room for the header.
func buildDocument(s *site.Site, items nav.List, st styles, width, viewHeight, header int) *document {
	d := &document{
		Document: layout.NewDocument(),
		titles:   make(map[string]string),
		panes:    make(map[*layout.Node]*layout.Pane),
	}
	contentWidth := min(max(width-2*len(margin), 20), maxWidth)
	paneHeight := max(4, viewHeight/2)

	for i, it := range items.Items() {
		b := &block{st: st, width: contentWidth}
		if i == 0 {
			for i := 0; i < header; i++ {
				b.blank()
			}
		}
		b.blank()
		renderSection(b, s, it.ID, paneHeight)
		b.blank()

		top := len(d.rows)
		height := max(len(b.rows), viewHeight)
		section := d.Append(nil, layout.NewNode(it.ID, top, height, attrSection))
		d.titles[it.ID] = b.title

		for _, r := range b.rows {
			if r.kind == rowTitle {
				r.node = section
			}
			d.rows = append(d.rows, r)
		}
		for len(d.rows) < top+height {
			d.rows = append(d.rows, row{})
		}

		for _, ps := range b.panes {
			node := d.Append(section, layout.NewNode(ps.id, top+ps.offset, ps.height, ps.attrs...))
			pn := layout.NewPane(node, ps.lines)
			d.panes[node] = pn
			for j := top + ps.offset; j < top+ps.offset+ps.height; j++ {
				d.rows[j].pane = pn
			}
			switch ps.id {
			case "projects-list":
				d.projects = pn
			case "licenses-marquee":
				d.marquee = pn
			}
		}
	}
	return d
}

func renderSection(b *block, s *site.Site, id string, paneHeight int) {
	st := b.st
	switch id {
	case site.SectionHome:
		h := s.Hero
		if h.Badge != "" {
			b.line(st.accent.Render(h.Badge))
			b.blank()
		}
		b.titleRow(h.Title)
		b.wrap(st.heading.Render, h.Subtitle, "")
		b.blank()
		b.wrap(st.text.Render, h.Description, "")
		b.blank()
		b.line(ctaLine(st, h.CTAs))

	case site.SectionAbout:
		a := s.About
		b.titleRow(a.Title)
		b.heading(a.StoryTitle)
		for _, p := range a.StoryParagraphs {
			b.wrap(st.text.Render, p, "")
			b.blank()
		}
		b.heading(a.WorkTitle)
		for _, p := range a.WorkParagraphs {
			b.wrap(st.text.Render, p, "")
			b.blank()
		}
		if len(s.Skills.Software) > 0 || len(s.Skills.Other) > 0 {
			b.heading("Skills")
			b.wrap(st.text.Render, joinList("Software", s.Skills.Software), "")
			b.wrap(st.text.Render, joinList("Other", s.Skills.Other), "")
		}
		if t := s.Targets; t != nil && len(t.Items) > 0 {
			b.heading(t.Title)
			for _, r := range t.Items {
				b.line(st.accent.Render(r.Title))
				b.bullets(r.Bullets)
			}
		}

	case site.SectionProjects:
		p := s.Projects
		b.titleRow(p.Title)
		b.wrap(st.muted.Render, p.Intro, "")
		if hl := s.Highlights; hl != nil && len(hl.Items) > 0 {
			b.heading(hl.Title)
			for _, it := range hl.Items {
				b.line(st.accent.Render(it.Title))
				b.bullets(it.Bullets)
			}
		}
		b.blank()
		lines := projectLines(st, p.Items, b.width-2)
		b.pane("projects-list", lines, min(len(lines), paneHeight))

	case site.SectionExperience:
		e := s.Experience
		b.titleRow(e.Title)
		for _, j := range e.Items {
			b.blank()
			b.line(st.heading.Render(j.Role) + st.muted.Render(" · "+j.Company))
			if j.Dates != "" {
				b.line(st.muted.Render(j.Dates))
			}
			b.bullets(j.Bullets)
		}

	case site.SectionEducation:
		e := s.Education
		b.titleRow(e.Title)
		for _, sc := range e.Items {
			b.blank()
			b.line(st.heading.Render(sc.School))
			b.line(st.text.Render(sc.Program) + st.muted.Render(dateSuffix(sc.Dates)))
			b.bullets(sc.Highlights)
		}

	case site.SectionLicenses:
		l := s.Licenses
		b.titleRow(l.Title)
		b.wrap(st.muted.Render, l.Intro, "")
		b.blank()
		lines := licenseLines(st, l.Items, b.width-2)
		// Rendered twice back to back so the marquee can wrap at the midpoint.
		looped := append(append([]string(nil), lines...), lines...)
		b.pane("licenses-marquee", looped, min(len(lines), paneHeight), attrMarquee)

	case site.SectionInterest:
		in := s.Interests
		b.titleRow(in.Title)
		b.wrap(st.muted.Render, in.Intro, "")
		for _, it := range in.Items {
			b.blank()
			label := it.Title
			if it.Icon != "" {
				label = it.Icon + " " + label
			}
			b.line(st.heading.Render(label))
			b.wrap(st.text.Render, it.Description, "")
			if it.LinkURL != "" {
				b.line(st.accent.Render(linkLabel(it.LinkLabel, it.LinkURL)))
			}
		}

	case site.SectionContact:
		c := s.Contact
		b.titleRow(c.Title)
		b.wrap(st.muted.Render, c.Intro, "")
		b.heading(c.FormTitle)
		field := func(k, v string) {
			if v != "" {
				b.line(st.muted.Render(fmt.Sprintf("%-9s", k)) + st.text.Render(v))
			}
		}
		field("Email", c.Email)
		field("Phone", c.Phone)
		field("Location", c.Location)
		b.blank()
		field("LinkedIn", site.NormalizeExternalURL(s.Socials.LinkedIn))
		field("GitHub", site.NormalizeExternalURL(s.Socials.GitHub))
		field("Ko-fi", site.NormalizeExternalURL(s.Socials.Kofi))
		field("Coffee", site.NormalizeExternalURL(s.Socials.BuyMeACoffee))
	}
}

func ctaLine(st styles, ctas site.CTAs) string {
	var parts []string
	for _, c := range []site.CTA{ctas.Primary, ctas.Secondary} {
		if c.Label == "" {
			continue
		}
		dest := site.NormalizeExternalURL(c.Target)
		if id, ok := site.SectionTarget(c.Target); ok {
			dest = "#" + id
		}
		parts = append(parts, st.accent.Render("[ "+c.Label+" ]")+st.muted.Render(" "+dest))
	}
	return strings.Join(parts, "   ")
}

func projectLines(st styles, items []site.Project, width int) []string {
	var lines []string
	for i, p := range items {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.heading.Render("▸ "+p.Title))
		for _, l := range strings.Split(ansi.Wordwrap(p.Description, max(width-2, 10), ""), "\n") {
			lines = append(lines, "  "+st.text.Render(l))
		}
		if len(p.Technologies) > 0 {
			lines = append(lines, "  "+st.accent.Render(strings.Join(p.Technologies, " · ")))
		}
		if p.GithubURL != "" {
			lines = append(lines, "  "+st.muted.Render("code  "+site.NormalizeExternalURL(p.GithubURL)))
		}
		if p.DemoURL != "" {
			lines = append(lines, "  "+st.muted.Render("demo  "+site.NormalizeExternalURL(p.DemoURL)))
		}
	}
	return lines
}

func licenseLines(st styles, items []site.License, width int) []string {
	var lines []string
	for _, l := range items {
		lines = append(lines, ansi.Truncate(st.heading.Render("◆ "+l.Title), width, "…"))
		meta := l.Issuer + dateSuffix(l.Issued)
		lines = append(lines, "  "+st.muted.Render(meta))
		if l.CredentialID != "" {
			lines = append(lines, "  "+st.muted.Render("ID "+l.CredentialID))
		}
		lines = append(lines, "")
	}
	return lines
}

func joinList(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return label + ": " + strings.Join(items, " · ")
}

func dateSuffix(d string) string {
	if d == "" {
		return ""
	}
	return " · " + d
}

func linkLabel(label, url string) string {
	url = site.NormalizeExternalURL(url)
	if label == "" {
		return "→ " + url
	}
	return "→ " + label + "  " + url
}
