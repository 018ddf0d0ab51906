package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/folio/internal/nav"
	"github.com/olivier-w/folio/internal/scroll"
	"github.com/olivier-w/folio/internal/site"
)

const wheelStep = 3

// Options configures a Model.
type Options struct {
	Theme         string
	ReducedMotion bool
	HeaderRows    int
	FrameInterval time.Duration
	Scroll        scroll.Config
	Marquee       scroll.MarqueeConfig
	// Source names the document in the window title.
	Source string
}

// Model is the Bubbletea model for the portfolio page.
type Model struct {
	site  *site.Site
	items nav.List
	opts  Options
	st    styles
	keys  keyMap
	help  help.Model
	brand string
	spans []navSpan

	sched   *scheduler
	page    *page
	engine  *scroll.Engine
	marquee *scroll.Marquee

	width    int
	height   int
	focused  bool
	hovering bool
	pressed  bool
	quitting bool
}

// New creates a Model for s. Nothing is laid out or scheduled until the first
// window size arrives.
func New(s *site.Site, opts Options) Model {
	if opts.HeaderRows < 2 {
		opts.HeaderRows = 2
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}
	items := nav.FromSite(s)
	sched := newScheduler(opts.FrameInterval)
	pg := &page{header: opts.HeaderRows, reducedMotion: opts.ReducedMotion}

	m := Model{
		site:  s,
		items: items,
		opts:  opts,
		st:    newStyles(opts.Theme),
		keys:  newKeyMap(),
		help:  help.New(),
		brand: brandText(s.Hero.Title),
		sched: sched,
		page:  pg,
	}
	m.spans = navSpans(items, m.brand)
	m.engine = scroll.NewEngine(opts.Scroll, pg, sched, items.SectionIDs(),
		scroll.WithSnapHook(func(target float64, animated bool) {
			log.Printf("ui: scroll to row %.0f (animated=%v)", target, animated)
		}),
	)
	if s.Licenses != nil {
		m.marquee = scroll.NewMarquee(opts.Marquee, marqueeBox{p: pg}, sched)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle(m.brand, m.opts.Source))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, tea.Batch(cmd, next.flush())
}

// flush delivers at most one scroll event for everything that moved the page
// while handling the last message, then hands new timers to the runtime.
func (m Model) flush() tea.Cmd {
	if m.page.takeScrolled() {
		m.engine.HandleScroll()
	}
	return m.sched.drain()
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		if !m.engine.Started() {
			m.engine.Start()
			if m.marquee != nil {
				m.marquee.Start()
			}
			log.Printf("ui: started with %d sections", m.items.Len())
		} else {
			m.engine.HandleResize()
		}
		return m, nil

	case scheduledMsg:
		m.sched.fire(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.page.doc == nil {
			return m, nil
		}
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stop()
		log.Printf("ui: stopped")
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Focus):
		m.setFocus(!m.focused)

	case key.Matches(msg, m.keys.Blur):
		m.setFocus(false)

	case key.Matches(msg, m.keys.Theme):
		m.opts.Theme = nextTheme(m.st.pal.name)
		m.st = newStyles(m.opts.Theme)
		m.relayout()
		m.engine.HandleResize()

	case key.Matches(msg, m.keys.Motion):
		m.page.reducedMotion = !m.page.reducedMotion

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		m.engine.HandleResize()

	case key.Matches(msg, m.keys.Next):
		m.follow(1)

	case key.Matches(msg, m.keys.Prev):
		m.follow(-1)

	case key.Matches(msg, m.keys.Jump):
		if i, ok := jumpIndex(msg); ok && i < m.items.Len() {
			m.engine.Navigate(scroll.SectionID(m.items.At(i).ID))
		}

	default:
		d, ok := m.keyDelta(msg)
		if !ok || m.page.doc == nil {
			return m, nil
		}
		m.engine.HandleGesture(scroll.GestureKey, nil)
		if m.focused && m.page.doc.marquee != nil {
			m.page.doc.marquee.ScrollBy(d)
		} else {
			m.page.ScrollBy(d)
		}
	}
	return m, nil
}

// keyDelta is the page movement for a scrolling key.
func (m Model) keyDelta(msg tea.KeyMsg) (float64, bool) {
	pageRows := float64(max(m.page.height-m.page.header, 1))
	switch {
	case key.Matches(msg, m.keys.Down):
		return 1, true
	case key.Matches(msg, m.keys.Up):
		return -1, true
	case key.Matches(msg, m.keys.PageDown):
		return pageRows, true
	case key.Matches(msg, m.keys.PageUp):
		return -pageRows, true
	case key.Matches(msg, m.keys.Top):
		return -m.page.scrollY, true
	case key.Matches(msg, m.keys.Bottom):
		return m.page.maxScroll() - m.page.scrollY, true
	}
	return 0, false
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	node := m.page.hit(msg.Y)
	var region scroll.Region
	if node != nil {
		region = node
	}
	pane := m.page.doc.paneOf(node)
	inMarquee := pane != nil && pane == m.page.doc.marquee && m.marquee != nil

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		m.engine.HandleGesture(scroll.GestureWheel, region)
		d := float64(wheelStep)
		if msg.Button == tea.MouseButtonWheelUp {
			d = -d
		}
		if inMarquee {
			m.marquee.Handle(scroll.MarqueeWheel)
		}
		if pane != nil && pane.ScrollBy(d) {
			break
		}
		m.page.ScrollBy(d)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < m.page.header {
			if id, ok := spanAt(m.spans, msg.X); ok {
				m.engine.Navigate(scroll.SectionID(id))
			}
			break
		}
		m.engine.HandleGesture(scroll.GesturePointerDown, region)
		if inMarquee {
			m.pressed = true
			m.marquee.Handle(scroll.MarqueePointerDown)
		}

	case msg.Action == tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.marquee.Handle(scroll.MarqueePointerUp)
		}
	}

	if inMarquee != m.hovering && m.marquee != nil {
		m.hovering = inMarquee
		if inMarquee {
			m.marquee.Handle(scroll.MarqueeMouseEnter)
		} else {
			m.marquee.Handle(scroll.MarqueeMouseLeave)
		}
	}
	return m
}

func (m *Model) setFocus(focused bool) {
	if m.marquee == nil || focused == m.focused {
		return
	}
	m.focused = focused
	if focused {
		m.marquee.Handle(scroll.MarqueeFocus)
		m.engine.Navigate(site.SectionLicenses)
	} else {
		m.marquee.Handle(scroll.MarqueeBlur)
	}
}

// follow navigates to the section before or after the active one.
func (m *Model) follow(delta int) {
	active := string(m.engine.State().Active)
	it, ok := m.items.Next(active)
	if delta < 0 {
		it, ok = m.items.Prev(active)
	}
	if ok {
		m.engine.Navigate(scroll.SectionID(it.ID))
	}
}

// relayout rebuilds the document for the current size and theme, keeping the
// scroll positions of the page and its panes.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.page.height = max(m.height-m.footerHeight(), m.page.header+1)

	var projectsTop, marqueeTop float64
	if old := m.page.doc; old != nil {
		if old.projects != nil {
			projectsTop = old.projects.ScrollTop()
		}
		if old.marquee != nil {
			marqueeTop = old.marquee.ScrollTop()
		}
	}
	doc := buildDocument(m.site, m.items, m.st, m.width, m.page.height, m.page.header)
	if doc.projects != nil {
		doc.projects.SetScrollTop(projectsTop)
	}
	if doc.marquee != nil {
		doc.marquee.SetScrollTop(marqueeTop)
	}
	m.page.doc = doc
	m.page.ScrollTo(m.page.scrollY)
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

// stop releases every timer and frame. It is safe to call more than once.
func (m Model) stop() {
	m.engine.Stop()
	if m.marquee != nil {
		m.marquee.Stop()
	}
}

// Stop releases the page's timers and animation frames.
func (m Model) Stop() { m.stop() }

// State is the scroll engine's active section and direction.
func (m Model) State() scroll.State { return m.engine.State() }

func (m Model) View() string {
	if m.quitting || m.page.doc == nil {
		return ""
	}
	doc := m.page.doc
	top := m.page.top()
	lines := make([]string, m.page.height)
	for y := range lines {
		lines[y] = m.renderRow(doc, top+y)
	}

	state := m.engine.State()
	lines[0] = renderNav(m.st, m.items, m.brand, string(state.Active), m.width)
	lines[1] = renderTracker(m.st, m.items, state, m.page.reducedMotion, m.width)
	for y := 2; y < m.page.header && y < len(lines); y++ {
		lines[y] = fitLine(m.st, "", m.width)
	}

	if cues, shown := m.engine.Cues(); shown {
		active := string(state.Active)
		if it, ok := m.items.Prev(active); ok && cues.ShowPrev && m.page.header < len(lines) {
			lines[m.page.header] = renderCue(m.st, "▲ Prev:", it.Label, m.width)
		}
		if it, ok := m.items.Next(active); ok && cues.ShowNext {
			lines[len(lines)-1] = renderCue(m.st, "▼ Next:", it.Label, m.width)
		}
	}

	return strings.Join(lines, "\n") + "\n" + margin + m.help.View(m.keys)
}

func (m Model) renderRow(doc *document, i int) string {
	if i < 0 || i >= len(doc.rows) {
		return ""
	}
	r := doc.rows[i]
	switch r.kind {
	case rowTitle:
		style := m.st.title.Foreground(m.st.titleColor(r.node.Progress()))
		return margin + style.Render(doc.titles[r.node.ID])
	case rowPane:
		border := m.st.border
		if m.focused && r.pane == doc.marquee {
			border = m.st.focused
		}
		return margin + border.Render("│ ") + r.pane.Row(r.index)
	}
	return r.text
}

func windowTitle(brand, source string) string {
	if source == "" {
		return brand + " - folio"
	}
	return brand + " - " + source
}
