package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/folio/internal/layout"
	"github.com/olivier-w/folio/internal/scroll"
)

// scheduler implements scroll.Scheduler on top of tea.Tick. Callbacks only run from
// Update, so they share the loop with every other handler.
type scheduler struct {
	now     func() time.Time
	frame   time.Duration
	nextID  uint64
	pending map[uint64]func(time.Time)
	queued  []tea.Cmd
}

func newScheduler(frame time.Duration) *scheduler {
	return &scheduler{
		now:     time.Now,
		frame:   frame,
		pending: make(map[uint64]func(time.Time)),
	}
}

type schedHandle struct {
	s  *scheduler
	id uint64
}

func (h schedHandle) Stop() { delete(h.s.pending, h.id) }

func (s *scheduler) Now() time.Time { return s.now() }

func (s *scheduler) AfterFunc(d time.Duration, f func()) scroll.Handle {
	return s.add(d, func(time.Time) { f() })
}

func (s *scheduler) RequestFrame(f func(now time.Time)) scroll.Handle {
	return s.add(s.frame, f)
}

func (s *scheduler) add(d time.Duration, f func(time.Time)) scroll.Handle {
	s.nextID++
	id := s.nextID
	s.pending[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(t time.Time) tea.Msg {
		return scheduledMsg{id: id, at: t}
	}))
	return schedHandle{s: s, id: id}
}

// fire runs the callback for msg and reports whether it was still pending.
func (s *scheduler) fire(msg scheduledMsg) bool {
	f, ok := s.pending[msg.id]
	if !ok {
		return false
	}
	delete(s.pending, msg.id)
	f(msg.at)
	return true
}

// drain returns the ticks registered since the last drain.
func (s *scheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Outstanding is the number of timers and frames that would still fire.
func (s *scheduler) Outstanding() int { return len(s.pending) }

// page is the scrollable document as the scroll engine sees it. Heights are in
// rows; the header overlays the top rows of the viewport.
type page struct {
	doc           *document
	scrollY       float64
	height        int
	header        int
	reducedMotion bool
	scrolled      bool
}

func (p *page) ScrollY() float64 { return p.scrollY }

// ScrollTo clamps y and flags a scroll event when the position changed.
func (p *page) ScrollTo(y float64) {
	y = math.Min(math.Max(y, 0), p.maxScroll())
	if y == p.scrollY {
		return
	}
	p.scrollY = y
	p.scrolled = true
}

func (p *page) ScrollBy(d float64) { p.ScrollTo(p.scrollY + d) }

func (p *page) Height() float64       { return float64(p.height) }
func (p *page) HeaderHeight() float64 { return float64(p.header) }
func (p *page) PrefersReducedMotion() bool {
	return p.reducedMotion
}

func (p *page) ScrollHeight() float64 {
	if p.doc == nil {
		return 0
	}
	return float64(p.doc.Height())
}

func (p *page) Element(id scroll.SectionID) scroll.Element {
	if p.doc == nil {
		return nil
	}
	n := p.doc.Find(string(id))
	if n == nil {
		return nil
	}
	return n
}

func (p *page) maxScroll() float64 {
	return math.Max(0, p.ScrollHeight()-p.Height())
}

// top is the first document row on screen.
func (p *page) top() int { return int(math.Round(p.scrollY)) }

// takeScrolled reports and clears the pending scroll event.
func (p *page) takeScrolled() bool {
	s := p.scrolled
	p.scrolled = false
	return s
}

// hit returns the node under screen row y, or nil over the header.
func (p *page) hit(y int) *layout.Node {
	if p.doc == nil || y < p.header || y >= p.height {
		return nil
	}
	return p.doc.HitTest(p.top() + y)
}

// marqueeBox is the licenses pane as a stable scroll.Container. The document is
// rebuilt on resize and theme changes, so it resolves the pane on every call.
type marqueeBox struct{ p *page }

func (b marqueeBox) pane() *layout.Pane {
	if b.p.doc == nil {
		return nil
	}
	return b.p.doc.marquee
}

func (b marqueeBox) ScrollTop() float64 {
	if pn := b.pane(); pn != nil {
		return pn.ScrollTop()
	}
	return 0
}

func (b marqueeBox) SetScrollTop(y float64) {
	if pn := b.pane(); pn != nil {
		pn.SetScrollTop(y)
	}
}

func (b marqueeBox) ScrollHeight() float64 {
	if pn := b.pane(); pn != nil {
		return pn.ScrollHeight()
	}
	return 0
}

func (b marqueeBox) ClientHeight() float64 {
	if pn := b.pane(); pn != nil {
		return pn.ClientHeight()
	}
	return 0
}
