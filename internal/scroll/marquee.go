package scroll

import "time"

// MarqueeInput is an interaction scoped to the marquee's own container.
type MarqueeInput int

const (
	MarqueePointerDown MarqueeInput = iota
	MarqueePointerUp
	MarqueePointerCancel
	MarqueeWheel
	MarqueeTouchStart
	MarqueeTouchEnd
	MarqueeMouseEnter
	MarqueeMouseLeave
	MarqueeFocus
	MarqueeBlur
)

// Marquee continuously scrolls a container whose content is rendered twice back to
// back, wrapping at half the scroll height so the loop is seamless.
type Marquee struct {
	cfg   MarqueeConfig
	c     Container
	sched Scheduler

	running  bool
	paused   bool
	position float64
	last     time.Time
	hasLast  bool
	frame    Handle
	resume   Handle
}

// NewMarquee creates a stopped marquee over c.
func NewMarquee(cfg MarqueeConfig, c Container, sched Scheduler) *Marquee {
	return &Marquee{cfg: cfg.withDefaults(), c: c, sched: sched}
}

// Start rewinds the container and begins the frame loop. Calling Start on a
// running marquee restarts it.
func (m *Marquee) Start() {
	m.Stop()
	m.running = true
	m.paused = false
	m.hasLast = false
	m.position = 0
	m.c.SetScrollTop(0)
	m.frame = m.sched.RequestFrame(m.step)
}

// Stop releases the frame and any pending resume.
func (m *Marquee) Stop() {
	stop(&m.frame)
	stop(&m.resume)
	m.running = false
}

// Running reports whether the frame loop is scheduled.
func (m *Marquee) Running() bool { return m.running }

// Paused reports whether auto-scrolling is held.
func (m *Marquee) Paused() bool { return m.paused }

// Position is the accumulated, wrapped scroll position.
func (m *Marquee) Position() float64 { return m.position }

// Pause holds the loop and adopts the container's current scroll position, so a
// manual scroll while paused is kept.
func (m *Marquee) Pause() {
	stop(&m.resume)
	m.paused = true
	m.position = m.c.ScrollTop()
}

// Resume continues from the container's current scroll position.
func (m *Marquee) Resume() {
	stop(&m.resume)
	m.position = m.c.ScrollTop()
	m.paused = false
}

// ScheduleResume resumes after the configured delay unless re-armed or paused again.
func (m *Marquee) ScheduleResume() {
	stop(&m.resume)
	m.resume = m.sched.AfterFunc(m.cfg.ResumeDelay, func() {
		m.resume = nil
		m.Resume()
	})
}

// Handle maps an interaction to pause/resume.
func (m *Marquee) Handle(in MarqueeInput) {
	switch in {
	case MarqueePointerDown, MarqueeTouchStart, MarqueeMouseEnter, MarqueeFocus:
		m.Pause()
	case MarqueeWheel:
		m.Pause()
		m.ScheduleResume()
	case MarqueePointerUp, MarqueePointerCancel, MarqueeTouchEnd, MarqueeMouseLeave:
		m.ScheduleResume()
	case MarqueeBlur:
		m.Resume()
	}
}

// LoopPoint is half the container's scroll height.
func (m *Marquee) LoopPoint() float64 {
	return m.c.ScrollHeight() / 2
}

// Advance moves the position by delta seconds of travel. It is a no-op while
// paused or when the content does not overflow.
func (m *Marquee) Advance(delta time.Duration) {
	if m.paused {
		return
	}
	if m.c.ScrollHeight()-m.c.ClientHeight() <= 1 {
		return
	}
	loop := m.LoopPoint()
	if loop <= 1 {
		return
	}
	m.position += delta.Seconds() * m.cfg.Speed
	if m.position >= loop {
		m.position -= loop
	}
	m.c.SetScrollTop(m.position)
}

func (m *Marquee) step(now time.Time) {
	m.frame = nil
	if !m.running {
		return
	}
	if !m.hasLast {
		m.last = now
		m.hasLast = true
	}
	delta := now.Sub(m.last)
	m.last = now
	m.Advance(delta)
	m.frame = m.sched.RequestFrame(m.step)
}
