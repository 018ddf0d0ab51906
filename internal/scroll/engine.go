package scroll

import "math"

// State is the scroll state the view layer reads to highlight navigation.
type State struct {
	Active    SectionID
	Direction Direction
}

// Engine derives the active section, scroll direction and navigation cues from the
// viewport on every scroll tick, and snaps the viewport to section boundaries once
// scrolling settles. It must only be used from the loop that runs its callbacks.
type Engine struct {
	cfg   Config
	view  Viewport
	sched Scheduler
	ids   []SectionID

	active    SectionID
	direction DirectionTracker
	cues      *CueController
	guard     GestureGuard
	animator  *Animator
	snapTimer Handle
	started   bool

	onSnap func(target float64, animated bool)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSnapHook is called whenever a snap is performed.
func WithSnapHook(f func(target float64, animated bool)) Option {
	return func(e *Engine) { e.onSnap = f }
}

// NewEngine creates a stopped engine for the sections in ids order.
func NewEngine(cfg Config, view Viewport, sched Scheduler, ids []SectionID, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:      cfg,
		view:     view,
		sched:    sched,
		ids:      append([]SectionID(nil), ids...),
		cues:     newCueController(sched, cfg.CueHideDelay),
		guard:    newGestureGuard(cfg.SuspendWindow),
		animator: NewAnimator(cfg, view, sched),
	}
	if len(ids) > 0 {
		e.active = ids[0]
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins tracking and runs one scroll tick against the current layout.
// Starting a started engine is a no-op.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	e.direction = NewDirectionTracker(e.view.ScrollY())
	e.HandleScroll()
}

// Stop cancels every pending timer and animation frame. It is safe to call more
// than once.
func (e *Engine) Stop() {
	if !e.started {
		return
	}
	e.started = false
	e.animator.Cancel()
	stop(&e.snapTimer)
	e.cues.stop()
}

// Started reports whether the engine is tracking.
func (e *Engine) Started() bool { return e.started }

// HandleScroll processes one scroll tick: sample geometry, update the active
// section, direction and cues, then re-arm the snap debounce.
func (e *Engine) HandleScroll() {
	if !e.started {
		return
	}
	sections := Sample(e.view, e.ids)
	scrollY := e.view.ScrollY()

	e.active = ResolveActive(scrollY+e.cfg.ProbeOffset, sections, e.active)
	e.direction.Observe(scrollY)

	viewTop := scrollY
	viewBottom := viewTop + e.view.Height()
	e.cues.Update(e.direction.Direction(), boundsOf(sections), viewTop, viewBottom)

	stop(&e.snapTimer)
	e.snapTimer = e.sched.AfterFunc(e.cfg.SnapDelay, func() {
		e.snapTimer = nil
		e.triggerSnap()
	})
}

// HandleResize is a scroll tick driven by a layout change.
func (e *Engine) HandleResize() {
	e.HandleScroll()
}

// HandleGesture records a raw user gesture. Inside a no-snap region it suspends
// snapping; any gesture cancels a running snap so the user is not fought.
func (e *Engine) HandleGesture(kind GestureKind, region Region) {
	if !e.started {
		return
	}
	e.guard.Observe(kind, region, e.sched.Now())
	if e.animator.State() == Animating {
		e.animator.Cancel()
	}
}

// Navigate scrolls to the section id and makes it active immediately. It reports
// false when the engine is stopped or the section is missing.
func (e *Engine) Navigate(id SectionID) bool {
	if !e.started {
		return false
	}
	el := e.view.Element(id)
	if el == nil {
		return false
	}
	e.active = id
	target := el.OffsetTop() - e.view.HeaderHeight()
	e.scrollTo(target)
	return true
}

// Snapping reports whether a snap animation is in flight.
func (e *Engine) Snapping() bool { return e.animator.State() == Animating }

// Suspended reports whether snapping is currently suspended by a gesture.
func (e *Engine) Suspended() bool { return e.guard.Suspended(e.sched.Now()) }

// State returns the active section and direction.
func (e *Engine) State() State {
	return State{Active: e.active, Direction: e.direction.Direction()}
}

// Cues returns the cue flags and whether cues are shown at all.
func (e *Engine) Cues() (CueVisibility, bool) {
	return e.cues.Visibility(), e.cues.Shown()
}

// Sections returns the configured section order.
func (e *Engine) Sections() []SectionID { return e.ids }

func (e *Engine) triggerSnap() {
	if e.Snapping() || e.Suspended() {
		return
	}
	sections := Sample(e.view, e.ids)
	if len(sections) == 0 {
		return
	}
	scrollY := e.view.ScrollY()
	target, ok := SnapTarget(
		e.direction.Direction(),
		boundsOf(sections),
		scrollY,
		e.view.Height(),
		e.view.HeaderHeight(),
		e.cfg.SnapZone,
	)
	if !ok || math.Abs(target-scrollY) < e.cfg.MinSnapDistance {
		return
	}
	e.scrollTo(target)
}

// scrollTo jumps when reduced motion is preferred, otherwise animates.
func (e *Engine) scrollTo(target float64) {
	animated := !e.view.PrefersReducedMotion()
	if animated {
		e.animator.Start(target)
	} else {
		e.animator.Cancel()
		e.view.ScrollTo(clamp(target, 0, MaxScroll(e.view)))
	}
	if e.onSnap != nil {
		e.onSnap(target, animated)
	}
}
