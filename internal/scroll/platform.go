package scroll

import "time"

// SectionID identifies one section of the page. Order is fixed at startup.
type SectionID string

// Viewport is the scrollable document the engine reads and drives.
type Viewport interface {
	ScrollY() float64
	ScrollTo(y float64)
	// Height is the visible height of the viewport.
	Height() float64
	// ScrollHeight is the full height of the document.
	ScrollHeight() float64
	// HeaderHeight is the height of the fixed header overlaying the top of the viewport.
	HeaderHeight() float64
	// Element returns the rendered section, or nil when it is not mounted.
	Element(id SectionID) Element
	PrefersReducedMotion() bool
}

// Element is a rendered, block-level section.
type Element interface {
	OffsetTop() float64
	OffsetHeight() float64
	// SetProgress exposes the visibility ratio (0..1) to the view layer.
	SetProgress(p float64)
}

// Region is whatever a raw gesture landed on.
type Region interface {
	// Marked reports whether the region or one of its ancestors carries marker.
	Marked(marker string) bool
}

// Container is an internally scrollable widget driven by a Marquee.
type Container interface {
	ScrollTop() float64
	SetScrollTop(y float64)
	ScrollHeight() float64
	ClientHeight() float64
}

// Handle is a pending timer or animation frame.
type Handle interface {
	Stop()
}

// Scheduler provides the clock, timers and animation frames. Callbacks run on the
// same loop as every other handler.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Handle
	RequestFrame(f func(now time.Time)) Handle
}

func stop(h *Handle) {
	if *h != nil {
		(*h).Stop()
		*h = nil
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
