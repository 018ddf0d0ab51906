package scroll

import "time"

// GestureKind is the raw input that may compete with a running snap.
type GestureKind int

const (
	GestureWheel GestureKind = iota
	GestureTouchStart
	GesturePointerDown
	// GestureKey is keyboard scrolling. It cancels a snap but never suspends.
	GestureKey
)

func (k GestureKind) String() string {
	switch k {
	case GestureWheel:
		return "wheel"
	case GestureTouchStart:
		return "touchstart"
	case GesturePointerDown:
		return "pointerdown"
	case GestureKey:
		return "key"
	}
	return "unknown"
}

// GestureGuard suspends snapping for a while after a gesture inside a no-snap
// region. It is advisory: it never blocks the native scroll.
type GestureGuard struct {
	window time.Duration
	until  time.Time
}

func newGestureGuard(window time.Duration) GestureGuard {
	return GestureGuard{window: window}
}

// Observe opens the suspend window when region carries the no-snap marker and
// reports whether it did.
func (g *GestureGuard) Observe(kind GestureKind, region Region, now time.Time) bool {
	if kind == GestureKey || region == nil || !region.Marked(NoSnapMarker) {
		return false
	}
	g.until = now.Add(g.window)
	return true
}

// Suspended reports whether now is still inside the window.
func (g *GestureGuard) Suspended(now time.Time) bool {
	return now.Before(g.until)
}
