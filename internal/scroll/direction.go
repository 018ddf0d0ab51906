package scroll

// Direction is the signed scroll direction.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// DirectionTracker keeps the last committed direction. A single unit of movement
// flips it, but repeating the same sign never reports a change.
type DirectionTracker struct {
	lastY float64
	sign  Direction
}

// NewDirectionTracker starts moving down from y.
func NewDirectionTracker(y float64) DirectionTracker {
	return DirectionTracker{lastY: y, sign: Down}
}

// Observe records y and reports whether the committed direction changed.
func (t *DirectionTracker) Observe(y float64) bool {
	if y == t.lastY {
		return false
	}
	next := Down
	if y < t.lastY {
		next = Up
	}
	t.lastY = y
	if next == t.sign {
		return false
	}
	t.sign = next
	return true
}

func (t *DirectionTracker) Direction() Direction { return t.sign }
func (t *DirectionTracker) LastY() float64       { return t.lastY }
