package scroll

import (
	"math"
	"time"
)

// Spring integrates a damped spring toward Target, clamping Position to [0, Max].
type Spring struct {
	Position float64
	Velocity float64
	Target   float64
	Max      float64

	stiffness      float64
	damping        float64
	settleDistance float64
	settleSpeed    float64
}

// NewSpring creates a unit-mass spring at rest at from.
func NewSpring(cfg Config, from, target, maxScroll float64) Spring {
	cfg = cfg.withDefaults()
	return Spring{
		Position:       from,
		Target:         target,
		Max:            maxScroll,
		stiffness:      cfg.Stiffness,
		damping:        cfg.Damping,
		settleDistance: cfg.SettleDistance,
		settleSpeed:    cfg.SettleSpeed,
	}
}

// Step advances the spring by dt seconds (semi-implicit Euler: velocity first,
// then position from the new velocity) and reports whether it settled. A settled
// spring sits exactly on Target.
func (s *Spring) Step(dt float64) bool {
	if dt > 0 {
		accel := -s.stiffness*(s.Position-s.Target) - s.damping*s.Velocity
		s.Velocity += accel * dt
		s.Position += s.Velocity * dt
	}
	s.Position = clamp(s.Position, 0, s.Max)

	if math.Abs(s.Target-s.Position) < s.settleDistance && math.Abs(s.Velocity) < s.settleSpeed {
		s.Position = s.Target
		s.Velocity = 0
		return true
	}
	return false
}

// AnimState is the animator's state.
type AnimState int

const (
	Idle AnimState = iota
	Animating
)

func (s AnimState) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Animator owns the viewport scroll position while a snap runs. At most one
// session exists; starting a new one cancels the previous.
type Animator struct {
	cfg   Config
	view  Viewport
	sched Scheduler

	state   AnimState
	spring  Spring
	frame   Handle
	last    time.Time
	hasLast bool
}

// NewAnimator creates an idle animator.
func NewAnimator(cfg Config, view Viewport, sched Scheduler) *Animator {
	return &Animator{cfg: cfg.withDefaults(), view: view, sched: sched}
}

// MaxScroll is the largest reachable scroll position of the viewport.
func MaxScroll(v Viewport) float64 {
	return math.Max(0, v.ScrollHeight()-v.Height())
}

// Start animates from the current scroll position to target, clamped to the
// scrollable range.
func (a *Animator) Start(target float64) {
	a.Cancel()

	maxScroll := MaxScroll(a.view)
	a.spring = NewSpring(a.cfg, a.view.ScrollY(), clamp(target, 0, maxScroll), maxScroll)
	a.state = Animating
	a.hasLast = false
	a.frame = a.sched.RequestFrame(a.tick)
}

// Cancel stops the running session, if any, leaving the scroll position where it is.
func (a *Animator) Cancel() {
	stop(&a.frame)
	a.state = Idle
}

// State reports Idle or Animating.
func (a *Animator) State() AnimState { return a.state }

// Target is the clamped target of the current or last session.
func (a *Animator) Target() float64 { return a.spring.Target }

func (a *Animator) tick(now time.Time) {
	a.frame = nil
	if a.state != Animating {
		return
	}
	if !a.hasLast {
		a.last = now
		a.hasLast = true
	}
	dt := min(now.Sub(a.last), a.cfg.MaxFrameStep)
	a.last = now

	settled := a.spring.Step(dt.Seconds())
	a.view.ScrollTo(a.spring.Position)
	if settled {
		a.state = Idle
		return
	}
	a.frame = a.sched.RequestFrame(a.tick)
}
