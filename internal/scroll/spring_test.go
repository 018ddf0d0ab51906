package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpringConvergesWithinBounds(t *testing.T) {
	for _, tc := range []struct{ from, target float64 }{
		{0, 736},
		{1400, 1200},
		{100, 2200},
		{2000, 0},
	} {
		s := NewSpring(DefaultConfig(), tc.from, tc.target, 2200)
		settled := false
		for i := 0; i < 600 && !settled; i++ {
			settled = s.Step(1.0 / 60)
			require.GreaterOrEqual(t, s.Position, 0.0)
			require.LessOrEqual(t, s.Position, 2200.0)
		}
		require.True(t, settled, "spring from %v to %v did not settle", tc.from, tc.target)
		assert.Equal(t, tc.target, s.Position)
		assert.Zero(t, s.Velocity)
	}
}

func TestSpringStepIntegratesVelocityThenPosition(t *testing.T) {
	const k, c, dt = 130.0, 26.0, 1.0 / 60
	s := NewSpring(DefaultConfig(), 0, 736, 2200)

	pos, vel := 0.0, 0.0
	for i := 0; i < 30; i++ {
		accel := -k*(pos-736) - c*vel
		vel += accel * dt
		pos = math.Min(math.Max(pos+vel*dt, 0), 2200)

		require.False(t, s.Step(dt), "settled early at frame %d", i)
		require.InDelta(t, pos, s.Position, 1e-9, "position at frame %d", i)
		require.InDelta(t, vel, s.Velocity, 1e-9, "velocity at frame %d", i)
	}
}

func TestSpringClampsAtTheEdge(t *testing.T) {
	s := NewSpring(DefaultConfig(), 2190, 2200, 2200)
	s.Velocity = 3000
	s.Step(1.0 / 60)
	assert.Equal(t, 2200.0, s.Position)
	assert.Positive(t, s.Velocity)
}

func TestSpringZeroStepDoesNotMove(t *testing.T) {
	s := NewSpring(DefaultConfig(), 300, 736, 2200)
	assert.False(t, s.Step(0))
	assert.Equal(t, 300.0, s.Position)
}

func TestAnimatorClampsTargetAndSettles(t *testing.T) {
	v := newFakeView(800, 64, pageIDs, 800, 1200, 1000)
	s := newFakeScheduler()
	a := NewAnimator(DefaultConfig(), v, s)

	a.Start(99999)
	assert.Equal(t, Animating, a.State())
	assert.Equal(t, 2200.0, a.Target())

	for i := 0; i < 1000 && a.State() == Animating; i++ {
		s.Frame(16 * time.Millisecond)
	}
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 2200.0, v.y)
	assert.Equal(t, 0, s.PendingFrames())
}

func TestAnimatorClampsLongFrameGaps(t *testing.T) {
	v := newFakeView(800, 64, pageIDs, 800, 1200, 1000)
	s := newFakeScheduler()
	a := NewAnimator(DefaultConfig(), v, s)

	a.Start(736)
	s.Frame(16 * time.Millisecond)
	s.Frame(5 * time.Second)

	reference := NewSpring(DefaultConfig(), 0, 736, 2200)
	reference.Step(0)
	reference.Step(0.04)
	assert.InDelta(t, reference.Position, v.y, 1e-9)
	// one 40ms step from rest: v = 130*736*0.04, y = v*0.04
	assert.InDelta(t, 153.088, v.y, 1e-9)
}

func TestAnimatorStartCancelsPreviousSession(t *testing.T) {
	v := newFakeView(800, 64, pageIDs, 800, 1200, 1000)
	s := newFakeScheduler()
	a := NewAnimator(DefaultConfig(), v, s)

	a.Start(736)
	a.Start(1936)
	assert.Equal(t, 1, s.PendingFrames())

	a.Cancel()
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 0, s.PendingFrames())
}
