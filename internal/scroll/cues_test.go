package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var cueBounds = []Bounds{
	{Top: 0, Bottom: 800, Height: 800},
	{Top: 800, Bottom: 2000, Height: 1200},
}

func TestCuesShowNextOnlyWhenMovingDown(t *testing.T) {
	s := newFakeScheduler()
	c := newCueController(s, 900*time.Millisecond)

	c.Update(Down, cueBounds, 400, 1200)
	assert.Equal(t, CueVisibility{ShowNext: true}, c.Visibility())
	assert.True(t, c.Shown())

	c.Update(Up, cueBounds, 400, 1200)
	assert.Equal(t, CueVisibility{ShowPrev: true}, c.Visibility())
	assert.True(t, c.Shown())
}

func TestCuesAutoHideAfterQuietPeriod(t *testing.T) {
	s := newFakeScheduler()
	c := newCueController(s, 900*time.Millisecond)

	c.Update(Down, cueBounds, 400, 1200)
	s.Advance(899 * time.Millisecond)
	assert.True(t, c.Shown())

	c.Update(Down, cueBounds, 410, 1210)
	s.Advance(899 * time.Millisecond)
	assert.True(t, c.Shown(), "a new tick re-arms the timer")

	s.Advance(time.Millisecond)
	assert.False(t, c.Shown())
	assert.Equal(t, 0, s.PendingTimers())
}

func TestCuesClearImmediatelyWithoutCandidate(t *testing.T) {
	s := newFakeScheduler()
	c := newCueController(s, 900*time.Millisecond)

	c.Update(Down, cueBounds, 400, 1200)
	assert.Equal(t, 1, s.PendingTimers())

	c.Update(Down, cueBounds, 0, 800)
	assert.False(t, c.Shown())
	assert.Equal(t, CueVisibility{}, c.Visibility())
	assert.Equal(t, 0, s.PendingTimers())

	c.Update(Down, nil, 0, 800)
	assert.False(t, c.Shown())
}
