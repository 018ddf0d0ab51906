package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionTrackerIsStickyOnSign(t *testing.T) {
	tr := NewDirectionTracker(0)
	assert.Equal(t, Down, tr.Direction())

	assert.False(t, tr.Observe(10), "already moving down")
	assert.True(t, tr.Observe(9), "one unit up flips")
	assert.Equal(t, Up, tr.Direction())
	assert.False(t, tr.Observe(3))
	assert.False(t, tr.Observe(3), "no movement")
	assert.True(t, tr.Observe(4))
	assert.Equal(t, Down, tr.Direction())
	assert.Equal(t, 4.0, tr.LastY())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
