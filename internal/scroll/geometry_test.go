package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pageIDs = []SectionID{"home", "about", "projects"}

func TestSampleMeasuresBoundsAndProgress(t *testing.T) {
	v := newFakeView(800, 64, pageIDs, 800, 1200, 1000)
	v.y = 400

	sections := Sample(v, pageIDs)
	require.Len(t, sections, 3)

	assert.Equal(t, Bounds{Top: 800, Bottom: 2000, Height: 1200}, sections[1].Bounds)
	assert.InDelta(t, 0.5, sections[0].Progress, 1e-9)
	assert.InDelta(t, 0.5, sections[1].Progress, 1e-9)
	assert.InDelta(t, 0.0, sections[2].Progress, 1e-9)
	assert.InDelta(t, 0.5, v.elements["about"].progress, 1e-9)
}

func TestSampleSkipsMissingElements(t *testing.T) {
	v := newFakeView(800, 64, pageIDs, 800, 1200, 1000)

	sections := Sample(v, []SectionID{"home", "ghost", "about"})
	require.Len(t, sections, 2)
	assert.Equal(t, SectionID("home"), sections[0].ID)
	assert.Equal(t, SectionID("about"), sections[1].ID)
}

func TestVisibilityOfShortSectionIsFullWhenOnScreen(t *testing.T) {
	b := Bounds{Top: 100, Bottom: 300, Height: 200}
	assert.Equal(t, 1.0, visibility(b, 0, 800))
	assert.Equal(t, 0.0, visibility(Bounds{}, 0, 800))
}

func TestCandidatesPickNearestInsideViewport(t *testing.T) {
	bounds := []Bounds{
		{Top: 0, Bottom: 800, Height: 800},
		{Top: 800, Bottom: 1000, Height: 200},
		{Top: 1000, Bottom: 2000, Height: 1000},
	}

	next, ok := nextCandidate(bounds, 500, 1300)
	require.True(t, ok)
	assert.Equal(t, 800.0, next.Top)

	prev, ok := prevCandidate(bounds, 500, 1300)
	require.True(t, ok)
	assert.Equal(t, 1000.0, prev.Bottom)

	_, ok = nextCandidate(bounds, 0, 800)
	assert.False(t, ok, "a top on the viewport edge is not strictly inside")
}
