package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc() (*Document, *Node, *Node) {
	d := NewDocument()
	home := d.Append(nil, NewNode("home", 0, 20))
	licenses := d.Append(nil, NewNode("licenses", 20, 30))
	box := d.Append(licenses, NewNode("licenses-list", 25, 8, "data-no-snap"))
	return d, home, box
}

func TestHitTestReturnsDeepestNode(t *testing.T) {
	d, home, box := buildDoc()

	assert.Same(t, home, d.HitTest(3))
	assert.Same(t, box, d.HitTest(26))
	assert.Equal(t, "licenses", d.HitTest(40).ID)
	assert.Same(t, d.Root, d.HitTest(500))
	assert.Equal(t, 50, d.Height())
}

func TestMarkedWalksAncestors(t *testing.T) {
	d, home, box := buildDoc()
	inner := d.Append(box, NewNode("", 26, 1))

	assert.True(t, inner.Marked("data-no-snap"))
	assert.Same(t, box, inner.Closest("data-no-snap"))
	assert.False(t, home.Marked("data-no-snap"))
	assert.Same(t, box, d.Find("licenses-list"))
}

func TestNodeIsAnElement(t *testing.T) {
	_, home, _ := buildDoc()
	home.SetProgress(0.25)
	assert.Equal(t, 0.25, home.Progress())
	assert.Equal(t, 20.0, home.OffsetHeight())
}

func TestPaneClampsScroll(t *testing.T) {
	p := NewPane(NewNode("p", 0, 3), []string{"a", "b", "c", "d", "e"})

	p.SetScrollTop(10)
	assert.Equal(t, 2.0, p.ScrollTop())
	require.False(t, p.ScrollBy(1))
	require.True(t, p.ScrollBy(-5))
	assert.Zero(t, p.ScrollTop())

	p.SetScrollTop(1.7)
	assert.Equal(t, "b", p.Row(0))
	assert.Equal(t, "d", p.Row(2))
	assert.Equal(t, "", p.Row(9))
}
