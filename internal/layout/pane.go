package layout

import "math"

// Pane is an internally scrollable container whose rows are Lines.
type Pane struct {
	Node  *Node
	Lines []string
	top   float64
}

// NewPane creates a pane rendered by node.
func NewPane(node *Node, lines []string) *Pane {
	return &Pane{Node: node, Lines: lines}
}

func (p *Pane) ScrollTop() float64    { return p.top }
func (p *Pane) ScrollHeight() float64 { return float64(len(p.Lines)) }
func (p *Pane) ClientHeight() float64 { return float64(p.Node.Height) }

// SetScrollTop clamps y to the scrollable range.
func (p *Pane) SetScrollTop(y float64) {
	maxTop := math.Max(0, p.ScrollHeight()-p.ClientHeight())
	p.top = math.Min(math.Max(y, 0), maxTop)
}

// ScrollBy moves the pane by d rows and reports whether it moved.
func (p *Pane) ScrollBy(d float64) bool {
	before := p.top
	p.SetScrollTop(p.top + d)
	return p.top != before
}

// Row returns the i-th visible row, or "" past the content.
func (p *Pane) Row(i int) string {
	idx := int(p.top) + i
	if i < 0 || idx >= len(p.Lines) {
		return ""
	}
	return p.Lines[idx]
}
