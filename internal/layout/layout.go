// Package layout is a small retained-mode tree of rendered blocks, measured in
// terminal rows. Sections and internally scrollable panes are nodes in it.
package layout

// Node is a block occupying rows [Top, Top+Height) of the document.
type Node struct {
	ID       string
	Top      int
	Height   int
	Parent   *Node
	Children []*Node

	attrs    map[string]bool
	progress float64
}

// NewNode creates a detached node carrying attrs.
func NewNode(id string, top, height int, attrs ...string) *Node {
	n := &Node{ID: id, Top: top, Height: height}
	for _, a := range attrs {
		n.SetAttr(a)
	}
	return n
}

// SetAttr marks the node with attr.
func (n *Node) SetAttr(attr string) {
	if n.attrs == nil {
		n.attrs = make(map[string]bool)
	}
	n.attrs[attr] = true
}

// Has reports whether the node itself carries attr.
func (n *Node) Has(attr string) bool { return n.attrs[attr] }

// Closest returns the nearest node, starting at n and walking up, carrying attr.
func (n *Node) Closest(attr string) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Has(attr) {
			return cur
		}
	}
	return nil
}

// Marked reports whether n or an ancestor carries marker.
func (n *Node) Marked(marker string) bool { return n.Closest(marker) != nil }

// Contains reports whether row y falls inside the node.
func (n *Node) Contains(y int) bool { return y >= n.Top && y < n.Top+n.Height }

func (n *Node) OffsetTop() float64    { return float64(n.Top) }
func (n *Node) OffsetHeight() float64 { return float64(n.Height) }

// SetProgress stores the visibility ratio for the renderer.
func (n *Node) SetProgress(p float64) { n.progress = p }

// Progress is the last visibility ratio written by the scroll engine.
func (n *Node) Progress() float64 { return n.progress }

// Document is the root of the tree plus an id index.
type Document struct {
	Root *Node
	byID map[string]*Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Root: NewNode("", 0, 0), byID: make(map[string]*Node)}
}

// Append attaches child under parent (the root when parent is nil) and grows the
// root to cover it.
func (d *Document) Append(parent, child *Node) *Node {
	if parent == nil {
		parent = d.Root
	}
	child.Parent = parent
	parent.Children = append(parent.Children, child)
	if child.ID != "" {
		d.byID[child.ID] = child
	}
	if end := child.Top + child.Height; end > d.Root.Height {
		d.Root.Height = end
	}
	return child
}

// Find returns the node with id, or nil.
func (d *Document) Find(id string) *Node { return d.byID[id] }

// Height is the total height of the document.
func (d *Document) Height() int { return d.Root.Height }

// HitTest returns the deepest node containing row y, or the root.
func (d *Document) HitTest(y int) *Node {
	cur := d.Root
	for {
		next := (*Node)(nil)
		for _, c := range cur.Children {
			if c.Contains(y) {
				next = c
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}
