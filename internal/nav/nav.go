// Package nav holds the ordered navigation items. The order is the single source
// of truth for the header, the scroll tracker and the scroll engine.
package nav

import (
	"github.com/olivier-w/folio/internal/scroll"
	"github.com/olivier-w/folio/internal/site"
)

// Item is one navigation entry.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// List is an ordered, immutable list of items.
type List struct {
	items []Item
}

// New creates a List from items. The slice is copied.
func New(items []Item) List {
	return List{items: append([]Item(nil), items...)}
}

// FromSite lists the sections present in s.
func FromSite(s *site.Site) List {
	ids := s.SectionIDs()
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: site.Labels[id]}
	}
	return List{items: items}
}

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// At returns the item at i.
func (l List) At(i int) Item { return l.items[i] }

// Items returns a copy of the items.
func (l List) Items() []Item { return append([]Item(nil), l.items...) }

// Index returns the position of id, or -1.
func (l List) Index(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Prev returns the item before id. An unknown id counts as the first item.
func (l List) Prev(id string) (Item, bool) {
	i := max(0, l.Index(id))
	if i == 0 {
		return Item{}, false
	}
	return l.items[i-1], true
}

// Next returns the item after id. An unknown id counts as the first item.
func (l List) Next(id string) (Item, bool) {
	i := max(0, l.Index(id))
	if i+1 >= len(l.items) {
		return Item{}, false
	}
	return l.items[i+1], true
}

// SectionIDs converts the order for the scroll engine.
func (l List) SectionIDs() []scroll.SectionID {
	out := make([]scroll.SectionID, len(l.items))
	for i, it := range l.items {
		out[i] = scroll.SectionID(it.ID)
	}
	return out
}
