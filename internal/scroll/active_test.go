package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveActive(t *testing.T) {
	sections := []Section{
		{ID: "home", Bounds: Bounds{Top: 0, Bottom: 800, Height: 800}},
		{ID: "about", Bounds: Bounds{Top: 800, Bottom: 2000, Height: 1200}},
	}

	tests := []struct {
		name    string
		scrollY float64
		current SectionID
		want    SectionID
	}{
		{"scrolled into about", 850, "home", "about"},
		{"back at the top", 0, "about", "home"},
		{"probe past the end keeps current", 5000, "about", "about"},
		{"probe on the boundary belongs to the lower section", 600, "home", "about"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveActive(tt.scrollY+200, sections, tt.current)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveActiveFirstMatchWins(t *testing.T) {
	sections := []Section{
		{ID: "a", Bounds: Bounds{Top: 0, Bottom: 1000, Height: 1000}},
		{ID: "b", Bounds: Bounds{Top: 500, Bottom: 1500, Height: 1000}},
	}
	assert.Equal(t, SectionID("a"), ResolveActive(600, sections, "b"))
}
