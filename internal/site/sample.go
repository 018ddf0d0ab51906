package site

import (
	_ "embed"
	"fmt"
)

//go:embed sample.toml
var sampleTOML []byte

// SampleName is shown where a document path would be.
const SampleName = "sample portfolio"

// Sample returns the built-in example document.
func Sample() (*Site, error) {
	s, err := Parse(sampleTOML, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("built-in sample: %w", err)
	}
	return s, nil
}
