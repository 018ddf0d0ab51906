package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content document")

// Load reads and validates the content document at path. The format is taken
// from the file extension.
func Load(path string) (*Site, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("unsupported format %s (supported: %s)", filepath.Ext(path), SupportedExtsList())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content document: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Parse decodes and validates a content document.
func Parse(data []byte, format Format) (*Site, error) {
	var s Site
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &s)
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&s)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields every page needs.
func (s *Site) Validate() error {
	if s.Hero.Title == "" {
		return fmt.Errorf("%w: hero.title is required", ErrInvalid)
	}
	if s.Contact.Title == "" {
		return fmt.Errorf("%w: contact.title is required", ErrInvalid)
	}
	for i, p := range s.Projects.Items {
		if p.Title == "" {
			return fmt.Errorf("%w: projects.items[%d].title is required", ErrInvalid, i)
		}
	}
	return nil
}
