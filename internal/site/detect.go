package site

import (
	"path/filepath"
	"strings"
)

// Format is the encoding of a content document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var contentExts = map[string]Format{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// IsContentExt returns true if the extension is a supported content document format.
func IsContentExt(ext string) bool {
	_, ok := contentExts[strings.ToLower(ext)]
	return ok
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, bool) {
	f, ok := contentExts[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// SupportedExtsList returns a human-readable list of supported document formats.
func SupportedExtsList() string {
	return ".toml, .yaml, .yml, .json"
}
