package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/site"
	"github.com/olivier-w/folio/internal/ui"
)

// selection is what the user asked to open: a document path or the built-in sample.
type selection struct {
	path   string
	sample bool
}

func loadSelection(sel selection) (*site.Site, string, error) {
	if sel.sample {
		s, err := site.Sample()
		return s, site.SampleName, err
	}

	info, err := os.Stat(sel.path)
	if err != nil {
		return nil, "", err
	}
	if info.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", sel.path)
	}
	if !site.IsContentExt(filepath.Ext(sel.path)) {
		return nil, "", fmt.Errorf("unsupported format %s (supported: %s)", filepath.Ext(sel.path), site.SupportedExtsList())
	}

	s, err := site.Load(sel.path)
	if err != nil {
		return nil, "", err
	}
	return s, filepath.Base(sel.path), nil
}

func buildSiteModel(sel selection, cfg *config.Config) (ui.Model, error) {
	s, name, err := loadSelection(sel)
	if err != nil {
		return ui.Model{}, err
	}
	log.Printf("content loaded: %s (%d sections)", name, len(s.SectionIDs()))
	return ui.New(s, uiOptions(cfg, name)), nil
}

func uiOptions(cfg *config.Config, source string) ui.Options {
	return ui.Options{
		Theme:         cfg.Theme,
		ReducedMotion: cfg.ReducedMotion,
		HeaderRows:    cfg.Scroll.HeaderRows,
		FrameInterval: cfg.Scroll.FrameInterval(),
		Scroll:        cfg.Scroll.Engine(),
		Marquee:       cfg.Marquee.Engine(),
		Source:        source,
	}
}
