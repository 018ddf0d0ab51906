package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBrowserListsContentDocuments(t *testing.T) {
	restore := chdirTemp(t, map[string]string{
		"me.toml":   "",
		"alt.YAML":  "",
		"notes.txt": "",
	})
	defer restore()

	m := NewBrowser()
	if m.HasError() {
		t.Fatalf("unexpected error: %v", m.Error())
	}

	names := map[string]bool{}
	for _, item := range m.list.Items() {
		if doc, ok := item.(docItem); ok {
			names[doc.name+doc.ext] = true
		}
	}
	if !names["me.toml"] || !names["alt.YAML"] {
		t.Fatalf("expected content documents, got %v", names)
	}
	if names["notes.txt"] {
		t.Fatal("unexpected non-content file")
	}
}

func TestBrowserSampleSelection(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	m := NewBrowser()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	msg, ok := cmd().(BrowserSelectedMsg)
	if !ok || !msg.Sample {
		t.Fatalf("expected sample selection, got %#v", msg)
	}
}

func TestBrowserFileSelection(t *testing.T) {
	restore := chdirTemp(t, map[string]string{"me.toml": ""})
	defer restore()

	m := NewBrowser()
	for i := 0; i < 2; i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = model.(BrowserModel)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	msg, ok := cmd().(BrowserSelectedMsg)
	if !ok || msg.Path != "me.toml" {
		t.Fatalf("expected me.toml, got %#v", msg)
	}
}

func TestBrowserPathSelection(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	m := NewBrowser()
	m.pathMode = true
	m.input.SetValue("content/site.json")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	msg, ok := cmd().(BrowserSelectedMsg)
	if !ok || msg.Path != "content/site.json" {
		t.Fatalf("expected typed path, got %#v", msg)
	}
}

func TestBrowserCancel(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	m := NewBrowser()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(BrowserCancelledMsg); !ok {
		t.Fatalf("expected BrowserCancelledMsg, got %T", cmd())
	}
}

func chdirTemp(t *testing.T, files map[string]string) func() {
	t.Helper()

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir temp dir: %v", err)
	}

	return func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	}
}
