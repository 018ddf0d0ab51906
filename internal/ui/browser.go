package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/folio/internal/site"
)

// BrowserSelectedMsg is emitted when a document is picked. Sample is set for the
// built-in document, in which case Path is empty.
type BrowserSelectedMsg struct {
	Path   string
	Sample bool
}

// BrowserCancelledMsg is emitted when the browser is dismissed.
type BrowserCancelledMsg struct{}

type docItem struct {
	name string
	ext  string
}

func (i docItem) Title() string       { return i.name }
func (i docItem) Description() string { return strings.TrimPrefix(i.ext, ".") + " document" }
func (i docItem) FilterValue() string { return i.name }

type sampleItem struct{}

func (sampleItem) Title() string       { return "Sample portfolio" }
func (sampleItem) Description() string { return "built-in example content" }
func (sampleItem) FilterValue() string { return "sample" }

type pathItem struct{}

func (pathItem) Title() string       { return "Open path..." }
func (pathItem) Description() string { return "type the path of a " + site.SupportedExtsList() + " document" }
func (pathItem) FilterValue() string { return "path" }

// BrowserModel lists the content documents in the working directory.
type BrowserModel struct {
	list     list.Model
	input    textinput.Model
	pathMode bool
	err      error
}

// NewBrowser scans the current directory for content documents.
func NewBrowser() BrowserModel {
	entries, err := os.ReadDir(".")
	if err != nil {
		return BrowserModel{err: fmt.Errorf("cannot read directory: %w", err)}
	}

	var docs []docItem
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !site.IsContentExt(ext) {
			continue
		}
		docs = append(docs, docItem{name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())), ext: filepath.Ext(e.Name())})
	}
	sort.Slice(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].name) < strings.ToLower(docs[j].name)
	})

	items := []list.Item{sampleItem{}, pathItem{}}
	for _, d := range docs {
		items = append(items, d)
	}

	st := newStyles("dark")
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.Color(st.pal.accent))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.Color(st.pal.accent))

	l := list.New(items, delegate, 80, 20)
	l.Title = "folio"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.brand

	ti := textinput.New()
	ti.Placeholder = "portfolio.toml"
	ti.CharLimit = 1024
	ti.Width = 60

	return BrowserModel{list: l, input: ti}
}

// HasError returns true if the browser could not be initialized.
func (m BrowserModel) HasError() bool {
	return m.err != nil
}

// Error returns the initialization error, if any.
func (m BrowserModel) Error() error {
	return m.err
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle("folio")
}

func selected(msg BrowserSelectedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func cancelled() tea.Msg { return BrowserCancelledMsg{} }

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.pathMode {
		return m.updatePathInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case sampleItem:
				return m, selected(BrowserSelectedMsg{Sample: true})
			case pathItem:
				m.pathMode = true
				m.input.Focus()
				return m, tea.Batch(textinput.Blink, tea.SetWindowTitle("folio - open path"))
			case docItem:
				return m, selected(BrowserSelectedMsg{Path: item.name + item.ext})
			}
		case "q", "esc", "ctrl+c":
			return m, cancelled
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updatePathInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if path := strings.TrimSpace(m.input.Value()); path != "" {
				return m, selected(BrowserSelectedMsg{Path: path})
			}
		case "esc":
			m.pathMode = false
			m.input.Reset()
			m.input.Blur()
			return m, tea.SetWindowTitle("folio")
		case "ctrl+c":
			return m, cancelled
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	if m.pathMode {
		st := newStyles("dark")
		s := "\n"
		s += "  " + st.brand.Render("folio") + "\n"
		s += "\n"
		s += "  " + st.muted.Render("Document path:") + "\n"
		s += "  " + m.input.View() + "\n"
		s += "\n"
		s += "  " + st.help.Render("enter open  esc back  ctrl+c quit") + "\n"
		return s
	}
	return m.list.View()
}
