// Package picker is a single-choice list with quit and select handling.
package picker

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is recorded when the user quits without choosing.
var ErrCanceled = errors.New("canceled by user")

// SelectHandler is called when an item is selected.
// Return true to quit the picker, false to continue.
type SelectHandler func(selectedItem list.Item) bool

// Config configures a base picker.
type Config struct {
	List list.Model

	QuitKeys   key.Binding
	SelectKeys key.Binding

	OnSelect SelectHandler

	// OnWindowSize returns the list size for a terminal size. When nil the
	// list takes the whole terminal minus the border.
	OnWindowSize func(width, height int) (int, int)

	BorderStyle lipgloss.Style
	ShowBorder  bool
}

// Base provides common picker functionality. Embed it in picker models.
type Base struct {
	config   Config
	list     list.Model
	chosen   list.Item
	quitting bool
	err      error
}

// New creates a new base picker.
func New(cfg Config) *Base {
	return &Base{
		config: cfg,
		list:   cfg.List,
	}
}

// List returns the underlying list model for direct access.
func (b *Base) List() *list.Model {
	return &b.list
}

// IsQuitting returns whether the picker is quitting.
func (b *Base) IsQuitting() bool {
	return b.quitting
}

// Error returns ErrCanceled after a quit key, otherwise nil.
func (b *Base) Error() error {
	return b.err
}

// Chosen returns the item accepted with the select key, or nil.
func (b *Base) Chosen() list.Item {
	return b.chosen
}

// Update handles standard picker updates.
func (b *Base) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.config.QuitKeys):
			b.err = ErrCanceled
			b.quitting = true
			return tea.Quit

		case key.Matches(msg, b.config.SelectKeys):
			item := b.list.SelectedItem()
			if item == nil {
				return nil
			}
			if b.config.OnSelect == nil || b.config.OnSelect(item) {
				b.chosen = item
				b.quitting = true
				return tea.Quit
			}
			return nil
		}

	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		switch {
		case b.config.OnWindowSize != nil:
			w, h = b.config.OnWindowSize(w, h)
		case b.config.ShowBorder:
			fh, fv := b.config.BorderStyle.GetFrameSize()
			w, h = w-fh, h-fv
		}
		b.list.SetSize(w, h)
		return nil
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return cmd
}

// View renders the picker.
func (b *Base) View() string {
	if b.quitting {
		return ""
	}

	view := b.list.View()
	if b.config.ShowBorder {
		return b.config.BorderStyle.Render(view)
	}
	return view
}

// SelectedItem returns the item under the cursor.
func (b *Base) SelectedItem() list.Item {
	return b.list.SelectedItem()
}

// Items returns all list items.
func (b *Base) Items() []list.Item {
	return b.list.Items()
}

// SetItems sets the list items.
func (b *Base) SetItems(items []list.Item) {
	b.list.SetItems(items)
}
