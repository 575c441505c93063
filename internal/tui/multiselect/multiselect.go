// Package multiselect adds checkbox selection on top of a bubbles list.
package multiselect

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectableItem extends list.Item with selection state.
type SelectableItem interface {
	list.Item
	// Key identifies the item across list rebuilds.
	Key() string
	IsSelected() bool
	SetSelected(bool)
}

// Model wraps a bubbles/list.Model with multi-select capabilities.
// Selection order is kept, so SelectedKeys reports keys in the order they
// were picked.
type Model struct {
	List            list.Model
	selected        []string
	showCount       bool
	originalTitle   string
	checkboxChecked string
	checkboxEmpty   string
}

// New creates a new multi-select model wrapping the given list.
func New(l list.Model) Model {
	m := Model{
		List:            l,
		showCount:       true,
		originalTitle:   l.Title,
		checkboxChecked: "[✓] ",
		checkboxEmpty:   "[ ] ",
	}
	m.updateTitle()
	return m
}

// SetCheckboxStyle customizes the checkbox appearance.
func (m *Model) SetCheckboxStyle(checked, empty string) {
	m.checkboxChecked = checked
	m.checkboxEmpty = empty
}

// SetShowCount controls whether selection count appears in title.
func (m *Model) SetShowCount(show bool) {
	m.showCount = show
	m.updateTitle()
}

// Toggle toggles the selection state of the current item and returns its
// key. ok is false when the cursor is not on a selectable item.
func (m *Model) Toggle() (key string, ok bool) {
	item, isSel := m.List.SelectedItem().(SelectableItem)
	if !isSel {
		return "", false
	}
	key = item.Key()
	if m.IsSelected(key) {
		m.remove(key)
	} else {
		m.selected = append(m.selected, key)
	}
	m.rebuildItems()
	m.updateTitle()
	return key, true
}

// Select marks an item as selected by its key.
func (m *Model) Select(key string) {
	if m.IsSelected(key) {
		return
	}
	m.selected = append(m.selected, key)
	m.rebuildItems()
	m.updateTitle()
}

// Deselect marks an item as deselected by its key.
func (m *Model) Deselect(key string) {
	m.remove(key)
	m.rebuildItems()
	m.updateTitle()
}

// ClearSelection removes all selections.
func (m *Model) ClearSelection() {
	m.selected = nil
	m.rebuildItems()
	m.updateTitle()
}

// IsSelected reports whether key is selected.
func (m Model) IsSelected(key string) bool {
	for _, k := range m.selected {
		if k == key {
			return true
		}
	}
	return false
}

// SelectedKeys returns the keys of all selected items in selection order.
func (m Model) SelectedKeys() []string {
	out := make([]string, len(m.selected))
	copy(out, m.selected)
	return out
}

// SelectedCount returns the number of selected items.
func (m Model) SelectedCount() int {
	return len(m.selected)
}

func (m *Model) remove(key string) {
	out := m.selected[:0]
	for _, k := range m.selected {
		if k != key {
			out = append(out, k)
		}
	}
	m.selected = out
}

// rebuildItems pushes the selection state into the list items, which may be
// held by value.
func (m *Model) rebuildItems() {
	items := m.List.Items()
	newItems := make([]list.Item, len(items))
	for i, item := range items {
		if si, ok := item.(SelectableItem); ok {
			si.SetSelected(m.IsSelected(si.Key()))
			newItems[i] = si
		} else {
			newItems[i] = item
		}
	}
	m.List.SetItems(newItems)
}

func (m *Model) updateTitle() {
	if m.showCount {
		m.List.Title = fmt.Sprintf("%s (%d selected)", m.originalTitle, m.SelectedCount())
	} else {
		m.List.Title = m.originalTitle
	}
}

// SetTitle updates the base title (without count).
func (m *Model) SetTitle(title string) {
	m.originalTitle = title
	m.updateTitle()
}

// CheckboxPrefix returns the checkbox prefix for an item. Meant for custom
// item delegates.
func (m *Model) CheckboxPrefix(item SelectableItem) string {
	if item.IsSelected() {
		return m.checkboxChecked
	}
	return m.checkboxEmpty
}

// Update handles messages for the multi-select model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	return m.List.View()
}
