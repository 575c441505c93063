package multiselect

import (
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	key      string
	selected bool
}

func (i *item) FilterValue() string  { return i.key }
func (i *item) Key() string          { return i.key }
func (i *item) IsSelected() bool     { return i.selected }
func (i *item) SetSelected(sel bool) { i.selected = sel }

type nopDelegate struct{}

func (nopDelegate) Height() int                                  { return 1 }
func (nopDelegate) Spacing() int                                 { return 0 }
func (nopDelegate) Update(tea.Msg, *list.Model) tea.Cmd          { return nil }
func (nopDelegate) Render(io.Writer, list.Model, int, list.Item) {}

func newModel(keys ...string) Model {
	items := make([]list.Item, len(keys))
	for i, k := range keys {
		items[i] = &item{key: k}
	}
	l := list.New(items, nopDelegate{}, 40, 10)
	l.Title = "Features"
	return New(l)
}

func TestToggleKeepsOrder(t *testing.T) {
	m := newModel("thorns", "white_flowers", "large_leaves")

	key, ok := m.Toggle()
	require.True(t, ok)
	assert.Equal(t, "thorns", key)

	m.List.Select(2)
	m.Toggle()
	assert.Equal(t, []string{"thorns", "large_leaves"}, m.SelectedKeys())
	assert.Equal(t, "Features (2 selected)", m.List.Title)

	m.List.Select(0)
	m.Toggle()
	assert.Equal(t, []string{"large_leaves"}, m.SelectedKeys())

	it := m.List.Items()[2].(*item)
	assert.True(t, it.IsSelected())
	assert.Equal(t, "[✓] ", m.CheckboxPrefix(it))
	assert.Equal(t, "[ ] ", m.CheckboxPrefix(m.List.Items()[0].(*item)))
}

func TestSelectDeselectClear(t *testing.T) {
	m := newModel("a", "b")
	m.Select("b")
	m.Select("b")
	assert.Equal(t, 1, m.SelectedCount())

	m.Deselect("b")
	assert.Zero(t, m.SelectedCount())

	m.Select("a")
	m.Select("b")
	m.ClearSelection()
	assert.Empty(t, m.SelectedKeys())
	assert.Equal(t, "Features (0 selected)", m.List.Title)
}

func TestToggleEmptyList(t *testing.T) {
	m := newModel()
	_, ok := m.Toggle()
	assert.False(t, ok)
}

func TestGettersOnCopy(t *testing.T) {
	snapshot := func() Model {
		m := newModel("a", "b", "c")
		m.Select("c")
		m.Select("a")
		return m
	}
	assert.Equal(t, 2, snapshot().SelectedCount())
	assert.Equal(t, []string{"c", "a"}, snapshot().SelectedKeys())
	assert.True(t, snapshot().IsSelected("a"))
	assert.False(t, snapshot().IsSelected("b"))
}
