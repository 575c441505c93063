package picker

import (
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type choice string

func (c choice) FilterValue() string { return string(c) }

type nopDelegate struct{}

func (nopDelegate) Height() int                                  { return 1 }
func (nopDelegate) Spacing() int                                 { return 0 }
func (nopDelegate) Update(tea.Msg, *list.Model) tea.Cmd          { return nil }
func (nopDelegate) Render(io.Writer, list.Model, int, list.Item) {}

func newBase(onSelect SelectHandler) *Base {
	l := list.New([]list.Item{choice("light"), choice("dark")}, nopDelegate{}, 20, 10)
	return New(Config{
		List:       l,
		QuitKeys:   key.NewBinding(key.WithKeys("q", "esc")),
		SelectKeys: key.NewBinding(key.WithKeys("enter")),
		OnSelect:   onSelect,
	})
}

func TestSelect(t *testing.T) {
	b := newBase(nil)
	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.True(t, b.IsQuitting())
	assert.NoError(t, b.Error())
	assert.Equal(t, choice("dark"), b.Chosen())
	assert.Empty(t, b.View())
}

func TestSelectRejected(t *testing.T) {
	b := newBase(func(list.Item) bool { return false })
	cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, b.IsQuitting())
	assert.Nil(t, b.Chosen())
}

func TestQuit(t *testing.T) {
	b := newBase(nil)
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, b.IsQuitting())
	assert.ErrorIs(t, b.Error(), ErrCanceled)
	assert.Nil(t, b.Chosen())
}
