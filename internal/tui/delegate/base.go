// Package delegate provides a list.ItemDelegate built from a render function.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list item.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Option adjusts a Base delegate.
type Option func(*Base)

// WithSpacing sets the blank lines between items.
func WithSpacing(n int) Option {
	return func(d *Base) { d.spacing = n }
}

// WithHeight sets the lines each item occupies.
func WithHeight(n int) Option {
	return func(d *Base) { d.height = n }
}

// Base is a delegate with fixed height and spacing and no update logic.
type Base struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// New creates a delegate with height 1 and no spacing unless overridden.
func New(renderFn RenderFunc, opts ...Option) Base {
	d := Base{height: 1, renderFn: renderFn}
	for _, o := range opts {
		o(&d)
	}
	return d
}

// Height implements list.ItemDelegate
func (d Base) Height() int {
	return d.height
}

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int {
	return d.spacing
}

// Update implements list.ItemDelegate
func (d Base) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
