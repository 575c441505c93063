package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/floractl/internal/tui/delegate"
	"github.com/blackwell-systems/floractl/internal/tui/picker"
)

type themeItem struct {
	value   string
	current bool
}

func (t themeItem) FilterValue() string { return t.value }

func renderThemeItem(w io.Writer, m list.Model, index int, item list.Item) {
	t, ok := item.(themeItem)
	if !ok {
		return
	}
	label := t.value
	if t.current {
		label += StyleHelp.Render(" (current)")
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+label))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(label))
	}
}

type themeModel struct {
	base *picker.Base
}

func newThemeModel(themes []string, current string) themeModel {
	items := make([]list.Item, len(themes))
	sel := 0
	for i, th := range themes {
		items[i] = themeItem{value: th, current: th == current}
		if th == current {
			sel = i
		}
	}

	l := list.New(items, delegate.New(renderThemeItem), 30, 8)
	l.Title = "Тема оформления"
	l.Styles.Title = StyleHeader
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Select(sel)

	keys := NewPickerKeys()
	return themeModel{base: picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		BorderStyle: StyleBorder,
		ShowBorder:  true,
	})}
}

func (m themeModel) chosen() string {
	if t, ok := m.base.Chosen().(themeItem); ok {
		return t.value
	}
	return ""
}

func (m themeModel) Init() tea.Cmd { return nil }

func (m themeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.base.Update(msg)
}

func (m themeModel) View() string { return m.base.View() }

// RunThemePicker asks the user to pick one of themes. It returns
// picker.ErrCanceled if the user quits.
func RunThemePicker(themes []string, current string) (string, error) {
	p := tea.NewProgram(newThemeModel(themes, current))
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running theme picker: %w", err)
	}
	fm, ok := finalModel.(themeModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if err := fm.base.Error(); err != nil {
		return "", err
	}
	return fm.chosen(), nil
}
