package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/floractl/internal/tui/delegate"
	"github.com/blackwell-systems/floractl/internal/tui/picker"
)

// MenuItem represents an action in the hub menu
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext holds context info to display in the hub
type HubContext struct {
	PlantCount    int
	CriticalCount int
	Theme         string
}

// Hub actions.
const (
	ActionBrowse   = "browse"
	ActionCritical = "critical"
	ActionIdentify = "identify"
	ActionBuild    = "build"
	ActionTheme    = "theme"
	ActionQuit     = "quit"
)

var menuItems = []MenuItem{
	{Key: ActionBrowse, Label: "Каталог", Description: "Browse and search the plant catalog"},
	{Key: ActionCritical, Label: "Критичные виды", Description: "Only species of critical danger"},
	{Key: ActionIdentify, Label: "Определитель", Description: "Identify a plant in four steps"},
	{Key: ActionBuild, Label: "Собрать сайт", Description: "Generate the static atlas pages"},
	{Key: ActionTheme, Label: "Тема", Description: "Switch between light and dark theme"},
	{Key: ActionQuit, Label: "Выход", Description: "Exit floractl"},
}

func hubItems(ctx HubContext) []list.Item {
	var items []list.Item
	for _, item := range menuItems {
		if ctx.PlantCount == 0 && (item.Key == ActionBrowse || item.Key == ActionIdentify) {
			continue
		}
		if ctx.CriticalCount == 0 && item.Key == ActionCritical {
			continue
		}
		items = append(items, item)
	}
	return items
}

// renderMenuItem renders a menu item in the hub
func renderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	display := fmt.Sprintf("%-18s %s", menuItem.Label, StyleHelp.Render(menuItem.Description))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type hubModel struct {
	base    *picker.Base
	context HubContext
}

func newHubModel(ctx HubContext) hubModel {
	keys := NewPickerKeys()

	l := list.New(hubItems(ctx), delegate.New(renderMenuItem, delegate.WithSpacing(1)), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}

	return hubModel{
		context: ctx,
		base: picker.New(picker.Config{
			List:         l,
			QuitKeys:     keys.Quit,
			SelectKeys:   keys.Select,
			OnWindowSize: hubListSize,
		}),
	}
}

// hubListSize accounts for outer padding, inner padding, border and header.
func hubListSize(width, height int) (int, int) {
	const outerPaddingH = 4 * 2
	const outerPaddingV = 2 * 2
	const innerPaddingH = 1 + 2
	const headerLines = 4
	h, v := StyleBorder.GetFrameSize()

	listWidth := width - outerPaddingH - innerPaddingH - h
	listHeight := height - outerPaddingV - v - headerLines
	if listWidth < 40 {
		listWidth = 40
	}
	if listHeight < 5 {
		listHeight = 5
	}
	return listWidth, listHeight
}

// action returns the chosen menu key; quitting without a choice is ActionQuit.
func (m hubModel) action() string {
	if item, ok := m.base.Chosen().(MenuItem); ok {
		return item.Key
	}
	return ActionQuit
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.base.Update(msg)
}

func (m hubModel) View() string {
	if m.base.IsQuitting() {
		return ""
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("70")).
		Padding(0, 1).
		Render("floractl - Атлас инвазивных растений")

	parts := []string{header}
	if m.context.PlantCount > 0 {
		status := fmt.Sprintf("  %d видов · %d критичных", m.context.PlantCount, m.context.CriticalCount)
		if m.context.Theme != "" {
			status += " · тема: " + m.context.Theme
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(status))
	}
	parts = append(parts, m.base.View())

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(content)))
}

// RunHub launches the interactive hub menu and returns the selected action.
func RunHub(ctx HubContext) (string, error) {
	p := tea.NewProgram(newHubModel(ctx), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if err := fm.base.Error(); err != nil && !errors.Is(err, picker.ErrCanceled) {
		return "", err
	}
	return fm.action(), nil
}
