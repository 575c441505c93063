package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
	"github.com/blackwell-systems/floractl/internal/tui/delegate"
)

type browserKeyMap struct {
	quit    key.Binding
	details key.Binding
	back    key.Binding
	nextCat key.Binding
	prevCat key.Binding
	search  key.Binding
}

var browserKeys = browserKeyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	details: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	nextCat: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next category"),
	),
	prevCat: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "prev category"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
}

// BrowserModel is the catalog browser: category tabs, a search line and the
// filtered plant list, with a details view for the selected plant.
type BrowserModel struct {
	plants    []catalog.Plant
	filter    catalog.Filter
	list      list.Model
	search    textinput.Model
	searching bool
	details   *catalog.Plant
	quitting  bool
	activeCmd string
	width     int
	height    int
}

// NewBrowserModel builds a browser over plants starting on the given
// category and query.
func NewBrowserModel(plants []catalog.Plant, f catalog.Filter) BrowserModel {
	if f.Category == "" {
		f.Category = catalog.CategoryAll
	}

	l := list.New(nil, delegate.New(renderPlantItem), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.PaginationStyle = StyleHelp

	ti := textinput.New()
	ti.Placeholder = "название или латынь"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.SetValue(f.Query)

	m := BrowserModel{
		plants: plants,
		filter: f,
		list:   l,
		search: ti,
	}
	m.refresh()
	return m
}

// Filter returns the active category and query.
func (m BrowserModel) Filter() catalog.Filter {
	return m.filter
}

// Visible returns the plants currently listed.
func (m BrowserModel) Visible() []catalog.Plant {
	items := m.list.Items()
	out := make([]catalog.Plant, 0, len(items))
	for _, it := range items {
		if pi, ok := it.(PlantItem); ok {
			out = append(out, pi.Plant)
		}
	}
	return out
}

// Details returns the plant shown in the details view, or nil.
func (m BrowserModel) Details() *catalog.Plant {
	return m.details
}

func (m *BrowserModel) refresh() {
	m.list.SetItems(plantItems(m.filter.Apply(m.plants)))
	m.list.Select(0)
}

func (m *BrowserModel) cycleCategory(step int) {
	cats := catalog.Categories()
	idx := 0
	for i, c := range cats {
		if c == m.filter.Category {
			idx = i
			break
		}
	}
	idx = (idx + step + len(cats)) % len(cats)
	m.filter.Category = cats[idx]
	m.refresh()
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		// tabs, search line, footer
		const chromeLines = 5
		listHeight := msg.Height - v - chromeLines
		if listHeight < 3 {
			listHeight = 3
		}
		m.list.SetSize(msg.Width-h, listHeight)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.details != nil {
			switch {
			case key.Matches(msg, browserKeys.quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, browserKeys.back):
				m.details = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, browserKeys.quit), msg.String() == "esc":
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, browserKeys.details):
			if item, ok := m.list.SelectedItem().(PlantItem); ok {
				p := item.Plant
				m.details = &p
			}
			return m, nil

		case key.Matches(msg, browserKeys.nextCat):
			m.cycleCategory(1)
			m.activeCmd = "tab"
			return m, HighlightCmd()

		case key.Matches(msg, browserKeys.prevCat):
			m.cycleCategory(-1)
			m.activeCmd = "tab"
			return m, HighlightCmd()

		case key.Matches(msg, browserKeys.search):
			m.searching = true
			m.activeCmd = "/"
			cmd := m.search.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter.Query = ""
		m.refresh()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.filter.Query {
		m.filter.Query = q
		m.refresh()
	}
	return m, cmd
}

func (m BrowserModel) renderTabs() string {
	var parts []string
	for _, c := range catalog.Categories() {
		label := labels.Category(c)
		if c == m.filter.Category {
			parts = append(parts, StyleHighlight.Render("["+label+"]"))
		} else {
			parts = append(parts, StyleHelp.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	if m.details != nil {
		width := m.width - 4
		return RenderWithFooter(RenderDetails(*m.details, width), []ShortcutEntry{
			{Key: "esc", Label: "esc back"},
			{Key: "q", Label: "q quit"},
		}, m.activeCmd)
	}

	var body string
	if len(m.list.Items()) == 0 {
		body = StyleHelp.Render("Растения не найдены")
	} else {
		body = m.list.View()
	}

	count := StyleHelp.Render(fmt.Sprintf("%d из %d", len(m.list.Items()), len(m.plants)))
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.search.View()+"  "+count,
		"",
		body,
	)

	return RenderWithFooter(content, []ShortcutEntry{
		{Key: "tab", Label: "tab category"},
		{Key: "/", Label: "/ search"},
		{Key: "enter", Label: "enter details"},
		{Key: "q", Label: "q quit"},
	}, m.activeCmd)
}

// RunBrowser launches the interactive catalog browser.
func RunBrowser(plants []catalog.Plant, f catalog.Filter) error {
	if len(plants) == 0 {
		return fmt.Errorf("no plants to display")
	}

	p := tea.NewProgram(NewBrowserModel(plants, f), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
