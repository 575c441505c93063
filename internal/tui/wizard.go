package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/identify"
	"github.com/blackwell-systems/floractl/internal/labels"
	"github.com/blackwell-systems/floractl/internal/tui/delegate"
	"github.com/blackwell-systems/floractl/internal/tui/multiselect"
)

var stepTitles = map[int]string{
	identify.StepType:     "Тип растения",
	identify.StepSeason:   "Время цветения",
	identify.StepHabitat:  "Где растёт",
	identify.StepFeatures: "Особые признаки",
	identify.StepResults:  "Результаты",
}

// optionItem is one choice on the type, season or habitat step.
type optionItem struct {
	value string
	label string
}

func (o optionItem) FilterValue() string { return o.label }

// featureItem is a checkbox on the features step.
type featureItem struct {
	tag      string
	selected bool
}

func (f *featureItem) FilterValue() string  { return f.tag }
func (f *featureItem) Key() string          { return f.tag }
func (f *featureItem) IsSelected() bool     { return f.selected }
func (f *featureItem) SetSelected(sel bool) { f.selected = sel }

func renderOption(w io.Writer, m list.Model, index int, item list.Item) {
	o, ok := item.(optionItem)
	if !ok {
		return
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+o.label))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(o.label))
	}
}

func renderFeature(w io.Writer, m list.Model, index int, item list.Item) {
	f, ok := item.(*featureItem)
	if !ok {
		return
	}
	box := "[ ] "
	if f.selected {
		box = StyleMatch.Render("[✓] ")
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› ")+box+StyleHighlight.Render(f.tag))
	} else {
		_, _ = fmt.Fprint(w, "  "+box+StyleNormal.Render(f.tag))
	}
}

type wizardKeyMap struct {
	quit   key.Binding
	next   key.Binding
	back   key.Binding
	toggle key.Binding
	reset  key.Binding
}

func newWizardKeys() wizardKeyMap {
	std := NewStandardKeys()
	return wizardKeyMap{
		quit:   std.Quit,
		next:   std.Select,
		back:   std.Back,
		toggle: std.Toggle,
		reset:  std.Reset,
	}
}

var wizardKeys = newWizardKeys()

// WizardModel walks the user through the identification steps and shows
// the ranked results.
type WizardModel struct {
	plants   []catalog.Plant
	wizard   identify.Wizard
	options  list.Model
	features multiselect.Model
	bar      progress.Model
	results  []identify.MatchResult
	hint     string
	quitting bool
	width    int
	height   int
}

// NewWizardModel starts a wizard over plants. The features step offers every
// feature tag found in the catalog.
func NewWizardModel(plants []catalog.Plant) WizardModel {
	opts := list.New(nil, delegate.New(renderOption), 40, 10)
	opts.SetShowTitle(false)
	opts.SetShowStatusBar(false)
	opts.SetFilteringEnabled(false)
	opts.SetShowHelp(false)

	tags := catalog.ComputeFacets(plants).Features
	items := make([]list.Item, len(tags))
	for i, t := range tags {
		items[i] = &featureItem{tag: t}
	}
	fl := list.New(items, delegate.New(renderFeature), 40, 12)
	fl.SetShowTitle(false)
	fl.SetShowStatusBar(false)
	fl.SetFilteringEnabled(false)
	fl.SetShowHelp(false)
	ms := multiselect.New(fl)
	ms.SetShowCount(false)

	m := WizardModel{
		plants:   plants,
		wizard:   identify.NewWizard(),
		options:  opts,
		features: ms,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
	}
	m.loadStep()
	return m
}

// Step returns the current wizard step.
func (m WizardModel) Step() int {
	return m.wizard.Step
}

// Selections returns what has been chosen so far.
func (m WizardModel) Selections() identify.Selections {
	return m.wizard.Selections
}

// Results returns the ranked matches once the results step is reached.
func (m WizardModel) Results() []identify.MatchResult {
	return m.results
}

func stepOptions(step int) []optionItem {
	var out []optionItem
	switch step {
	case identify.StepType:
		for _, t := range catalog.PlantTypes {
			out = append(out, optionItem{value: string(t), label: labels.Type(t)})
		}
	case identify.StepSeason:
		for _, s := range identify.Seasons {
			out = append(out, optionItem{value: s, label: labels.Season(s)})
		}
	case identify.StepHabitat:
		for _, h := range catalog.Habitats {
			out = append(out, optionItem{value: string(h), label: labels.Habitat(h)})
		}
	}
	return out
}

func (m WizardModel) currentChoice() string {
	sel := m.wizard.Selections
	switch m.wizard.Step {
	case identify.StepType:
		return sel.Type
	case identify.StepSeason:
		return sel.Season
	case identify.StepHabitat:
		return sel.Habitat
	}
	return ""
}

// loadStep fills the option list for the current step and puts the cursor
// on the previous choice, if any.
func (m *WizardModel) loadStep() {
	m.hint = ""
	opts := stepOptions(m.wizard.Step)
	items := make([]list.Item, len(opts))
	cursor := 0
	for i, o := range opts {
		items[i] = o
		if o.value == m.currentChoice() {
			cursor = i
		}
	}
	m.options.SetItems(items)
	m.options.Select(cursor)

	if m.wizard.Done() {
		m.results = m.wizard.Results(m.plants)
	} else {
		m.results = nil
	}
}

func (m WizardModel) Init() tea.Cmd {
	return nil
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		// title, progress bar, hint and footer
		const chromeLines = 7
		listHeight := msg.Height - v - chromeLines
		if listHeight < 5 {
			listHeight = 5
		}
		m.options.SetSize(msg.Width-h, listHeight)
		m.features.List.SetSize(msg.Width-h, listHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, wizardKeys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, wizardKeys.reset):
			m.wizard = m.wizard.Reset()
			m.features.ClearSelection()
			m.features.List.Select(0)
			m.loadStep()
			return m, nil

		case key.Matches(msg, wizardKeys.back):
			m.wizard = m.wizard.Prev()
			m.loadStep()
			return m, nil
		}

		switch m.wizard.Step {
		case identify.StepType, identify.StepSeason, identify.StepHabitat:
			if key.Matches(msg, wizardKeys.next) {
				if o, ok := m.options.SelectedItem().(optionItem); ok {
					m.wizard = m.wizard.Choose(o.value).Next()
					m.loadStep()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.options, cmd = m.options.Update(msg)
			return m, cmd

		case identify.StepFeatures:
			switch {
			case key.Matches(msg, wizardKeys.toggle):
				if tag, ok := m.features.Toggle(); ok {
					m.wizard = m.wizard.Choose(tag)
					m.hint = ""
				}
				return m, nil
			case key.Matches(msg, wizardKeys.next):
				if !m.wizard.StepComplete() {
					m.hint = "Отметьте хотя бы один признак (пробел)"
					return m, nil
				}
				m.wizard = m.wizard.Next()
				m.loadStep()
				return m, nil
			}
			var cmd tea.Cmd
			m.features, cmd = m.features.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func matchLabel(tag string) string {
	switch tag {
	case identify.MatchType:
		return "тип"
	case identify.MatchSeason:
		return "сезон"
	case identify.MatchSeasonPartial:
		return "сезон (частично)"
	case identify.MatchHabitat:
		return "местообитание"
	case identify.MatchRecommended:
		return "рекомендовано"
	}
	return strings.TrimPrefix(tag, identify.FeatureMatch(""))
}

// RenderResults renders a ranked result list, or the no-match message.
func RenderResults(results []identify.MatchResult, width int) string {
	if len(results) == 0 {
		return StyleHelp.Render("Совпадений не найдено. Попробуйте изменить параметры.")
	}
	if width < 30 {
		width = 30
	}

	var s strings.Builder
	for i, r := range results {
		p := r.Plant
		tags := make([]string, len(r.Matches))
		for j, t := range r.Matches {
			tags[j] = matchLabel(t)
		}
		fmt.Fprintf(&s, "%d. %s %s  %s  %s\n",
			i+1,
			labels.Emoji(p),
			StyleHeader.Render(truncateText(p.Name, width/2)),
			StyleLatin.Render(truncateText(p.LatinName, width/3)),
			DangerStyle(p.DangerLevel).Render(labels.Danger(p.DangerLevel)),
		)
		fmt.Fprintf(&s, "   %s %s\n",
			StyleMatch.Render(fmt.Sprintf("совпадение %d", r.Score)),
			StyleHelp.Render(strings.Join(tags, ", ")),
		)
	}
	return strings.TrimRight(s.String(), "\n")
}

func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}

	step := m.wizard.Step
	title := StyleHeader.Render(stepTitles[step])
	if step < identify.StepResults {
		title = StyleHelp.Render(fmt.Sprintf("Шаг %d из 4 · ", step)) + title
	}
	bar := m.bar.ViewAs(float64(m.wizard.Progress()) / 100)

	var body string
	var shortcuts []ShortcutEntry
	switch step {
	case identify.StepFeatures:
		body = m.features.View() + "\n" + StyleHelp.Render(fmt.Sprintf("Отмечено: %d", m.features.SelectedCount()))
		shortcuts = []ShortcutEntry{
			{Label: "space toggle"}, {Label: "enter results"}, {Label: "backspace back"}, {Label: "r reset"}, {Label: "q quit"},
		}
	case identify.StepResults:
		body = RenderResults(m.results, m.width-4)
		shortcuts = []ShortcutEntry{
			{Label: "backspace back"}, {Label: "r start over"}, {Label: "q quit"},
		}
	default:
		body = m.options.View()
		shortcuts = []ShortcutEntry{
			{Label: "enter choose"}, {Label: "backspace back"}, {Label: "r reset"}, {Label: "q quit"},
		}
	}

	parts := []string{title, bar, "", body}
	if m.hint != "" {
		parts = append(parts, StyleHighlight.Render(m.hint))
	}
	return RenderWithFooter(lipgloss.JoinVertical(lipgloss.Left, parts...), shortcuts, "")
}

// RunWizard runs the identification wizard. It returns the final selections
// and, if the user reached the results step, the results shown.
func RunWizard(plants []catalog.Plant) (identify.Selections, []identify.MatchResult, error) {
	p := tea.NewProgram(NewWizardModel(plants), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return identify.Selections{}, nil, fmt.Errorf("running wizard: %w", err)
	}
	fm, ok := finalModel.(WizardModel)
	if !ok {
		return identify.Selections{}, nil, fmt.Errorf("unexpected model type")
	}
	return fm.Selections(), fm.Results(), nil
}
