package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/identify"
)

func testPlants() []catalog.Plant {
	return []catalog.Plant{
		{
			ID: "heracleum", Name: "Борщевик Сосновского", LatinName: "Heracleum sosnowskyi",
			Type: catalog.TypeHerb, DangerLevel: catalog.DangerCritical, Habitat: catalog.HabitatWasteland,
			FloweringSeason: "июль", Features: []string{"large_leaves", "white_flowers"},
			Description: "Гигантское зонтичное растение.",
		},
		{
			ID: "acer", Name: "Клён ясенелистный", LatinName: "Acer negundo",
			Type: catalog.TypeTree, DangerLevel: catalog.DangerDangerous, Habitat: catalog.HabitatForest,
			FloweringSeason: "апрель", Features: []string{"winged_seeds"},
			ControlMethods: []catalog.ControlMethod{{Type: catalog.ControlMechanical, Name: "Спил"}},
		},
		{
			ID: "robinia", Name: "Робиния", LatinName: "Robinia pseudoacacia",
			Type: catalog.TypeTree, DangerLevel: catalog.DangerModerate, Habitat: catalog.HabitatRoadside,
			FloweringSeason: "май", Features: []string{"thorns", "white_flowers"},
		},
		{
			ID: "echinocystis", Name: "Эхиноцистис", LatinName: "Echinocystis lobata",
			Type: catalog.TypeVine, DangerLevel: catalog.DangerCritical, Habitat: catalog.HabitatWater,
			Features: []string{"spiny_fruit"},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func visibleIDs(m tea.Model) []string {
	return catalog.IDs(m.(BrowserModel).Visible())
}

var windowSize = tea.WindowSizeMsg{Width: 100, Height: 40}

func TestBrowserCategories(t *testing.T) {
	var m tea.Model = NewBrowserModel(testPlants(), catalog.Filter{})
	m = send(m, windowSize)
	assert.Equal(t, []string{"heracleum", "acer", "robinia", "echinocystis"}, visibleIDs(m))

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, catalog.CategoryCritical, m.(BrowserModel).Filter().Category)
	assert.Equal(t, []string{"heracleum", "echinocystis"}, visibleIDs(m))

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, []string{"acer", "robinia"}, visibleIDs(m))

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, catalog.Category(catalog.TypeVine), m.(BrowserModel).Filter().Category)
	assert.Equal(t, []string{"echinocystis"}, visibleIDs(m))
}

func TestBrowserInitialFilter(t *testing.T) {
	m := NewBrowserModel(testPlants(), catalog.Filter{Query: "acer", Category: catalog.CategoryAll})
	assert.Equal(t, []string{"acer"}, catalog.IDs(m.Visible()))
}

func TestBrowserSearch(t *testing.T) {
	var m tea.Model = NewBrowserModel(testPlants(), catalog.Filter{})
	m = send(m, windowSize, keyRunes("/"), keyRunes("robin"))
	assert.Equal(t, []string{"robinia"}, visibleIDs(m))
	assert.Equal(t, "robin", m.(BrowserModel).Filter().Query)

	// q is text while searching
	m = send(m, keyRunes("q"))
	assert.False(t, m.(BrowserModel).quitting)
	assert.Empty(t, visibleIDs(m))
	assert.Contains(t, m.View(), "Растения не найдены")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.(BrowserModel).Filter().Query)
	assert.Len(t, visibleIDs(m), 4)

	m = send(m, keyRunes("/"), keyRunes("клён"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"acer"}, visibleIDs(m))
	assert.False(t, m.(BrowserModel).searching)
}

func TestBrowserDetails(t *testing.T) {
	var m tea.Model = NewBrowserModel(testPlants(), catalog.Filter{})
	m = send(m, windowSize, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	d := m.(BrowserModel).Details()
	require.NotNil(t, d)
	assert.Equal(t, "acer", d.ID)
	view := m.View()
	assert.Contains(t, view, "Acer negundo")
	assert.Contains(t, view, "Опасный вид")
	assert.Contains(t, view, "Спил")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.(BrowserModel).Details())
	assert.False(t, m.(BrowserModel).quitting)

	m = send(m, keyRunes("q"))
	assert.True(t, m.(BrowserModel).quitting)
	assert.Empty(t, m.View())
}

func TestRenderDetailsFallbacks(t *testing.T) {
	out := RenderDetails(testPlants()[3], 80)
	assert.Contains(t, out, "Эхиноцистис")
	assert.Contains(t, out, "Критическая опасность")
	assert.Contains(t, out, "См. фотографии")
	assert.NotContains(t, out, "Цветение")
}

func wizardOf(m tea.Model) WizardModel {
	return m.(WizardModel)
}

func TestWizardFlow(t *testing.T) {
	plants := testPlants()
	var m tea.Model = NewWizardModel(plants)
	m = send(m, windowSize)
	assert.Equal(t, identify.StepType, wizardOf(m).Step())

	// tree, summer, wasteland
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, identify.StepSeason, wizardOf(m).Step())
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, identify.StepFeatures, wizardOf(m).Step())

	sel := wizardOf(m).Selections()
	assert.Equal(t, "tree", sel.Type)
	assert.Equal(t, identify.SeasonSummer, sel.Season)
	assert.Equal(t, "wasteland", sel.Habitat)

	// enter without a feature stays put
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, identify.StepFeatures, wizardOf(m).Step())
	assert.NotEmpty(t, wizardOf(m).hint)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"large_leaves"}, wizardOf(m).Selections().Features)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, identify.StepResults, wizardOf(m).Step())
	want := identify.Identify(plants, wizardOf(m).Selections())
	assert.Equal(t, want, wizardOf(m).Results())
	assert.Equal(t, []string{"heracleum", "acer", "robinia"}, resultIDs(wizardOf(m).Results()))
	assert.Contains(t, m.View(), "Борщевик Сосновского")
}

func resultIDs(rs []identify.MatchResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Plant.ID
	}
	return out
}

func TestWizardBackAndReset(t *testing.T) {
	var m tea.Model = NewWizardModel(testPlants())
	m = send(m, windowSize,
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}, // shrub
		tea.KeyMsg{Type: tea.KeyEnter}, // spring
	)
	require.Equal(t, identify.StepHabitat, wizardOf(m).Step())

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, identify.StepSeason, wizardOf(m).Step())
	assert.Equal(t, "shrub", wizardOf(m).Selections().Type)

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	opt, ok := wizardOf(m).options.SelectedItem().(optionItem)
	require.True(t, ok)
	assert.Equal(t, "shrub", opt.value)

	m = send(m, keyRunes("r"))
	assert.Equal(t, identify.StepType, wizardOf(m).Step())
	assert.True(t, wizardOf(m).Selections().IsEmpty())
	assert.Zero(t, wizardOf(m).features.SelectedCount())
}

func TestWizardQuit(t *testing.T) {
	var m tea.Model = NewWizardModel(testPlants())
	m = send(m, keyRunes("q"))
	assert.True(t, wizardOf(m).quitting)
	assert.Empty(t, m.View())
	assert.Nil(t, wizardOf(m).Results())
}

func TestRenderResults(t *testing.T) {
	assert.Contains(t, RenderResults(nil, 80), "Совпадений не найдено")

	out := RenderResults([]identify.MatchResult{{
		Plant:   testPlants()[2],
		Score:   4,
		Matches: []string{identify.MatchType, identify.FeatureMatch("thorns")},
	}}, 80)
	assert.Contains(t, out, "Робиния")
	assert.Contains(t, out, "совпадение 4")
	assert.Contains(t, out, "тип, thorns")
}

func TestHubItems(t *testing.T) {
	keys := func(ctx HubContext) []string {
		var out []string
		for _, it := range hubItems(ctx) {
			out = append(out, it.(MenuItem).Key)
		}
		return out
	}
	assert.Equal(t, []string{ActionBuild, ActionTheme, ActionQuit}, keys(HubContext{}))
	assert.Equal(t, []string{ActionBrowse, ActionIdentify, ActionBuild, ActionTheme, ActionQuit},
		keys(HubContext{PlantCount: 3}))
	assert.Len(t, keys(HubContext{PlantCount: 3, CriticalCount: 1}), len(menuItems))
}

func TestHubSelect(t *testing.T) {
	var m tea.Model = newHubModel(HubContext{PlantCount: 4, CriticalCount: 2})
	m = send(m, windowSize, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ActionCritical, m.(hubModel).action())

	m = newHubModel(HubContext{PlantCount: 4})
	m = send(m, windowSize, keyRunes("q"))
	assert.Equal(t, ActionQuit, m.(hubModel).action())
}

func TestThemePicker(t *testing.T) {
	var m tea.Model = newThemeModel([]string{"light", "dark"}, "dark")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "dark", m.(themeModel).chosen())

	m = newThemeModel([]string{"light", "dark"}, "light")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.(themeModel).chosen())
	assert.Error(t, m.(themeModel).base.Error())
}
