package labels_test

import (
	"testing"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

func TestType(t *testing.T) {
	cases := []struct {
		in   catalog.PlantType
		want string
	}{
		{catalog.TypeTree, "Дерево"},
		{catalog.TypeShrub, "Кустарник"},
		{catalog.TypeHerb, "Трава"},
		{catalog.TypeVine, "Лиана"},
		{"cactus", "cactus"},
		{"", ""},
	}
	for _, c := range cases {
		if got := labels.Type(c.in); got != c.want {
			t.Errorf("Type(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDanger(t *testing.T) {
	if got := labels.Danger(catalog.DangerCritical); got != "Критично" {
		t.Errorf("Danger(critical) = %q", got)
	}
	if got := labels.DangerLong(catalog.DangerWatch); got != "Требует наблюдения" {
		t.Errorf("DangerLong(watch) = %q", got)
	}
	if got := labels.Danger("extreme"); got != "extreme" {
		t.Errorf("unknown danger should pass through, got %q", got)
	}
}

func TestDangerClass(t *testing.T) {
	if got := labels.DangerClass(catalog.DangerModerate); got != "badge-moderate" {
		t.Errorf("DangerClass(moderate) = %q", got)
	}
	if got := labels.DangerClass("extreme"); got != "" {
		t.Errorf("DangerClass(unknown) = %q, want empty", got)
	}
}

func TestHabitat(t *testing.T) {
	cases := map[catalog.Habitat]string{
		catalog.HabitatWasteland: "Пустырь",
		catalog.HabitatForest:    "Лес/парк",
		catalog.HabitatWater:     "Берег водоёма",
		catalog.HabitatLawn:      "Газон",
		catalog.HabitatRoadside:  "Обочина",
		"вдоль железной дороги":  "вдоль железной дороги",
	}
	for in, want := range cases {
		if got := labels.Habitat(in); got != want {
			t.Errorf("Habitat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestControl(t *testing.T) {
	if got := labels.ControlClass(catalog.ControlAgro); got != "agro" {
		t.Errorf("ControlClass(agro) = %q", got)
	}
	if got := labels.ControlClass("fire"); got != "" {
		t.Errorf("ControlClass(unknown) = %q", got)
	}
	if got := labels.Control("fire"); got != "fire" {
		t.Errorf("Control(unknown) = %q", got)
	}
}

func TestCategory(t *testing.T) {
	if got := labels.Category(catalog.CategoryAll); got != "Все" {
		t.Errorf("Category(all) = %q", got)
	}
	if got := labels.Category(catalog.Category(catalog.TypeVine)); got != "Лиана" {
		t.Errorf("Category(vine) = %q", got)
	}
}

func TestFallbacks(t *testing.T) {
	p := catalog.Plant{}
	if labels.Emoji(p) != labels.DefaultEmoji {
		t.Error("Emoji fallback not applied")
	}
	if labels.ControlDescription(p) != labels.DefaultControlDescription {
		t.Error("ControlDescription fallback not applied")
	}
	if labels.IdentificationTips(p) != labels.DefaultIdentificationTips {
		t.Error("IdentificationTips fallback not applied")
	}
	p.Emoji = "🌻"
	if labels.Emoji(p) != "🌻" {
		t.Error("Emoji should use the plant's glyph")
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"all", "critical", "tree", "shrub", "herb", "vine"}
	cases := []struct{ in, want string }{
		{"critcal", "critical"},
		{"Shurb", "shrub"},
		{"tre", "tree"},
		{"", ""},
		{"mushroom", ""},
	}
	for _, c := range cases {
		if got := labels.Suggest(c.in, candidates); got != c.want {
			t.Errorf("Suggest(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSuggest_AdjacentSwap(t *testing.T) {
	ids := []string{"acer", "rhus", "heracleum"}
	cases := []struct{ in, want string }{
		{"acre", "acer"},
		{"caer", "acer"},
		{"rhsu", "rhus"},
		{"hreacleum", "heracleum"},
		{"race", ""},
		{"ecra", ""},
	}
	for _, c := range cases {
		if got := labels.Suggest(c.in, ids); got != c.want {
			t.Errorf("Suggest(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
