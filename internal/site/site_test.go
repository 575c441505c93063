package site_test

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/site"
	"github.com/blackwell-systems/floractl/internal/util"
)

func testPlants() []catalog.Plant {
	return []catalog.Plant{
		{
			ID:              "heracleum",
			Name:            "Борщевик Сосновского",
			LatinName:       "Heracleum sosnowskyi",
			LocalName:       "Баршчэўнік Сасноўскага",
			Type:            catalog.TypeHerb,
			DangerLevel:     catalog.DangerCritical,
			Habitat:         catalog.HabitatWasteland,
			FloweringSeason: "Лето",
			Features:        []string{"tall", "umbrella"},
			Description:     "Гигантское растение <опасно>",
			ControlMethods: []catalog.ControlMethod{
				{Type: catalog.ControlMechanical, Name: "Скашивание"},
				{Type: catalog.ControlChemical, Name: "Гербициды"},
			},
			ControlDescription: "Срезать до цветения.",
			Emoji:              "🌼",
		},
		{
			ID:          "acer",
			Name:        "Клён ясенелистный",
			LatinName:   "Acer negundo",
			Type:        catalog.TypeTree,
			DangerLevel: catalog.DangerDangerous,
			Habitat:     "вдоль железной дороги",
			Image:       "https://example.org/acer.jpg",
			Features:    []string{"compound_leaves"},
		},
	}
}

func build(t *testing.T, opts site.Options) *site.Result {
	t.Helper()
	if opts.OutDir == "" {
		opts.OutDir = t.TempDir()
	}
	res, err := site.Build(opts, testPlants())
	require.NoError(t, err)
	return res
}

func open(t *testing.T, res *site.Result, rel string) *goquery.Document {
	t.Helper()
	f, err := os.Open(filepath.Join(res.OutDir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func TestBuild_WritesAllFiles(t *testing.T) {
	res := build(t, site.Options{})

	var paths []string
	for _, f := range res.Files {
		paths = append(paths, f.Path)
		sum, err := util.SHA256File(filepath.Join(res.OutDir, filepath.FromSlash(f.Path)))
		require.NoError(t, err)
		assert.Equal(t, sum, f.SHA256, f.Path)
	}
	for _, want := range []string{
		"index.html", "catalog.html", "identifier.html",
		"plants/heracleum.html", "plants/acer.html",
		"data.json", "assets/style.css", "assets/app.js",
	} {
		assert.Contains(t, paths, want)
	}
	assert.Equal(t, filepath.Join(res.OutDir, "index.html"), res.Index())
}

func TestBuild_Theme(t *testing.T) {
	res := build(t, site.Options{Theme: "dark"})
	theme, _ := open(t, res, "index.html").Find("html").Attr("data-theme")
	assert.Equal(t, "dark", theme)

	res = build(t, site.Options{Theme: "sepia"})
	theme, _ = open(t, res, "catalog.html").Find("html").Attr("data-theme")
	assert.Equal(t, "light", theme)
}

func TestBuild_Catalog(t *testing.T) {
	res := build(t, site.Options{Title: "Атлас"})
	doc := open(t, res, "catalog.html")

	assert.Equal(t, "Атлас", doc.Find("title").Text())

	cards := doc.Find("#plantGrid .plant-card")
	require.Equal(t, 2, cards.Length())

	first := cards.First()
	assert.Equal(t, "heracleum", first.AttrOr("data-id", ""))
	assert.Equal(t, "critical", first.AttrOr("data-danger", ""))
	assert.Equal(t, "plants/heracleum.html", first.AttrOr("href", ""))
	assert.Equal(t, "Критично", strings.TrimSpace(first.Find(".danger-badge").Text()))
	assert.True(t, first.Find(".danger-badge").HasClass("badge-critical"))
	assert.Equal(t, "Трава", first.Find(".plant-type").Text())
	assert.Equal(t, "Гигантское растение <опасно>", first.Find(".plant-description").Text())

	second := cards.Eq(1)
	assert.Equal(t, "https://example.org/acer.jpg", second.Find("img").AttrOr("src", ""))
	assert.Contains(t, second.Find(".plant-features").Text(), "вдоль железной дороги")

	var cats []string
	doc.Find(".filter-btn").Each(func(_ int, s *goquery.Selection) {
		cats = append(cats, s.AttrOr("data-category", ""))
	})
	assert.Equal(t, []string{"all", "critical", "tree", "shrub", "herb", "vine"}, cats)
}

func TestBuild_FallbackImage(t *testing.T) {
	res := build(t, site.Options{})
	src := open(t, res, "catalog.html").Find("#plantGrid .plant-card img").First().AttrOr("src", "")

	require.True(t, strings.HasPrefix(src, "data:image/svg+xml,"), src)
	svg, err := url.PathUnescape(strings.TrimPrefix(src, "data:image/svg+xml,"))
	require.NoError(t, err)
	assert.Contains(t, svg, "🌼")

	assert.Contains(t, string(site.FallbackImage(catalog.Plant{})), url.PathEscape("🌿"))
}

func TestBuild_PlantPage(t *testing.T) {
	res := build(t, site.Options{})

	doc := open(t, res, "plants/heracleum.html")
	assert.Equal(t, "Борщевик Сосновского", doc.Find("h1").Text())
	assert.Equal(t, "Баршчэўнік Сасноўскага", doc.Find(".plant-details-local").Text())
	assert.Equal(t, "Критическая опасность", doc.Find(".danger-badge").Text())
	assert.Equal(t, "Пустырь", doc.Find("#habitat").Text())
	assert.Equal(t, "Срезать до цветения.", doc.Find("#control").Text())
	assert.Equal(t, "См. фотографии для точной идентификации.", doc.Find("#tips").Text())

	tags := doc.Find(".method-tag")
	require.Equal(t, 2, tags.Length())
	assert.True(t, tags.First().HasClass("mechanical"))
	assert.True(t, tags.Eq(1).HasClass("chemical"))

	doc = open(t, res, "plants/acer.html")
	assert.Equal(t, 0, doc.Find(".plant-details-local").Length())
	assert.Equal(t, "Комбинирование методов повышает эффективность борьбы.", doc.Find("#control").Text())
}

func TestBuild_Identifier(t *testing.T) {
	res := build(t, site.Options{})
	doc := open(t, res, "identifier.html")

	assert.Equal(t, 5, doc.Find(".step-panel").Length())
	var features []string
	doc.Find("#step4 .option-card").Each(func(_ int, s *goquery.Selection) {
		features = append(features, s.AttrOr("data-value", ""))
	})
	assert.Equal(t, []string{"compound_leaves", "tall", "umbrella"}, features)
	assert.Equal(t, 4, doc.Find("#step2 .option-card").Length())
}

func TestBuild_Index(t *testing.T) {
	res := build(t, site.Options{})
	doc := open(t, res, "index.html")
	assert.Equal(t, "2", doc.Find("#stat-total .stat-value").Text())
	assert.Equal(t, "1", doc.Find("#stat-critical .stat-value").Text())
}

func TestBuild_DataJSON(t *testing.T) {
	res := build(t, site.Options{})
	data, err := os.ReadFile(filepath.Join(res.OutDir, "data.json"))
	require.NoError(t, err)

	var got []catalog.Plant
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "heracleum", got[0].ID)
}

func TestBuild_EmptyCatalog(t *testing.T) {
	res, err := site.Build(site.Options{OutDir: t.TempDir()}, nil)
	require.NoError(t, err)

	doc := open(t, res, "catalog.html")
	assert.Equal(t, 0, doc.Find("#plantGrid .plant-card").Length())

	data, err := os.ReadFile(filepath.Join(res.OutDir, "data.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestBuild_Errors(t *testing.T) {
	_, err := site.Build(site.Options{}, testPlants())
	assert.Error(t, err)

	bad := []catalog.Plant{{ID: "../escape", Name: "x"}}
	_, err = site.Build(site.Options{OutDir: t.TempDir()}, bad)
	assert.Error(t, err)
}

func TestCheckLinks(t *testing.T) {
	res := build(t, site.Options{})

	broken, err := site.CheckLinks(res.OutDir)
	require.NoError(t, err)
	assert.Empty(t, broken)

	require.NoError(t, os.Remove(filepath.Join(res.OutDir, "plants", "acer.html")))
	broken, err = site.CheckLinks(res.OutDir)
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, "catalog.html", broken[0].Page)
	assert.Equal(t, "plants/acer.html", broken[0].Target)
}

func TestBuild_LocalImages(t *testing.T) {
	root := t.TempDir()
	imageDir := filepath.Join(root, "catalog")
	require.NoError(t, os.MkdirAll(filepath.Join(imageDir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(imageDir, "images", "heracleum.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.png"), []byte("secret"), 0o644))

	plants := testPlants()
	plants[0].Image = "images/heracleum.png"
	plants[1].Image = "images/missing.png"
	plants = append(plants, catalog.Plant{ID: "rhus", Name: "Сумах", Image: "../secret.png"})

	res, err := site.Build(site.Options{OutDir: filepath.Join(root, "out"), ImageDir: imageDir}, plants)
	require.NoError(t, err)

	files := map[string]string{}
	for _, f := range res.Files {
		files[f.Path] = f.SHA256
	}
	require.Contains(t, files, "images/heracleum.png")
	sum, err := util.SHA256File(filepath.Join(res.OutDir, "images", "heracleum.png"))
	require.NoError(t, err)
	assert.Equal(t, sum, files["images/heracleum.png"])
	assert.NotContains(t, files, "images/missing.png")
	for p := range files {
		assert.NotContains(t, p, "secret")
	}

	card := open(t, res, "catalog.html").Find(`.plant-card[data-id="heracleum"] img`)
	assert.Equal(t, "images/heracleum.png", card.AttrOr("src", ""))
	img := open(t, res, "plants/heracleum.html").Find(".gallery-main img")
	assert.Equal(t, "../images/heracleum.png", img.AttrOr("src", ""))

	broken, err := site.CheckLinks(res.OutDir)
	require.NoError(t, err)
	var targets []string
	for _, b := range broken {
		targets = append(targets, b.Page+" "+b.Target)
	}
	assert.Contains(t, targets, "catalog.html images/missing.png")
	assert.Contains(t, targets, "plants/acer.html ../images/missing.png")
	assert.NotContains(t, targets, "catalog.html images/heracleum.png")
}

func TestBuild_NoImageDirSkipsCopy(t *testing.T) {
	plants := testPlants()
	plants[0].Image = "images/heracleum.png"
	res, err := site.Build(site.Options{OutDir: t.TempDir()}, plants)
	require.NoError(t, err)
	for _, f := range res.Files {
		assert.NotEqual(t, "images/heracleum.png", f.Path)
	}
}
