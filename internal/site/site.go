// Package site renders the catalog as a static website: home, catalog,
// identifier, one details page per plant, and the raw data file.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/identify"
	"github.com/blackwell-systems/floractl/internal/prefs"
	"github.com/blackwell-systems/floractl/internal/util"
)

//go:embed templates/*.html
var tmplFS embed.FS

//go:embed assets
var assetFS embed.FS

var pages = template.Must(template.New("site").Funcs(funcs).ParseFS(tmplFS, "templates/*.html"))

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Чужая флора"

// Options controls a site build.
type Options struct {
	OutDir string
	Title  string
	Theme  string // light or dark; empty means light

	// ImageDir is where relative plant image paths are read from, usually
	// the catalog file's directory. Empty skips copying images.
	ImageDir string
}

// File is one written output file.
type File struct {
	Path   string `json:"path"` // relative to OutDir, slash separated
	SHA256 string `json:"sha256"`
}

// Result lists everything a build wrote, in write order.
type Result struct {
	OutDir string `json:"outDir"`
	Files  []File `json:"files"`
}

// Index returns the absolute path of the home page.
func (r *Result) Index() string {
	return filepath.Join(r.OutDir, "index.html")
}

type pageData struct {
	Title      string
	Theme      string
	Page       string
	Root       string
	Plants     []catalog.Plant
	Plant      catalog.Plant
	Facets     catalog.Facets
	Categories []catalog.Category
	Types      []catalog.PlantType
	Seasons    []string
	Habitats   []catalog.Habitat
}

// Build renders every page for plants into opts.OutDir. Plant ids become
// file names, so an id that is not a plain file name is an error.
func Build(opts Options, plants []catalog.Plant) (*Result, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("no output directory")
	}
	if abs, err := filepath.Abs(opts.OutDir); err == nil {
		opts.OutDir = abs
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Theme != prefs.ThemeDark {
		opts.Theme = prefs.ThemeLight
	}
	for _, p := range plants {
		if !safeID(p.ID) {
			return nil, fmt.Errorf("plant id %q cannot be used as a file name", p.ID)
		}
	}

	b := &builder{outDir: opts.OutDir, res: &Result{OutDir: opts.OutDir}}
	base := pageData{
		Title:      opts.Title,
		Theme:      opts.Theme,
		Plants:     plants,
		Facets:     catalog.ComputeFacets(plants),
		Categories: catalog.Categories(),
		Types:      catalog.PlantTypes,
		Seasons:    identify.Seasons,
		Habitats:   catalog.Habitats,
	}

	for _, name := range []string{"index", "catalog", "identifier"} {
		d := base
		d.Page = name
		if err := b.render(name+".html", name+".html", d); err != nil {
			return nil, err
		}
	}

	for _, p := range plants {
		d := base
		d.Page = "plant"
		d.Root = "../"
		d.Plant = p
		if err := b.render("plant.html", path.Join("plants", p.ID+".html"), d); err != nil {
			return nil, err
		}
	}

	data, err := catalog.Marshal(plants)
	if err != nil {
		return nil, err
	}
	if err := b.write("data.json", data); err != nil {
		return nil, err
	}

	if err := b.copyAssets(); err != nil {
		return nil, err
	}
	if err := b.copyImages(opts.ImageDir, plants); err != nil {
		return nil, err
	}
	return b.res, nil
}

type builder struct {
	outDir string
	res    *Result
}

func (b *builder) render(tmpl, rel string, d pageData) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, tmpl, d); err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	return b.write(rel, buf.Bytes())
}

func (b *builder) write(rel string, data []byte) error {
	sum, err := util.WriteFileAtomic(filepath.Join(b.outDir, filepath.FromSlash(rel)), data, 0644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	b.res.Files = append(b.res.Files, File{Path: rel, SHA256: sum})
	return nil
}

func (b *builder) copyAssets() error {
	return fs.WalkDir(assetFS, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := assetFS.ReadFile(p)
		if err != nil {
			return err
		}
		return b.write(p, data)
	})
}

// copyImages copies every local image referenced by plants from dir into
// the site under the same relative path. Missing sources are left for
// CheckLinks to report.
func (b *builder) copyImages(dir string, plants []catalog.Plant) error {
	if dir == "" {
		return nil
	}
	written := make(map[string]bool, len(b.res.Files))
	for _, f := range b.res.Files {
		written[f.Path] = true
	}
	for _, p := range plants {
		rel, ok := localImage(p.Image)
		if !ok || written[rel] {
			continue
		}
		written[rel] = true

		src := filepath.Join(dir, filepath.FromSlash(rel))
		if info, err := os.Stat(src); err != nil || info.IsDir() {
			continue
		}
		dst := filepath.Join(b.outDir, filepath.FromSlash(rel))
		if err := util.CopyFile(src, dst); err != nil {
			return fmt.Errorf("copying image %s: %w", rel, err)
		}
		sum, err := util.SHA256File(dst)
		if err != nil {
			return err
		}
		b.res.Files = append(b.res.Files, File{Path: rel, SHA256: sum})
	}
	return nil
}

// localImage returns the cleaned site-relative path of an image reference
// that points at a file inside the catalog directory.
func localImage(ref string) (string, bool) {
	p, ok := localTarget(ref)
	if !ok {
		return "", false
	}
	p = path.Clean(p)
	if p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}

func safeID(id string) bool {
	return id != "" && id != "." && id != ".." &&
		!strings.ContainsAny(id, `/\`) && filepath.Base(id) == id
}
