package app

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/prefs"
	"github.com/blackwell-systems/floractl/internal/site"
)

type buildResult struct {
	site   *site.Result
	broken []site.BrokenLink
}

func newBuildCmd() *cobra.Command {
	var (
		outDir   string
		title    string
		flagOpen bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the static atlas site",
		Long: `Generate the atlas as static HTML: a home page with statistics, the
filterable catalog, the identifier, and one page per plant. Open index.html
in any browser; the identifier needs 'floractl serve' for its results.

The stored theme preference (see 'floractl theme') sets the initial theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plants, err := loadPlants()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Site.OutDir
			}
			if title == "" {
				title = cfg.Site.Title
			}

			res, err := buildSite(cmd.Context(), plants, outDir, title)
			if err != nil {
				return err
			}
			reportBuild(res)

			indexPath := res.site.Index()
			if flagOpen {
				if err := openBrowser(indexPath); err != nil {
					warn("Could not open browser: %v", err)
					fmt.Printf("\nOpen in browser:\n  file://%s\n", indexPath)
				}
			} else {
				fmt.Printf("\nOpen in browser:\n  file://%s\n", indexPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: site.out_dir)")
	cmd.Flags().StringVar(&title, "title", "", "Site title (default: site.title)")
	cmd.Flags().BoolVar(&flagOpen, "open", false, "Open the generated site in the default browser")
	return cmd
}

// buildSite renders the site with the stored theme and checks its links.
func buildSite(ctx context.Context, plants []catalog.Plant, outDir, title string) (buildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	theme := prefs.ThemeLight
	if store, err := openPrefs(); err == nil {
		theme, _ = prefs.Theme(ctx, store)
		_ = store.Close()
	} else {
		warn("Using light theme: %v", err)
	}

	res, err := site.Build(site.Options{
		OutDir:   outDir,
		Title:    title,
		Theme:    theme,
		ImageDir: filepath.Dir(cfg.Catalog.Path),
	}, plants)
	if err != nil {
		return buildResult{}, fmt.Errorf("building site: %w", err)
	}
	broken, err := site.CheckLinks(res.OutDir)
	if err != nil {
		return buildResult{}, fmt.Errorf("checking links: %w", err)
	}
	return buildResult{site: res, broken: broken}, nil
}

func reportBuild(res buildResult) {
	ok("Generated %d files in %s", len(res.site.Files), res.site.OutDir)
	for _, b := range res.broken {
		warn("Broken link: %s", b)
	}
}

func openBrowser(path string) error {
	var openCmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		openCmd = exec.Command("open", path)
	case "windows":
		openCmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		openCmd = exec.Command("xdg-open", path)
	}
	return openCmd.Start()
}
