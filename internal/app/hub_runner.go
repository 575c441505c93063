package app

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/prefs"
	"github.com/blackwell-systems/floractl/internal/tui"
)

func buildHubContext(ctx context.Context, plants []catalog.Plant) tui.HubContext {
	facets := catalog.ComputeFacets(plants)
	hc := tui.HubContext{
		PlantCount:    facets.Total,
		CriticalCount: facets.Count(catalog.CategoryCritical),
	}
	if store, err := openPrefs(); err == nil {
		hc.Theme, _ = prefs.Theme(ctx, store)
		_ = store.Close()
	}
	return hc
}

// runHub shows the hub menu, runs the chosen action and returns to the menu
// until the user quits.
func runHub(cmd *cobra.Command) error {
	plants, err := loadPlants()
	if err != nil {
		return err
	}
	if len(plants) == 0 {
		fmt.Println(color.YellowString("⚠ No plants found in %s", cfg.Catalog.Path))
		fmt.Println()
		fmt.Println("Point floractl at a catalog file:")
		fmt.Printf("  %s\n", color.CyanString("floractl --catalog plants.json"))
		fmt.Println()
		fmt.Println("Or set catalog.path in", color.CyanString("~/.config/floractl/config.yml"))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		action, err := tui.RunHub(buildHubContext(ctx, plants))
		if err != nil {
			return err
		}

		switch action {
		case tui.ActionBrowse:
			err = tui.RunBrowser(plants, catalog.Filter{Category: catalog.CategoryAll})
		case tui.ActionCritical:
			err = tui.RunBrowser(plants, catalog.Filter{Category: catalog.CategoryCritical})
		case tui.ActionIdentify:
			_, _, err = tui.RunWizard(plants)
		case tui.ActionBuild:
			var res buildResult
			res, err = buildSite(ctx, plants, cfg.Site.OutDir, cfg.Site.Title)
			if err == nil {
				reportBuild(res)
				return nil
			}
		case tui.ActionTheme:
			var theme string
			theme, err = toggleTheme(ctx)
			if err == nil {
				ok("Theme set to %s", theme)
			}
		case tui.ActionQuit:
			return nil
		default:
			return fmt.Errorf("unknown action: %s", action)
		}
		if err != nil {
			return err
		}
	}
}
