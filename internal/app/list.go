package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
	"github.com/blackwell-systems/floractl/internal/tui"
)

func newListCmd() *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"ls", "browse"},
		Short:   "List or search the plant catalog",
		Long: `List catalog plants matching an optional search query and category.

The query matches the name, latin name and description, case-insensitively.
Categories: all, critical, tree, shrub, herb, vine.

On a terminal this opens the interactive browser; use --no-interactive or
--json for plain output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseCategory(category)
			if err != nil {
				return err
			}
			plants, err := loadPlants()
			if err != nil {
				return err
			}
			f := catalog.Filter{Query: strings.Join(args, " "), Category: cat}

			if tui.ShouldUseTUI(cmd) && len(plants) > 0 {
				return tui.RunBrowser(plants, f)
			}

			matched := f.Apply(plants)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeCatalogJSON(out, matched)
			}
			printPlantTable(out, matched)
			fmt.Fprintln(out, color.HiBlackString("%d of %d plants", len(matched), len(plants)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category: all, critical, tree, shrub, herb, vine")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matching plants as JSON")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return categoryNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func categoryNames() []string {
	cats := catalog.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// parseCategory resolves a --category value, suggesting the closest name
// for typos.
func parseCategory(s string) (catalog.Category, error) {
	c, err := catalog.ParseCategory(s)
	if err == nil {
		return c, nil
	}
	if hint := labels.Suggest(s, categoryNames()); hint != "" {
		return "", fmt.Errorf("%w (did you mean %q?)", err, hint)
	}
	return "", err
}

func writeCatalogJSON(w io.Writer, plants []catalog.Plant) error {
	data, err := catalog.Marshal(plants)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func dangerColor(d catalog.DangerLevel) func(format string, a ...interface{}) string {
	switch d {
	case catalog.DangerCritical:
		return color.New(color.FgRed, color.Bold).SprintfFunc()
	case catalog.DangerDangerous:
		return color.New(color.FgHiRed).SprintfFunc()
	case catalog.DangerWatch:
		return color.YellowString
	case catalog.DangerModerate:
		return color.BlueString
	}
	return color.HiBlackString
}

func printPlantTable(w io.Writer, plants []catalog.Plant) {
	if len(plants) == 0 {
		fmt.Fprintln(w, color.YellowString("Растения не найдены"))
		return
	}
	for _, p := range plants {
		fmt.Fprintf(w, "  %-16s %s %s  %s  %s\n",
			p.ID,
			labels.Emoji(p),
			p.Name,
			color.CyanString(p.LatinName),
			dangerColor(p.DangerLevel)("%s", labels.Danger(p.DangerLevel)),
		)
	}
}
