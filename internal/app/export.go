package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		out      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "export [query]",
		Short: "Export the catalog as a spreadsheet (.xlsx or .csv)",
		Long: `Write catalog plants to a spreadsheet with display labels. The format
follows the extension of --out: .xlsx (default) or .csv. An optional query
and --category narrow the exported plants the same way 'list' does.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseCategory(category)
			if err != nil {
				return err
			}
			plants, err := loadPlants()
			if err != nil {
				return err
			}
			f := catalog.Filter{Category: cat}
			if len(args) == 1 {
				f.Query = args[0]
			}
			matched := f.Apply(plants)

			if err := export.WriteFile(out, matched); err != nil {
				return err
			}
			ok("Exported %d plants to %s", len(matched), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "plants.xlsx", "Output file (.xlsx or .csv)")
	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category: all, critical, tree, shrub, herb, vine")
	return cmd
}
