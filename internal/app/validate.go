package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog file for problems",
		Long: `Load the catalog and check that every plant has an id and a name and
that ids are unique. Also reports enum values the label tables don't know,
which still display but fall outside filters and the identifier.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plants, err := catalog.Load(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			facets := catalog.ComputeFacets(plants)
			header(out, "Catalog: %s", cfg.Catalog.Path)
			for _, c := range catalog.Categories() {
				printField(out, labels.Category(c), fmt.Sprintf("%d", facets.Count(c)))
			}
			printField(out, "features", fmt.Sprintf("%d", len(facets.Features)))

			for _, w := range unknownValues(plants) {
				warn("%s", w)
			}

			if err := catalog.Validate(plants); err != nil {
				fmt.Fprintln(out)
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintln(out, color.RedString("✗"), line)
				}
				return fmt.Errorf("catalog %s has problems", cfg.Catalog.Path)
			}
			ok("%d plants, no problems", len(plants))
			return nil
		},
	}
}

// unknownValues lists type, danger and habitat values outside the known sets.
func unknownValues(plants []catalog.Plant) []string {
	knownType := map[catalog.PlantType]bool{}
	for _, t := range catalog.PlantTypes {
		knownType[t] = true
	}
	knownHabitat := map[catalog.Habitat]bool{}
	for _, h := range catalog.Habitats {
		knownHabitat[h] = true
	}

	var out []string
	for _, p := range plants {
		if !knownType[p.Type] {
			out = append(out, fmt.Sprintf("plant %q: unknown type %q", p.ID, p.Type))
		}
		if p.DangerLevel.Rank() == len(catalog.DangerLevels) {
			out = append(out, fmt.Sprintf("plant %q: unknown danger level %q", p.ID, p.DangerLevel))
		}
		if !knownHabitat[p.Habitat] {
			out = append(out, fmt.Sprintf("plant %q: unknown habitat %q", p.ID, p.Habitat))
		}
	}
	return out
}
