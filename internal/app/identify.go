package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/identify"
	"github.com/blackwell-systems/floractl/internal/labels"
	"github.com/blackwell-systems/floractl/internal/tui"
)

type identifyOutput struct {
	Selections identify.Selections    `json:"selections"`
	Count      int                    `json:"count"`
	Results    []identify.MatchResult `json:"results"`
}

func newIdentifyCmd() *cobra.Command {
	var (
		plantType string
		season    string
		habitat   string
		features  []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "identify",
		Short: "Identify a plant from what you observed",
		Long: `Rank catalog plants against an observation.

Each criterion adds to a plant's score: type 3, season 2 (winter partially
matches plants without a listed flowering season), habitat 2, each feature 1.
At most 6 plants are shown, best first. When only one or two plants match,
the list is padded with recommended plants up to 3.

With no flags on a terminal, runs the step-by-step wizard.

Examples:
  floractl identify --type tree --habitat forest
  floractl identify --season summer --feature white_flowers --feature thorns --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plants, err := loadPlants()
			if err != nil {
				return err
			}

			noCriteria := plantType == "" && season == "" && habitat == "" && len(features) == 0
			if noCriteria && tui.ShouldUseTUI(cmd) {
				sel, results, err := tui.RunWizard(plants)
				if err != nil {
					return err
				}
				if results != nil {
					printResults(cmd.OutOrStdout(), sel, results)
				}
				return nil
			}
			if noCriteria {
				return fmt.Errorf("nothing to match: give at least one of --type, --season, --habitat, --feature")
			}

			sel := identify.Selections{}
			if plantType != "" {
				v, err := checkChoice("type", plantType, plantTypeNames())
				if err != nil {
					return err
				}
				sel = sel.WithType(v)
			}
			if season != "" {
				v, err := checkChoice("season", season, identify.Seasons)
				if err != nil {
					return err
				}
				sel = sel.WithSeason(v)
			}
			if habitat != "" {
				v, err := checkChoice("habitat", habitat, habitatNames())
				if err != nil {
					return err
				}
				sel = sel.WithHabitat(v)
			}
			for _, f := range features {
				if !sel.HasFeature(f) {
					sel = sel.ToggleFeature(f)
				}
			}

			results := identify.Identify(plants, sel)
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(identifyOutput{Selections: sel, Count: len(results), Results: results}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			printResults(out, sel, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&plantType, "type", "", "Growth form: tree, shrub, herb, vine")
	cmd.Flags().StringVar(&season, "season", "", "Flowering season: spring, summer, autumn, winter")
	cmd.Flags().StringVar(&habitat, "habitat", "", "Habitat: wasteland, forest, water, lawn, roadside")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "Observed feature tag (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	complete := func(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	_ = cmd.RegisterFlagCompletionFunc("type", complete(plantTypeNames()))
	_ = cmd.RegisterFlagCompletionFunc("season", complete(identify.Seasons))
	_ = cmd.RegisterFlagCompletionFunc("habitat", complete(habitatNames()))
	return cmd
}

func plantTypeNames() []string {
	out := make([]string, len(catalog.PlantTypes))
	for i, t := range catalog.PlantTypes {
		out[i] = string(t)
	}
	return out
}

func habitatNames() []string {
	out := make([]string, len(catalog.Habitats))
	for i, h := range catalog.Habitats {
		out[i] = string(h)
	}
	return out
}

// checkChoice validates a flag value against its known values.
func checkChoice(flag, value string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if a == v {
			return v, nil
		}
	}
	if hint := labels.Suggest(v, allowed); hint != "" {
		return "", fmt.Errorf("unknown --%s %q (did you mean %q?)", flag, value, hint)
	}
	return "", fmt.Errorf("unknown --%s %q (want one of %s)", flag, value, strings.Join(allowed, ", "))
}

func printResults(w io.Writer, sel identify.Selections, results []identify.MatchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, color.YellowString("Совпадений не найдено. Попробуйте изменить параметры."))
		return
	}
	header(w, "Возможные совпадения (%d)", len(results))
	for i, r := range results {
		p := r.Plant
		fmt.Fprintf(w, "%2d. %s %s  %s  %s\n", i+1, labels.Emoji(p), p.Name,
			color.CyanString(p.LatinName), dangerColor(p.DangerLevel)("%s", labels.Danger(p.DangerLevel)))
		fmt.Fprintf(w, "    %s %s\n",
			color.GreenString("score %d", r.Score),
			color.HiBlackString(strings.Join(r.Matches, ", ")))
	}
	if sel.IsEmpty() {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.HiBlackString("Details: floractl show <id>"))
}
