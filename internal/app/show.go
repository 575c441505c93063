package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/labels"
)

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full description of a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plants, err := loadPlants()
			if err != nil {
				return err
			}
			p, err := findPlant(plants, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			header(out, "%s %s", labels.Emoji(*p), p.Name)
			printField(out, "id", p.ID)
			printField(out, "latin", p.LatinName)
			if p.LocalName != "" {
				printField(out, "local name", p.LocalName)
			}
			printField(out, "type", labels.Type(p.Type))
			printField(out, "danger", dangerColor(p.DangerLevel)("%s", labels.DangerLong(p.DangerLevel)))
			printField(out, "habitat", labels.Habitat(p.Habitat))
			if p.FloweringSeason != "" {
				printField(out, "flowering", p.FloweringSeason)
			}
			if p.Origin != "" {
				printField(out, "origin", p.Origin)
			}
			if len(p.Features) > 0 {
				printField(out, "features", strings.Join(p.Features, ", "))
			}
			if p.Description != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "  "+p.Description)
			}
			if len(p.ControlMethods) > 0 {
				fmt.Fprintln(out)
				header(out, "Методы борьбы")
				for _, c := range p.ControlMethods {
					fmt.Fprintf(out, "  • %s (%s)\n", c.Name, labels.Control(c.Type))
				}
			}
			fmt.Fprintln(out, "  "+labels.ControlDescription(*p))
			fmt.Fprintln(out)
			header(out, "Как распознать")
			fmt.Fprintln(out, "  "+labels.IdentificationTips(*p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plant as JSON")
	return cmd
}

// findPlant looks up a plant by id and suggests the closest id on a miss.
func findPlant(plants []catalog.Plant, id string) (*catalog.Plant, error) {
	if p := catalog.ByID(plants, id); p != nil {
		return p, nil
	}
	if hint := labels.Suggest(id, catalog.IDs(plants)); hint != "" {
		return nil, fmt.Errorf("plant %q not found (did you mean %q?)", id, hint)
	}
	return nil, fmt.Errorf("plant %q not found", id)
}
