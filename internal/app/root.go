package app

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/config"
	"github.com/blackwell-systems/floractl/internal/prefs"
	"github.com/blackwell-systems/floractl/internal/tui"
	"github.com/blackwell-systems/floractl/internal/util"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()

	appVersion = "dev"

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagCatalog       string
)

// SetVersion records the build version shown by `floractl version` and the
// health endpoint.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "floractl",
		Short: "Atlas of invasive plants: catalog, identifier and static site",
		Long: `floractl works with a catalog of invasive plant species.

Browse and search the catalog, identify a plant from what you observed,
generate a static atlas site, or serve it with a small JSON API.

Run 'floractl' with no arguments to launch the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runHub(cmd)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/floractl/config.yml)")
	root.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file, JSON or YAML (overrides catalog.path)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagCatalog != "" {
			cfg.Catalog.Path = util.ExpandHome(flagCatalog)
		}

		l, err := cfg.Log.NewLogger()
		if err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
		logger = l
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newIdentifyCmd(),
		newBuildCmd(),
		newServeCmd(),
		newThemeCmd(),
		newExportCmd(),
		newValidateCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// loadPlants reads the configured catalog. Validation problems are logged,
// not fatal; `floractl validate` reports them properly.
func loadPlants() ([]catalog.Plant, error) {
	path := cfg.Catalog.Path
	plants, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", zap.String("path", path), zap.Int("plants", len(plants)))
	if len(plants) == 0 {
		logger.Warn("catalog is empty or missing", zap.String("path", path))
	}
	if err := catalog.Validate(plants); err != nil {
		logger.Warn("catalog has problems", zap.String("path", path), zap.Error(err))
	}
	return plants, nil
}

// openPrefs opens the configured preference store. Callers close it.
func openPrefs() (prefs.Store, error) {
	s, err := prefs.Open(cfg.Prefs.Backend, cfg.Prefs.EffectivePath())
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}
	return s, nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-16s %s\n", color.CyanString(label+":"), value)
}
