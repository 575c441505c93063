package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/floractl/internal/prefs"
	"github.com/blackwell-systems/floractl/internal/tui"
	"github.com/blackwell-systems/floractl/internal/tui/picker"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the site theme preference",
		Long: `The theme preference (light or dark) is kept in the preference store
(prefs.backend: file or sqlite). New site builds start in this theme and the
served site switches it through the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeGet(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runThemeGet(cmd)
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Set the theme",
			Args:      cobra.MaximumNArgs(1),
			ValidArgs: []string{prefs.ThemeLight, prefs.ThemeDark},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := commandContext(cmd)
				store, err := openPrefs()
				if err != nil {
					return err
				}
				defer store.Close()

				var theme string
				switch {
				case len(args) == 1:
					theme = args[0]
				case tui.ShouldUseTUI(cmd):
					cur, _ := prefs.Theme(ctx, store)
					theme, err = tui.RunThemePicker([]string{prefs.ThemeLight, prefs.ThemeDark}, cur)
					if errors.Is(err, picker.ErrCanceled) {
						return nil
					}
					if err != nil {
						return err
					}
				default:
					return fmt.Errorf("theme set needs %s or %s", prefs.ThemeLight, prefs.ThemeDark)
				}

				if err := prefs.SetTheme(ctx, store, theme); err != nil {
					return err
				}
				ok("Theme set to %s", theme)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := toggleTheme(commandContext(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			},
		},
	)
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runThemeGet(cmd *cobra.Command) error {
	store, err := openPrefs()
	if err != nil {
		return err
	}
	defer store.Close()

	theme, err := prefs.Theme(commandContext(cmd), store)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme)
	return nil
}

func toggleTheme(ctx context.Context) (string, error) {
	store, err := openPrefs()
	if err != nil {
		return "", err
	}
	defer store.Close()
	return prefs.ToggleTheme(ctx, store)
}
