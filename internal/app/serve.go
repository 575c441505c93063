package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/floractl/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		siteDir string
		build   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the atlas site and the JSON API",
		Long: `Serve the generated site at / together with the JSON API:

  GET  /api/v1/health
  GET  /api/v1/plants?q=&category=
  GET  /api/v1/plants/{id}
  POST /api/v1/identify
  GET  /api/v1/preferences/theme
  PUT  /api/v1/preferences/theme
  POST /api/v1/preferences/theme/toggle
  GET  /metrics

Stops gracefully on Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plants, err := loadPlants()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Serve.Addr()
			}
			if siteDir == "" {
				siteDir = cfg.Site.OutDir
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if build {
				res, err := buildSite(ctx, plants, siteDir, cfg.Site.Title)
				if err != nil {
					return err
				}
				reportBuild(res)
			}
			if _, err := os.Stat(filepath.Join(siteDir, "index.html")); err != nil {
				warn("No site in %s; serving the API only (run 'floractl build' or pass --build)", siteDir)
				siteDir = ""
			}

			store, err := openPrefs()
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(server.Options{
				Addr:    addr,
				SiteDir: siteDir,
				Version: appVersion,
				Plants:  plants,
				Prefs:   store,
				Logger:  logger,
			})
			logger.Info("serving", zap.String("addr", addr), zap.String("site", siteDir), zap.Int("plants", len(plants)))
			ok("Listening on http://%s", addr)

			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: serve.host:serve.port)")
	cmd.Flags().StringVar(&siteDir, "site", "", "Site directory to serve (default: site.out_dir)")
	cmd.Flags().BoolVar(&build, "build", false, "Build the site before serving")
	return cmd
}
