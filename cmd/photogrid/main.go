package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/photogrid/internal/catalog"
	"github.com/jask/photogrid/internal/config"
	"github.com/jask/photogrid/internal/logger"
	"github.com/jask/photogrid/internal/tui"
)

var (
	configPath   string
	manifestPath string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "photogrid",
	Short: "Reorderable photo grid for the terminal",
	Long: `photogrid shows a grid of photos. Drag a cell with the mouse, or pick it
up with space, to reorder the grid. Click a cell or press enter to view it
in the lightbox.

Photos come from a TOML or YAML manifest; without one a few sample photos
are shown. The order is kept in memory only.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/photogrid/config.toml)")
	rootCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "photo manifest (.toml, .yaml or .yml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if manifestPath != "" {
		cfg.Manifest.Path = manifestPath
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	closer, err := logger.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closer.Close()
	log := logger.New("main")

	keys := tui.NewKeyRegistry()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	photos, err := catalog.Load(cfg.Manifest.Path)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	log.Info().Int("photos", len(photos)).Str("manifest", cfg.Manifest.Path).Msg("starting")

	p := tea.NewProgram(tui.New(tui.Options{
		Photos: photos,
		Grid:   cfg.Grid,
		Wrap:   cfg.Lightbox.Wrap,
		Keys:   keys,
		Log:    logger.New("tui"),
	}), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Manifest.Watch && cfg.Manifest.Path != "" {
		watchLog := logger.New("catalog")
		go func() {
			if err := catalog.Watch(ctx, cfg.Manifest.Path, watchLog, func(r catalog.Reload) { p.Send(r) }); err != nil {
				watchLog.Error().Err(err).Msg("manifest watcher stopped")
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Msg("exiting")
	return nil
}
