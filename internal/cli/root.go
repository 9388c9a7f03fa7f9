// Package cli provides the command-line interface for bough.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/bough"
	"github.com/phanxgames/bough/internal/config"
	"github.com/phanxgames/bough/internal/demo"
	"github.com/phanxgames/bough/internal/logging"
	"github.com/phanxgames/bough/raster"
)

// App holds what every command needs once flags are parsed.
type App struct {
	configPath string
	verbose    bool

	Manager *config.Manager
	Config  *config.Config
	Log     zerolog.Logger
}

// NewRootCmd creates the root command for bough
func NewRootCmd(version string) *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "bough",
		Short: "Retained-mode UI scene graph demo",
		Long: `bough drives a small retained-mode UI tree: damage-driven repaint,
tick-based event dispatch, click and focus inference, grid and stack layout.

Run the demo in a window, render it headless to PNG, replay scripted input,
or inspect the tree and its hit testing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "config file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bough %s\n", version)
		},
	}

	rootCmd.AddCommand(
		versionCmd,
		newRunCmd(app),
		newRenderCmd(app),
		newReplayCmd(app),
		newInspectCmd(app),
		newConfigCmd(app),
	)
	return rootCmd
}

// init loads configuration and builds the logger.
func (a *App) init() error {
	m, err := config.NewManager(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := m.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Manager = m
	a.Config = m.Get()

	lc := logging.DefaultConfig()
	lc.Format = a.Config.Logging.Format
	lvl, err := logging.ParseLevel(a.Config.Logging.Level)
	if err != nil {
		return err
	}
	lc.Level = lvl
	if a.verbose {
		lc.Level = zerolog.DebugLevel
		a.Config.Driver.Debug = true
	}
	a.Log = logging.New(lc)
	m.SetLogger(a.Log)
	return nil
}

// newDemo builds the demo scene on a fresh canvas with a driver configured
// from the loaded settings.
func (a *App) newDemo(width, height int) (*demo.Scene, *raster.Canvas, *bough.Driver, error) {
	scene := demo.Build(float64(width), float64(height))
	canvas := raster.NewCanvas(width, height)
	d, err := bough.NewDriver(canvas, scene.Root, a.Config.Driver.Bough(&a.Log))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create driver: %w", err)
	}
	scene.Attach(d)
	return scene, canvas, d, nil
}

// size returns the flag values, falling back to the configured window size.
func (a *App) size(w, h int) (int, int) {
	if w <= 0 {
		w = a.Config.Window.Width
	}
	if h <= 0 {
		h = a.Config.Window.Height
	}
	return w, h
}
