package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/bough/ebitenhost"
	"github.com/phanxgames/bough/internal/config"
)

func newRunCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo in a window",
		Long: `Open a window showing the demo tree. Pointer and keyboard input are
queued on the driver and drained every driver.tick_interval_ms.

With --watch, edits to the config file update the driver settings live.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, h := app.size(0, 0)
			_, canvas, d, err := app.newDemo(w, h)
			if err != nil {
				return err
			}

			if watch {
				app.Manager.OnConfigChange(func(c *config.Config) {
					d.Reconfigure(c.Driver.Bough(&app.Log))
					app.Log.Info().Msg("config reloaded")
				})
				if err := app.Manager.Watch(); err != nil {
					return err
				}
			}

			app.Log.Info().Int("width", w).Int("height", h).Msg("starting window")
			return ebitenhost.Run(d, canvas, ebitenhost.RunConfig{
				Title:   app.Config.Window.Title,
				Width:   w,
				Height:  h,
				TPS:     app.Config.Window.TPS,
				ShowFPS: app.Config.Window.ShowFPS,
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload driver settings when the config file changes")
	return cmd
}
