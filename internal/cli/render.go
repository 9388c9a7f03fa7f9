package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/bough"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		out           string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo headless to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, h := app.size(width, height)
			_, canvas, d, err := app.newDemo(w, h)
			if err != nil {
				return err
			}
			stats := d.Start()
			if err := bough.WritePNG(out, canvas.Image()); err != nil {
				return err
			}
			app.Log.Debug().Int("events", stats.Events).Dur("took", stats.Duration).Msg("rendered")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, w, h)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "bough.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default: window.width)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default: window.height)")
	return cmd
}
