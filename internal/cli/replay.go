package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/bough"
)

func newReplayCmd(app *App) *cobra.Command {
	var (
		outDir        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Replay a scripted input sequence against the demo headless",
		Long: `Replay a JSON script of input steps against the demo tree and write
the requested snapshots as PNG files.

Script format:
  {"steps": [
    {"action": "click", "x": 120, "y": 110},
    {"action": "type", "text": "hello"},
    {"action": "snapshot", "label": "after-typing"}
  ]}

Actions: click, press, release, move, hover, drag, key, type, tick, wait, snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			runner, err := bough.LoadTestScript(data)
			if err != nil {
				return err
			}

			w, h := app.size(width, height)
			scene, canvas, d, err := app.newDemo(w, h)
			if err != nil {
				return err
			}
			d.Start()

			snap := &bough.ScreenshotWriter{Dir: outDir, Source: canvas}
			if err := runner.Run(d, snap); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range snap.Written() {
				fmt.Fprintln(out, p)
			}
			fmt.Fprintf(out, "status: %s\n", scene.Status.Text())
			fmt.Fprintf(out, "clicks: %s\n", scene.FormatClicks())
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "snapshots", "directory for snapshot PNGs")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default: window.width)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default: window.height)")
	return cmd
}
