package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/bough"
)

func newInspectCmd(app *App) *cobra.Command {
	var (
		at            string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the demo tree and optionally hit-test a point",
		Long: `Print the demo tree with each node's type and bounds in parent space.

With --at x,y the point (absolute surface coordinates) is hit-tested and the
target node is reported along with the point in its local coordinates.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, h := app.size(width, height)
			scene, _, _, err := app.newDemo(w, h)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("bough tree"))
			fmt.Fprintln(out, renderTree(scene.Root))

			if at == "" {
				return nil
			}
			x, y, err := parsePoint(at)
			if err != nil {
				return err
			}
			hit, ok := bough.Tunnel(scene.Root, x, y, 0, 0)
			if !ok {
				fmt.Fprintln(out, hitStyle.Render(fmt.Sprintf("(%g, %g) misses the tree", x, y)))
				return nil
			}
			fmt.Fprintln(out, hitStyle.Render(fmt.Sprintf("(%g, %g) hits %s at local (%g, %g)",
				x, y, nodeLabel(hit.Node), hit.LocalX, hit.LocalY)))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "hit-test the point x,y")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default: window.width)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default: window.height)")
	return cmd
}

// renderTree draws the subtree rooted at root as an indented outline.
func renderTree(root *bough.Node) string {
	var b strings.Builder
	root.Walk(func(n *bough.Node, depth int) bool {
		if depth > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(nodeLabel(n))
		b.WriteByte(' ')
		b.WriteString(typeStyle.Render(n.Type.String()))
		r := n.Bounds()
		b.WriteByte(' ')
		b.WriteString(boundStyle.Render(fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)))
		if t := n.Text(); t != "" {
			b.WriteByte(' ')
			b.WriteString(textStyle.Render(strconv.Quote(t)))
		}
		return true
	})
	return boxStyle.Render(b.String())
}

func nodeLabel(n *bough.Node) string {
	if n.ID != "" {
		return n.Name + "#" + n.ID
	}
	return n.Name
}

// parsePoint parses "x,y".
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}
