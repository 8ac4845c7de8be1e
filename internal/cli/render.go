package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/paintgrid/internal/config"
	"github.com/danieljhkim/paintgrid/internal/engine"
	"github.com/danieljhkim/paintgrid/internal/fsops"
)

var (
	renderCanvas canvasFlags
	renderScale  int
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render <script>",
	Short: "Paint a stroke script and write the canvas as an image",
	Long: `Run a stroke script against a fresh grid and render every cell.

The script is read from a file, or from stdin when <script> is "-". The image
format follows the output extension (.png, .jpg, .gif, .bmp, .tif). Without
--output the image goes to $PAINTGRID_ROOT/renders/<script>.png.

Example script:
  add rainbow 4 4
  brush +
  add invert 10 3
  special`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := config.LoadDefaults()
		if err != nil {
			return err
		}
		c, err := renderCanvas.resolve(cmd, defaults)
		if err != nil {
			return err
		}
		scale := defaults.Scale
		if cmd.Flags().Changed("scale") {
			scale = renderScale
		}

		eng, err := newEngine(c)
		if err != nil {
			return err
		}
		plan, err := loadPlan(cmd, args[0], eng.Registry())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		execResult, err := eng.Execute(ctx, plan)
		if err != nil {
			return err
		}

		output := renderOutput
		if output == "" {
			if output, err = defaultOutput(args[0]); err != nil {
				return err
			}
		}

		result, err := eng.Render(ctx, &engine.RenderRequest{
			FrameRequest: c.frameRequest(),
			Output:       output,
			Scale:        scale,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, map[string]interface{}{
				"style":   c.style,
				"width":   c.width,
				"height":  c.height,
				"execute": execResult,
				"render":  result,
			})
		}

		PrintSuccess(w, fmt.Sprintf("Rendered %s", result.Path))
		PrintLabelValue(w, "Canvas", fmt.Sprintf("%dx%d %s", c.width, c.height, c.style))
		PrintLabelValue(w, "Image", fmt.Sprintf("%dx%d px", result.Width, result.Height))
		PrintLabelValue(w, "Operations", PrintCount(len(execResult.Applied), "operation", "operations"))
		PrintLabelValue(w, "Changed", PrintCount(execResult.Changed, "cell", "cells"))
		PrintLabelValue(w, "Timestamp", strconv.Itoa(result.Timestamp))
		PrintLabelValue(w, "SHA-256", result.Digest)
		if plan.Len() > 0 && execResult.Changed == 0 {
			PrintWarning(w, "The script did not change any cell")
		}
		return nil
	},
}

func init() {
	renderCanvas.register(renderCmd)
	renderCmd.Flags().IntVar(&renderScale, "scale", 0, "Pixels per cell edge (default $PAINTGRID_SCALE or 8)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output image path")
}

// defaultOutput names the image after the script inside the renders directory.
func defaultOutput(script string) (string, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return "", fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(fsops.NewRealFS()); err != nil {
		return "", fmt.Errorf("failed to ensure directories: %w", err)
	}

	name := "canvas"
	if script != "-" {
		name = strings.TrimSuffix(filepath.Base(script), filepath.Ext(script))
	}
	return filepath.Join(paths.Renders, name+".png"), nil
}
