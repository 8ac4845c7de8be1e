package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/paintgrid/internal/config"
	"github.com/danieljhkim/paintgrid/internal/engine"
)

var inspectCanvas canvasFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect <script> <x> <y>",
	Short: "Show one cell's layers and colour",
	Long: `Run a stroke script against a fresh grid, then print the active layers of
cell (x, y) in composition order and the colour they produce.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseCoordinate("x", args[1])
		if err != nil {
			return err
		}
		y, err := parseCoordinate("y", args[2])
		if err != nil {
			return err
		}

		defaults, err := config.LoadDefaults()
		if err != nil {
			return err
		}
		c, err := inspectCanvas.resolve(cmd, defaults)
		if err != nil {
			return err
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
		if _, err := eng.Execute(ctx, plan); err != nil {
			return err
		}
		result, err := eng.Inspect(ctx, &engine.InspectRequest{
			FrameRequest: c.frameRequest(),
			X:            x,
			Y:            y,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, result)
		}

		PrintSection(w, fmt.Sprintf("Cell (%d, %d)", result.X, result.Y))
		if len(result.Layers) == 0 {
			PrintEmptyState(w, "No active layers")
		} else {
			PrintLabelValue(w, "Layers", PrintCount(len(result.Layers), "layer", "layers"))
			PrintList(w, result.Layers, 2)
		}
		PrintSwatch(w, "Colour", result.RGB)
		PrintLabelValue(w, "Timestamp", strconv.Itoa(result.Timestamp))
		return nil
	},
}

func init() {
	inspectCanvas.register(inspectCmd)
}

func parseCoordinate(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", engine.ErrValidation, name, raw)
	}
	return n, nil
}
