package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/paintgrid/internal/layer"
)

type layerInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List the layers scripts can paint",
	Long: `List every registered layer. SEQUENCE cells compose their layers in
ascending index order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := layer.Default().All()
		infos := make([]layerInfo, 0, len(all))
		for _, l := range all {
			infos = append(infos, layerInfo{Index: l.Index(), Name: l.Name()})
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, infos)
		}

		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{strconv.Itoa(info.Index), info.Name})
		}
		PrintTable(w, []string{"INDEX", "NAME"}, rows)
		return nil
	},
}
