package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "textobserver",
	Short:   "Render metric observation events as a hierarchical text snapshot",
	Version: version,
	Long: `Textobserver replays a document of metric observation events (counters,
gauges and histograms) and renders them as a deterministic, indented text
tree: metrics are grouped by their dot-separated name segments and sorted
alphabetically at every nesting level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(renderCmd)
}
