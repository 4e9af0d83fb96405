// internal/cli/export_registry.go
package gallery

import "github.com/spf13/cobra"

var exportOut string

// exportRegistryCmd implements 'export registry', which writes the
// normalized registry as JSON.
var exportRegistryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Export the normalized registry as JSON",
	Long:  `The 'registry' subcommand loads and normalizes the registry source, then writes the canonical records to a JSON file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExportRegistry(exportOut)
	},
}

func init() {
	exportRegistryCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (defaults to the configured export path)")
	exportCmd.AddCommand(exportRegistryCmd)
}
