// internal/cli/export.go
package gallery

import "github.com/spf13/cobra"

// exportCmd represents the 'export' command group.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Group commands for exporting resources",
	Long:  `The 'export' command groups subcommands that write gallery resources to files.`,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
