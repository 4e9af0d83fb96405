// internal/cli/list.go
package gallery

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group for listing resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that list registry models and gallery commands.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
