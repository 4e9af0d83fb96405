// internal/cli/list_models.go
package gallery

import "github.com/spf13/cobra"

// modelsCmd implements 'list models', which prints the registry models
// grouped by domain.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List registry models grouped by domain",
	Long:  `The 'models' subcommand loads the registry and lists every model grouped by domain, with lifecycle stage and monitoring status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListModels()
	},
}

func init() {
	listCmd.AddCommand(modelsCmd)
}
