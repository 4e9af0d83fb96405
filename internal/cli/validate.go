// internal/cli/validate.go
package gallery

import "github.com/spf13/cobra"

// validateCmd represents the 'validate' command group.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Group commands for validating resources",
	Long:  `The 'validate' command groups subcommands that check gallery resources against their expected schemas.`,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
