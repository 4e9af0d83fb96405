// internal/cli/validate_registry.go
package gallery

import "github.com/spf13/cobra"

// validateRegistryCmd implements 'validate registry', which checks every
// loaded record against the canonical record schema.
var validateRegistryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Validate every registry record against the canonical schema",
	Long:  `The 'registry' subcommand loads the registry source, normalizes it, and validates every record against the canonical JSON schema, reporting per-row violations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidateRegistry()
	},
}

func init() {
	validateCmd.AddCommand(validateRegistryCmd)
}
