// internal/cli/show_config.go
package gallery

import (
	"github.com/spf13/cobra"
)

// showConfigCmd implements 'show config', which prints the merged
// configuration (flags > config file > defaults).
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig()
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
