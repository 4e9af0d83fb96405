// internal/cli/browse.go
package gallery

import (
	"github.com/mwiater/gallery/tui"
	"github.com/spf13/cobra"
)

var startGUI = tui.StartGUI

// browseCmd represents the 'browse' command.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive model gallery dashboard",
	Long:  `The 'browse' command opens the interactive dashboard for discovering, filtering, and inspecting registry models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
