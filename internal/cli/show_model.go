// internal/cli/show_model.go
package gallery

import "github.com/spf13/cobra"

// showModelCmd implements 'show model', which dumps one registry record.
var showModelCmd = &cobra.Command{
	Use:   "model <model_name>",
	Short: "Show the full record for one registry model",
	Long:  `The 'model' subcommand looks a model up by name in the loaded registry and dumps its full record, including pass-through columns.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowModel(args[0])
	},
}

func init() {
	showCmd.AddCommand(showModelCmd)
}
