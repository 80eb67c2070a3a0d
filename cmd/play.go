package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("skip-welcome", false, "Start on the home screen")
	playCmd.Flags().Bool("no-journal", false, "Do not record results")
}
