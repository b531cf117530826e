package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := map[string]string{
			"version":   Version,
			"commit":    Commit,
			"buildDate": BuildDate,
		}
		return printResult(info, func() {
			fmt.Printf("folio %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
