package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelqty/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of steelqty",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Steel section area, weight and stiffener formulas")
		fmt.Fprintln(out, "Reference tables after GB/T 11263, GB/T 706")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
