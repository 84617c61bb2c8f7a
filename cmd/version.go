package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags "-X github.com/gaurav-prasanna/tohtml5/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tohtml5 version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tohtml5 %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
