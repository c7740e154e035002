package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the version of dontpress. Overridable at build time with
// -ldflags "-X github.com/dontpressbutton/dontpress/cmd.Version=...".
var Version = "0.1.0"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dontpress v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
