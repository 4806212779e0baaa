package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the chargon release version.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "chargon version %s\n", Version)
	},
}
