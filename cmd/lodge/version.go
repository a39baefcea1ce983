// Version command for the lodge CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version string, overridable at link time.
var version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lodge", version)
	},
}
