// Count command for the lodge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <Class>",
	Short: "Print the number of records of a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireClass(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "count:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		n := 0
		for _, r := range store.All() {
			if r.Class() == args[0] {
				n++
			}
		}
		fmt.Println(n)
		return nil
	},
}
