// Destroy command for the lodge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy <Class> <id>",
	Short: "Remove a record by class and id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "destroy:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		_, k, err := lookupRecord(store, args[0], args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		delete(store.All(), k)
		if err := store.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Destroyed %s\n", k)
		return nil
	},
}
