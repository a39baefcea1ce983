// Update command for the lodge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update <Class> <id> <attr> <value>",
	Short: "Set one field on a record and persist it",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		r, k, err := lookupRecord(store, args[0], args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		updated, err := types.SetField(r, args[2], args[3])
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitUserError)
		}

		// The rebuilt record replaces the original under the same key.
		delete(store.All(), k)
		store.New(updated)
		if err := types.Save(updated, store); err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printRecord(updated)
		}
		fmt.Printf("Updated %s\n", k)
		return nil
	},
}
