// Create command for the lodge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create <Class>",
	Short: "Create a new record and print its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := types.NewRecord(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "unknown class %q (valid: %s)\n", args[0], validClassesStr)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		store.New(r)
		if err := store.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printRecord(r)
		}
		fmt.Println(r.RecordID())
		return nil
	},
}
