// Shell command for the lodge CLI: the interactive interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lodge/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive command shell",
	Long: `Shell starts a line-oriented session over the record store. Commands:
create, show, destroy, all, count, update, help, quit. Record commands
also accept dot notation, e.g. User.all() or User.show("<id>").`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "shell:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		sh := shell.New(store, os.Stdin, os.Stdout, os.Stderr)
		if err := sh.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "shell:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}
