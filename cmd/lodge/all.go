// All command for the lodge CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all [Class]",
	Short: "List records, optionally filtered by class",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class := ""
		if len(args) == 1 {
			class = args[0]
			if err := requireClass(class); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUserError)
			}
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "all:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		keys := make([]string, 0, len(store.All()))
		for k, r := range store.All() {
			if class != "" && r.Class() != class {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if flagJSON {
			doc := make(map[string]map[string]any, len(keys))
			for _, k := range keys {
				doc[k] = store.All()[k].ToMap()
			}
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, k := range keys {
			fmt.Println(store.All()[k].String())
		}
		return nil
	},
}
