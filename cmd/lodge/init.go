// Init command for the lodge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

// initConfigFile holds the structure written to config.yaml by init.
type initConfigFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lodge configuration and storage",
	Long:  "Create the configuration and data directories and write an initial snapshot for the selected backend.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		backend := resolveBackend()
		cfg := types.Config{Backend: backend, DataDir: dataDir}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitUserError)
		}

		if err := os.MkdirAll(configDir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "init: create config directory:", err)
			os.Exit(exitSysError)
		}
		if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), backend, flagDataDir); err != nil {
			fmt.Fprintln(os.Stderr, "init: write config:", err)
			os.Exit(exitSysError)
		}

		// Open the backend once so the data directory and an empty
		// snapshot exist and a later reload has something well-formed.
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()
		if err := store.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "init: write snapshot:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Initialized lodge (%s backend) in %s\n", backend, dataDir)
		return nil
	},
}

// writeConfigIfMissing writes a config.yaml capturing the chosen backend
// and any explicit data dir. An existing file is left alone.
func writeConfigIfMissing(path, backend, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	content, err := yaml.Marshal(initConfigFile{
		Backend: backend,
		DataDir: dataDir,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, content, 0o644)
}
