package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/geoscore/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage geoscore configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .geoscorerc.yaml in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(apiBase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		const path = ".geoscorerc.yaml"
		if err := config.WriteStarter(cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
