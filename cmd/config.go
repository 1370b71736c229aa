package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	vdfconfig "vdfproof/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vdfproof demonstration configuration",
	Long: `Manage the JSON configuration file (session parameters, listen
address, transport choice). "vdfproof serve" takes its settings from its
own flags and does not read this file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration, creating a default if needed",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := vdfconfig.Load(configPath())
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%+v\n", *cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vdfproof", vdfconfig.FileName)
}
