package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Prints the configuration pong would play with, as YAML.

The configuration is looked up in this order:
  1. --config <path>
  2. ~/.pong/pong.yaml
  3. ./configs/pong.yaml
  4. built-in defaults

Examples:
  pong config
  pong config --defaults > ~/.pong/pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := loadGameConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
