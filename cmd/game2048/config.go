package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nghiafl1/game2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after file, .env, environment and flag
overrides have been applied, as YAML.

Search order:
  --config <path>
  ~/.game2048/config.yaml
  ./configs/game2048.yaml
  built-in defaults

Environment overrides:
  ` + config.EnvGridSize + `, ` + config.EnvDifficulty + `,
  ` + config.EnvTimeLimit + `, ` + config.EnvDBPath,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data, err := config.Marshal(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
