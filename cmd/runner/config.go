package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config YAML",
	Long: `Print the embedded default configuration.

Save it to a file, edit it, and pass it back with --config:

  runner config > my-runner.yaml
  runner play --config ./my-runner.yaml

The game also picks up ~/.runner/configs/runner.yaml or
./configs/runner.yaml automatically if present.`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))
}
