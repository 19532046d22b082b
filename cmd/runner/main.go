// runner is a terminal side-scrolling obstacle runner.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner serve             - Start SSH server for remote play
//	runner replays           - Browse and watch recorded runs
//	runner config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Horizon Runner - an endless runner in your terminal",
	Long: `Horizon Runner is a terminal-based endless runner. The character runs
forward automatically and speeds up over time; jump over the obstacles
for as long as you can. Every finished run is recorded and can be
watched back later.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  replays  - Browse, watch, and verify recorded runs
  config   - Print the default game config YAML

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42
  runner serve --ssh :2222
  runner replays list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to replay database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}
