package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/replay"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse and watch recorded runs",
	Long: `Open the interactive replay browser, or manage recordings directly
with the subcommands.

Examples:
  runner replays              # Interactive browser
  runner replays list         # Print recent runs
  runner replays watch 12     # Watch run 12
  runner replays verify 12    # Re-simulate run 12 and check the score`,
	Run: runBrowse,
}

var replaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recent runs",
	Run:   runReplaysList,
}

var replaysWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Watch a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysWatch,
}

var replaysVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-simulate a recording and check it matches the stored result",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysVerify,
}

func init() {
	replaysCmd.AddCommand(replaysListCmd)
	replaysCmd.AddCommand(replaysWatchCmd)
	replaysCmd.AddCommand(replaysVerifyCmd)
}

// openStore opens the replay database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// parseRunID parses a run ID argument or exits.
func parseRunID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run ID %q\n", arg)
		os.Exit(1)
	}
	return id
}

// loadRun fetches a run and its trace or exits.
func loadRun(store *storage.Store, id int64) (*storage.RunEntry, *replay.Trace) {
	entry, trace, err := store.Run(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'runner replays list' to see recorded runs.")
		os.Exit(1)
	}
	return entry, trace
}

func runBrowse(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// The browser returns the chosen run; loop so the user lands back in
	// the list after each replay ends.
	for {
		id, err := tui.RunBrowser(store, "runner", width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if id == 0 {
			return
		}

		_, trace := loadRun(store, id)
		runner.SetConfigOverride(trace.Config)
		if err := tui.RunPlayback(runner.New(), *trace); err != nil {
			fmt.Fprintf(os.Stderr, "Error during playback: %v\n", err)
			os.Exit(1)
		}
	}
}

func runReplaysList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	runs, err := store.RecentRuns("runner", 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to record the first one!")
		return
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-6s  %-8s  %-8s  %-20s  %s\n", "ID", "Score", "Ticks", "Seed", "Date")
	fmt.Printf("  %-6s  %-8s  %-8s  %-20s  %s\n", "--", "-----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-8d  %-8d  %-20d  %s\n",
			r.ID, r.Score, r.Ticks, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'runner replays watch <id>' to watch one.")
}

func runReplaysWatch(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	_, trace := loadRun(store, parseRunID(args[0]))
	runner.SetConfigOverride(trace.Config)

	if err := tui.RunPlayback(runner.New(), *trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error during playback: %v\n", err)
		os.Exit(1)
	}
}

func runReplaysVerify(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entry, trace := loadRun(store, parseRunID(args[0]))
	runner.SetConfigOverride(trace.Config)

	state := replay.Run(runner.New(), *trace)

	fmt.Printf("Run %d: stored score %d, replayed score %d\n", entry.ID, entry.Score, state.Score)
	if state.Score != entry.Score {
		fmt.Println("MISMATCH: the recording does not reproduce the stored result.")
		os.Exit(1)
	}
	fmt.Println("OK: the recording reproduces the stored result.")
}
