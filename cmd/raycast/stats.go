package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycast/internal/platform/tui"
	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var (
	flagPlain    bool
	flagPlatform string
	flagLimit    int
	flagClear    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View recorded runs",
	Long: `Browse the run journal: one row per finished play, window or SSH session.

In a terminal the journal opens as an interactive table; use --plain (or
pipe the output) for a static listing.

Examples:
  raycast stats
  raycast stats --plain --limit 5
  raycast stats --plain --platform ssh
  raycast stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a static table instead of the interactive view")
	statsCmd.Flags().StringVar(&flagPlatform, "platform", "", "Only show runs from this platform (terminal, window, ssh)")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show in plain mode")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runStats(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: run journal is disabled (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared")
		return
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		if err := tui.RunJournal(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagPlatform, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	totals, err := store.Totals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	fmt.Println(tui.RunsTable(runs))
	fmt.Println()
	fmt.Println(tui.TotalsLine(totals))
}
