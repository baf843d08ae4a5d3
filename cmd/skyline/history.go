package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyline/internal/storage"
)

var (
	flagHistoryScene string
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recent skyline runs. Each run records its seed, so any
skyline can be replayed with 'skyline run --seed <seed>'.

Examples:
  skyline history
  skyline history --scene dusk
  skyline history --seed 42
  skyline history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryScene, "scene", "", "Only show runs of this scene")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of runs")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.RunRecord
	switch {
	case flagSeed != 0:
		// The global --seed flag filters by seed
		runs, err = store.RunsForSeed(flagSeed)
	case flagHistoryScene != "":
		runs, err = store.RunsForScene(flagHistoryScene, flagHistoryLimit)
	default:
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyline run' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-20s  %-8s  %-9s  %-10s  %-8s  %s\n", "Seed", "Scene", "Size", "Ticks", "Time", "Date")
	fmt.Printf("  %-20s  %-8s  %-9s  %-10s  %-8s  %s\n", "----", "-----", "----", "-----", "----", "----")

	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dur := (time.Duration(r.Duration) * time.Second).String()
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-20d  %-8s  %-9s  %-10d  %-8s  %s\n", r.Seed, r.Scene, size, r.Ticks, dur, dateStr)
	}

	// Show longest run
	if flagHistoryScene != "" {
		fmt.Println()
		if longest, err := store.LongestRun(flagHistoryScene); err == nil && longest > 0 {
			fmt.Printf("Longest: %d ticks\n", longest)
		}
	}
}
