// skyline renders an endlessly scrolling procedural city skyline in the terminal.
//
// Usage:
//
//	skyline run              - Animate a skyline scene
//	skyline menu             - Pick a scene interactively
//	skyline snapshot         - Render a scene headless and save it as PNG
//	skyline scenes           - List available scenes
//	skyline history          - Show recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for a reproducible skyline
//	--db <path>     - Set database path (default: ~/.skyline/runs.db)
//	--log <path>    - Write logs to a file
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    uint64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyline",
	Short: "Skyline - An endless procedural city in your terminal",
	Long: `Skyline draws layers of buildings that scroll past at different
speeds, spawned from a seeded random generator.

Available commands:
  run       - Animate a scene
  menu      - Interactive scene picker
  snapshot  - Render a scene to PNG without a terminal
  scenes    - Show all available scenes
  history   - View recorded runs

Examples:
  skyline run
  skyline run --scene dusk --seed 42
  skyline run --auto-size --density dense
  skyline snapshot --ticks 600 --out city.png
  skyline history --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyline/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(historyCmd)
}
