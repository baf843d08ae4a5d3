package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyline/internal/core"
	"github.com/vovakirdan/tui-skyline/internal/platform/tui"
	"github.com/vovakirdan/tui-skyline/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scene from an interactive menu",
	Long: `Start skyline in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
After quitting a scene, you return to the menu.

The canvas follows the terminal size.

Examples:
  skyline menu
  skyline menu --fps 60
  skyline menu --density sparse`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Best scores shown in the menu
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = resolveViewport(0, 0, true)

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if result.Quit {
			break
		}

		// Re-read the terminal size, it may have changed in the menu
		w, h := resolveViewport(0, 0, true)
		if err := runScene(result.Scene, w, h, true); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
