package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyline/internal/config"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List all available scenes",
	Long: `Shows the built-in scenes. A YAML file with the same name in
~/.skyline/scenes or ./scenes overrides the built-in one.`,
	Run: runScenes,
}

func runScenes(cmd *cobra.Command, args []string) {
	names := config.SceneNames()

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Layers", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-----------")

	for _, n := range names {
		scene, err := config.LoadScene(n, "")
		if err != nil {
			fmt.Printf("  %-*s  %-6s  (%v)\n", maxNameLen, n, "-", err)
			continue
		}
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, n, len(scene.Layers), scene.Description)
	}

	fmt.Println()
	fmt.Println("Run 'skyline run --scene <name>' to watch a scene.")
}
