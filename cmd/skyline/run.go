package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyline/internal/config"
	"github.com/vovakirdan/tui-skyline/internal/core"
	"github.com/vovakirdan/tui-skyline/internal/platform/tui"
	"github.com/vovakirdan/tui-skyline/internal/storage"
)

var (
	flagScene    string
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagAutoSize bool
	flagDensity  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Animate a skyline scene",
	Long: `Start the scrolling skyline in the terminal.

Controls:
  P/Space    - Pause
  N/Right    - Advance one tick while paused
  Ctrl+S     - Save a PNG screenshot to ~/.skyline/screenshots
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Density options:
  sparse - Fewer buildings
  normal - Scene thresholds as written
  dense  - More buildings

Examples:
  skyline run
  skyline run --scene dusk
  skyline run --seed 42 --width 120 --height 30
  skyline run --auto-size --density dense
  skyline run --config ./my-scene.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	addSceneFlags(runCmd)
	runCmd.Flags().BoolVar(&flagAutoSize, "auto-size", false, "Size the canvas to the terminal and follow resizes")
}

// addSceneFlags registers the flags shared by commands that build a city.
func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagScene, "scene", config.DefaultSceneName, "Scene name")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene YAML")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Canvas width in cells (0 = default)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Canvas height in cells (0 = default)")
	cmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runRun(cmd *cobra.Command, args []string) {
	width, height := resolveViewport(flagWidth, flagHeight, flagAutoSize)
	if err := runScene(flagScene, width, height, flagAutoSize); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runScene loads a scene and animates it until the user quits.
func runScene(sceneName string, width, height int, autoSize bool) error {
	scene, err := loadScene(sceneName, flagConfig, flagDensity, width, height)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := resolveSeed(flagSeed)
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Step:     scene.Step,
		Seed:     seed,
		AutoSize: autoSize,
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage - the skyline still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(newCity(scene, width, height, seed), scene, store, logger, cfg)
}
