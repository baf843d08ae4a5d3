package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skyline/internal/city"
	"github.com/vovakirdan/tui-skyline/internal/config"
	"github.com/vovakirdan/tui-skyline/internal/core"
	"github.com/vovakirdan/tui-skyline/internal/platform/tui"
)

// streamSalt derives the PCG stream from the seed.
const streamSalt = 0x9E3779B97F4A7C15

// newLogger builds the application logger.
// The alternate screen owns the terminal, so logs only go to a file.
// The returned close function releases the file.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyline",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// resolveSeed returns the seed flag, or a time-based seed when it is 0.
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// newRNG creates the deterministic generator for a seed.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}

// newCity builds the engine for a scene.
func newCity(scene config.Scene, width, height int, seed uint64) *city.City {
	return city.New(width, height, city.Tick(scene.Step), newRNG(seed), scene.Background, scene.LayerDescs())
}

// resolveViewport picks the canvas size from flags or the terminal.
// Explicit sizes win; zero means the default size unless auto-sizing.
func resolveViewport(width, height int, autoSize bool) (int, int) {
	w, h := core.DefaultWidth, core.DefaultHeight
	if autoSize {
		if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w, h = tui.FitViewport(tw, th)
		}
	}
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	return w, h
}

// loadScene loads a scene, applies the density preset and validates it.
func loadScene(name, customPath, density string, width, height int) (config.Scene, error) {
	scene, err := config.LoadScene(name, customPath)
	if err != nil {
		return scene, err
	}

	if density != "" {
		preset := config.ParseDensityPreset(density)
		if preset == "" {
			return scene, fmt.Errorf("unknown density preset %q (use sparse, normal or dense)", density)
		}
		config.ApplyDensityPreset(&scene, preset)
	}

	if err := config.Validate(scene, width, height); err != nil {
		return scene, err
	}
	return scene, nil
}
