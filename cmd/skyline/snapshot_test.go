package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-skyline/internal/config"
)

func testSnapshotOptions(t *testing.T) snapshotOptions {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return snapshotOptions{
		scene:   config.DefaultSceneName,
		width:   60,
		height:  20,
		ticks:   120,
		scale:   2,
		seed:    42,
		logPath: filepath.Join(t.TempDir(), "skyline.log"),
	}
}

func TestRenderSnapshotToStdout(t *testing.T) {
	opts := testSnapshotOptions(t)
	opts.out = "-"

	var stdout, stderr bytes.Buffer
	if err := renderSnapshot(opts, &stdout, &stderr); err != nil {
		t.Fatalf("renderSnapshot() error = %v", err)
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		t.Fatalf("stdout is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 60*2 || img.Bounds().Dy() != 20*2*2 {
		t.Errorf("image is %dx%d, expected %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), 120, 80)
	}
	if !strings.Contains(stderr.String(), "seed 42") {
		t.Errorf("summary = %q, expected it on stderr", stderr.String())
	}
}

func TestRenderSnapshotToFile(t *testing.T) {
	opts := testSnapshotOptions(t)
	opts.out = filepath.Join(t.TempDir(), "out", "city.png")

	var stdout, stderr bytes.Buffer
	if err := renderSnapshot(opts, &stdout, &stderr); err != nil {
		t.Fatalf("renderSnapshot() error = %v", err)
	}
	if _, err := os.Stat(opts.out); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "Saved ") {
		t.Errorf("stdout = %q, expected summary", stdout.String())
	}
}

func TestRenderSnapshotDeterministic(t *testing.T) {
	opts := testSnapshotOptions(t)
	opts.out = "-"

	var a, b, discard bytes.Buffer
	if err := renderSnapshot(opts, &a, &discard); err != nil {
		t.Fatalf("renderSnapshot() error = %v", err)
	}
	if err := renderSnapshot(opts, &b, &discard); err != nil {
		t.Fatalf("renderSnapshot() error = %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("same seed produced different images")
	}
}

func TestRenderSnapshotReturnsErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*snapshotOptions)
	}{
		{"zero ticks", func(o *snapshotOptions) { o.ticks = 0 }},
		{"unknown scene", func(o *snapshotOptions) { o.scene = "atlantis" }},
		{"bad density", func(o *snapshotOptions) { o.density = "crowded" }},
		{"viewport too small", func(o *snapshotOptions) { o.width = 10 }},
		{"unwritable output", func(o *snapshotOptions) { o.out = filepath.Join(o.logPath, "city.png") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := testSnapshotOptions(t)
			opts.out = filepath.Join(t.TempDir(), "city.png")
			tc.modify(&opts)

			var stdout, stderr bytes.Buffer
			if err := renderSnapshot(opts, &stdout, &stderr); err == nil {
				t.Error("renderSnapshot() error = nil, expected an error")
			}
		})
	}
}
