package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skyline/internal/city"
	"github.com/vovakirdan/tui-skyline/internal/config"
	"github.com/vovakirdan/tui-skyline/internal/core"
	"github.com/vovakirdan/tui-skyline/internal/snapshot"
	"github.com/vovakirdan/tui-skyline/internal/storage"
)

// statusFrames is how long a status message stays on the info line.
const statusFrames = 90

// Model is the Bubble Tea model driving one skyline.
type Model struct {
	city     *city.City
	scene    config.Scene
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	paused   bool
	quitting bool
	lastShot *core.Grid // Canvas of the last screenshot

	ticks     uint64 // Ticks advanced, not wrapped
	frames    int
	started   time.Time
	lastFrame time.Time
	fps       float64

	status      string
	statusTimer int
}

// NewModel creates a new Bubble Tea model for the given city.
func NewModel(c *city.City, scene config.Scene, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	return Model{
		city:    c,
		scene:   scene,
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case screenshotMsg:
		if msg.err != nil {
			m.logger.Warn("screenshot failed", "error", msg.err)
			m.setStatus("screenshot failed")
			return m, nil
		}
		m.logger.Info("screenshot saved", "path", msg.path)
		m.setStatus("saved " + filepath.Base(msg.path))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.advance()
		}

	case key.Matches(msg, m.keys.Screenshot):
		return m.screenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize follows the terminal size when auto-sizing is on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if !m.config.AutoSize {
		return m, nil
	}

	w, h := FitViewport(msg.Width, msg.Height)
	w = core.Max(w, 2*int(m.scene.Step)) // Keep step <= width/2
	if cw, ch := m.city.Size(); cw == w && ch == h {
		return m, nil
	}

	m.city.Resize(w, h)
	m.config.ScreenW, m.config.ScreenH = w, h
	m.logger.Debug("viewport resized", "width", w, "height", h)
	return m, nil
}

// handleTick advances one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
			m.fps = 0.9*m.fps + 0.1/dt
		}
	}
	m.lastFrame = now
	m.frames++

	if !m.paused {
		m.advance()
	}
	if m.statusTimer > 0 {
		m.statusTimer--
	}

	return m, tickCmd(m.config.TickRate)
}

// advance runs one engine tick.
func (m *Model) advance() {
	m.city.AdvanceTick()
	m.ticks++
}

// screenshotMsg reports the result of writing a screenshot.
type screenshotMsg struct {
	path string
	err  error
}

// screenshot snapshots the canvas and writes it as PNG under
// ~/.skyline/screenshots off the update loop. A canvas equal to the last
// screenshot is not written again.
func (m Model) screenshot() (tea.Model, tea.Cmd) {
	canvas := m.city.Canvas()
	if m.lastShot != nil && m.lastShot.Equal(canvas) {
		m.setStatus("unchanged since last screenshot")
		return m, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot resolve home directory", "error", err)
		m.setStatus("screenshot failed")
		return m, nil
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", m.scene.Name, timestamp)
	path := filepath.Join(home, ".skyline", "screenshots", filename)

	shot := canvas.Clone()
	m.lastShot = shot
	return m, func() tea.Msg {
		return screenshotMsg{path: path, err: snapshot.WritePNG(path, shot, snapshot.DefaultScale)}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTimer = statusFrames
}

// View renders the info line, the canvas and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.infoLine())
	sb.WriteRune('\n')
	sb.WriteString(RenderCanvas(m.city.Canvas()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// infoLine renders the tick counter and run details.
func (m Model) infoLine() string {
	w, h := m.city.Size()
	info := infoStyle.Render(fmt.Sprintf("tick: %d  seed: %d  scene: %s  %dx%d  buildings: %d  fps: %.0f",
		m.city.Tick(), m.config.Seed, m.scene.Name, w, h, m.city.BuildingCount(), m.fps))

	if m.paused {
		info += "  " + pausedStyle.Render("PAUSED")
	}
	if m.statusTimer > 0 && m.status != "" {
		info += "  " + statusStyle.Render(m.status)
	}
	return info
}

// Record returns the history entry describing this run.
func (m Model) Record() storage.RunRecord {
	w, h := m.city.Size()
	return storage.RunRecord{
		Seed:     m.config.Seed,
		Scene:    m.scene.Name,
		Width:    w,
		Height:   h,
		Step:     m.scene.Step,
		Ticks:    m.ticks,
		Frames:   m.frames,
		Duration: int(time.Since(m.started).Seconds()),
	}
}

// FitViewport derives the canvas size from a terminal size.
// It leaves room for the info and help lines and clamps to the supported minimum.
func FitViewport(termW, termH int) (int, int) {
	w := core.Max(termW-core.AutoPadW, core.MinWidth)
	h := core.Max(termH-core.AutoPadH, core.MinHeight)
	return w, h
}

// Run starts the Bubble Tea program and records the run when it ends.
// SIGINT and SIGTERM stop the program between frames.
func Run(c *city.City, scene config.Scene, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := NewModel(c, scene, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	logger.Info("starting skyline", "scene", scene.Name, "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info("interrupted")
		err = nil
	}

	if fm, ok := final.(Model); ok {
		fm.saveRun()
	}
	return err
}

// saveRun stores the run in history, best effort.
func (m Model) saveRun() {
	rec := m.Record()
	if m.store == nil || rec.Ticks == 0 {
		return
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "seed", rec.Seed, "ticks", rec.Ticks)
}
