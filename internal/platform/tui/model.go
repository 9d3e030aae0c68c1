package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// holdDuration is how long a key press keeps the paddle moving.
// Terminals report presses and auto-repeats but never releases.
const holdDuration = 200 * time.Millisecond

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Pong    config.PongConfig
	Audio   *audio.Player // nil plays nothing

	// ScreenshotDir receives ctrl+s captures.
	// If empty, defaults to ~/.tui-pong/screenshots.
	ScreenshotDir string

	// NoScreenshots disables ctrl+s, for sessions that do not own the host.
	NoScreenshots bool
}

// Model is the Bubble Tea model for a single pong match.
type Model struct {
	match  *pong.Match
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	audio  *audio.Player
	config core.RuntimeConfig

	screenshotDir string
	noScreenshots bool

	intent    int
	holdTicks int
	holdFor   int
	drag      *float64
	pending   []pong.Command

	quitting bool
}

// NewModel creates a model with a fresh match in the menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		match:   pong.NewSeeded(opts.Pong, cfg.Seed),
		screen:  core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    h,
		audio:   opts.Audio,
		config:  cfg,
		holdFor: max(int(holdDuration/tickInterval(cfg.TickRate)), 1),

		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
	}
}

// arenaRows leaves the last terminal row for the help line.
func arenaRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, arenaRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues commands and refreshes the held direction.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) && !m.noScreenshots {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionDown:
		m.intent = action.Intent()
		m.holdTicks = m.holdFor
	case core.ActionConfirm:
		m.pending = append(m.pending, pong.CommandStart)
	case core.ActionRestart:
		m.pending = append(m.pending, pong.CommandRestart)
	case core.ActionBack:
		m.pending = append(m.pending, pong.CommandMenu)
		m.intent = 0
		m.holdTicks = 0
	}

	return m, nil
}

// handleMouse turns a left-button drag into absolute paddle positions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.drag = nil
		m.intent = 0
		m.holdTicks = 0
	case msg.Button == tea.MouseButtonLeft &&
		(msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion):
		_, arenaH := m.match.ArenaSize()
		y := pong.ArenaY(msg.Y, m.screen.Height(), arenaH) - m.match.Player().H/2
		m.drag = &y
	}
	return m, nil
}

// handleTick feeds the collected input to the match and schedules the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	ev := m.match.Step(pong.Input{
		Intent:   m.intent,
		Drag:     m.drag,
		Commands: m.pending,
	})
	m.pending = nil

	if m.holdTicks > 0 {
		m.holdTicks--
		if m.holdTicks == 0 {
			m.intent = 0
		}
	}

	m.audio.Play(ev)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current arena as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.match.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: get home directory: %w", err)
		}
		dir = filepath.Join(home, ".tui-pong", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("pong_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Match returns the match driven by the model.
func (m Model) Match() *pong.Match {
	return m.match
}

// Run starts a local Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
