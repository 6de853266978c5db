package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/momentum-jumper/internal/config"
	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper"
)

// ConfigMsg delivers reloaded tuning to a running model.
type ConfigMsg struct {
	Config config.JumperConfig
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     *jumper.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.InputFrame
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for the game. The game is Reset in Init.
func NewModel(game *jumper.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		pending: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case ConfigMsg:
		m.game.SetConfig(msg.Config)
		m.logger.Info("config reloaded, applies to the next run")
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey queues the intent for the next tick. Quit and screenshot are
// handled immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	charging := m.game.Player().Charging
	if m.pending.Has(core.IntentStartCharge) {
		charging = true
	} else if m.pending.Has(core.IntentReleaseCharge) {
		charging = false
	}
	if intent := m.keys.MapKey(msg, charging); intent != core.IntentNone {
		m.pending.Push(intent)
	}
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.game.Advance(m.pending, dt)
	m.pending = core.NewInputFrame()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen to ~/.jumper/screenshots.
func (m *Model) saveScreenshot() {
	DrawGame(m.screen, m.game.Frame(), m.game.HUD())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawGame(m.screen, m.game.Frame(), m.game.HUD())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game. Config updates sent on
// reload are forwarded to the game until the program exits.
func Run(game *jumper.Game, cfg core.RuntimeConfig, logger *log.Logger, reload <-chan config.JumperConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	done := make(chan struct{})
	defer close(done)
	if reload != nil {
		go func() {
			for {
				select {
				case c, ok := <-reload:
					if !ok {
						return
					}
					p.Send(ConfigMsg{Config: c})
				case <-done:
					return
				}
			}
		}()
	}

	_, err := p.Run()
	return err
}
