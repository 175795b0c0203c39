package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flick-arena/internal/config"
	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

// Muter toggles sound output. *audio.Player satisfies it.
type Muter interface {
	ToggleMute() bool
}

// Options configures a play session.
type Options struct {
	Config core.RuntimeConfig
	Input  config.InputConfig
	Audio  Muter       // nil disables the mute key
	Logger *log.Logger // nil discards
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	engine    *sim.Engine
	screen    *core.Screen
	config    core.RuntimeConfig
	input     config.InputConfig
	audio     Muter
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	frame     core.InputFrame
	aim       *Aim
	lastState sim.State
	quitting  bool
}

// NewModel creates a new Bubble Tea model around a ready engine.
func NewModel(engine *sim.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(discard{})
	}

	m := Model{
		engine:    engine,
		config:    opts.Config,
		input:     opts.Input,
		audio:     opts.Audio,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		frame:     core.NewInputFrame(),
		lastState: engine.State(),
	}
	m.screen = core.NewScreen(opts.Config.ScreenW, m.arenaRows())
	return m
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// arenaRows is the terminal height left after the help footer.
func (m Model) arenaRows() int {
	rows := 1
	if m.help.ShowAll {
		rows = len(m.keys.FullHelp()[0])
	}
	return core.Max(m.config.ScreenH-rows, 4)
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			muted := m.audio.ToggleMute()
			m.logger.Info("audio toggled", "muted", muted)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.arenaRows())
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}

	return m, nil
}

// projection maps the current level onto the screen buffer.
func (m Model) projection() Projection {
	lv := m.engine.Level()
	return NewProjection(lv.Width, lv.Height, m.screen.Width(), m.screen.Height())
}

// handleMouse turns a left-button drag into an impulse on release. The
// impulse points from the release point back to the press point, like
// pulling a slingshot.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	proj := m.projection()
	pos := proj.ToWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && proj.Area.Contains(msg.X, msg.Y) {
			m.aim = &Aim{From: pos, To: pos}
		}
	case tea.MouseActionMotion:
		if m.aim != nil {
			m.aim = &Aim{From: m.aim.From, To: pos}
		}
	case tea.MouseActionRelease:
		if m.aim != nil {
			if imp, ok := FlickImpulse(m.aim.From, pos, m.input); ok {
				m.frame.SetImpulse(imp)
			}
			m.aim = nil
		}
	}

	return m, nil
}

// FlickImpulse converts a drag from start to end into an impulse.
// Drags shorter than MinDrag are ignored.
func FlickImpulse(start, end core.Vec2, in config.InputConfig) (core.Vec2, bool) {
	d := start.Sub(end)
	if d.IsZero() || d.Len() < in.MinDrag {
		return core.Vec2{}, false
	}
	return d.Scale(in.ImpulseScale), true
}

// handleResize processes window resize events. The arena keeps running;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.arenaRows())
	return m, nil
}

// handleTick applies the input collected since the last tick and steps
// the engine by one fixed frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Has(core.ActionPause) {
		m.engine.TogglePause()
	}
	if m.frame.Has(core.ActionAdvance) {
		m.engine.Advance()
	}
	if m.frame.Has(core.ActionImpulse) {
		if !m.engine.ApplyImpulse(m.frame.Impulse) {
			m.logger.Debug("impulse rejected", "cooldown", m.engine.CooldownPercent())
		}
	}

	m.engine.Step(m.config.FrameDelta())

	if st := m.engine.State(); st != m.lastState {
		m.logger.Info("state changed", "from", m.lastState, "to", st, "level", m.engine.LevelNumber())
		m.lastState = st
		if st != sim.StateRunning {
			m.aim = nil
		}
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	Draw(m.screen, m.engine.Snapshot(), m.aim)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flick", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.engine.LevelNumber(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	Draw(m.screen, m.engine.Snapshot(), m.aim)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for engine.
func Run(engine *sim.Engine, opts Options) error {
	model := NewModel(engine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag to flick
	)

	_, err := p.Run()
	return err
}
