package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Game is what the terminal loop drives. Step is called once per tick with
// the actions collected since the previous tick.
type Game interface {
	ID() string
	Title() string
	Size() (width, height int)
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen, at time.Duration)
	State() core.GameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      core.Clock
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	start      time.Time
	now        func() time.Time
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model for game and resets it with cfg.
// A zero seed is replaced with a time-based one.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	w, h := game.Size()
	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(w, h),
		config:     cfg,
		clock:      core.NewClock(cfg.TickRate),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		now:        time.Now,
		logger:     logger,
	}
	m.start = m.now()

	logger.Info("run started", "game", game.ID(), "seed", cfg.Seed, "fps", m.clock.FPS(), "world", [2]int{w, h})
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.inputFrame.Push(m.keys.MapKey(msg))
		return m, nil

	case tea.MouseMsg:
		m.inputFrame.Push(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step with the actions queued since the
// last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Time = m.now().Sub(m.start)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	m.inputFrame.Clear()

	if m.gameState.Terminated() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.clock.TickInterval())
}

func (m Model) logTransition(prev, next core.GameState) {
	if prev.Status == next.Status {
		return
	}
	switch next.Status {
	case core.StatusPaused:
		m.logger.Info("paused", "frame", next.Frame, "score", next.Score)
	case core.StatusRunning:
		m.logger.Info("resumed", "frame", next.Frame)
	case core.StatusTerminated:
		m.logger.Info("run terminated", "reason", next.Reason, "score", next.Score, "frame", next.Frame)
	}
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.now().Sub(m.start))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays game in the terminal until it terminates and returns the final
// state.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
