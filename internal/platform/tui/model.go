package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
	"github.com/vovakirdan/rainbow-breaker/internal/games/rainbow"
)

// Options configures the Bubble Tea driver.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running a Rainbow Breaker session.
type Model struct {
	game    *rainbow.Game
	frame   *core.Frame // Persists across ticks so trails can fade
	clock   *core.FrameClock
	pixels  *pixelRenderer
	runtime core.RuntimeConfig
	logger  *log.Logger

	keys  KeyMap
	help  help.Model
	theme Theme

	tickID   int // Session generation; ticks with another ID are stale
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model and starts a fresh session on game.
func NewModel(game *rainbow.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	w, h := game.FieldSize()

	physics := game.Config().Physics

	hm := help.New()
	hm.ShowAll = false

	return Model{
		game:    game,
		frame:   core.NewFrame(w, h),
		clock:   core.NewFrameClock(physics.ReferenceHz, physics.MaxDelta),
		pixels:  newPixelRenderer(),
		runtime: cfg,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    hm,
		theme:   DefaultTheme(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.game.SetPointerX(m.pointerX(msg.X))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.game.NudgePaddle(-nudgeStep)

	case key.Matches(msg, m.keys.Right):
		m.game.NudgePaddle(nudgeStep)

	case key.Matches(msg, m.keys.Pause):
		if !m.game.TogglePause() {
			// Paused time must not show up as one huge dt
			m.clock.Reset(time.Now())
		}

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	return m, nil
}

// restart begins a new session with a fresh seed. Ticks already in flight
// belong to the old session and are ignored once they arrive.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.runtime.Seed = time.Now().UnixNano()
	if m.width > 0 && m.height > 1 {
		m.runtime.FieldW = m.width
		m.runtime.FieldH = (m.height - 1) * 2
	}

	m.game.Reset(m.runtime)
	m.frame.Clear()
	physics := m.game.Config().Physics
	m.clock = core.NewFrameClock(physics.ReferenceHz, physics.MaxDelta)
	m.tickID++

	m.logger.Info("session restarted", "seed", m.runtime.Seed)

	return m, tickCmd(m.tickID, m.runtime.TickRate)
}

// handleTick advances the simulation and redraws the frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.tickID {
		return m, nil
	}

	dt := m.clock.Delta(msg.Time)
	result := m.game.Step(dt)
	m.game.Render(m.frame)

	if result.Cleared {
		// Nothing moves any more; stop scheduling ticks
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.tickID, m.runtime.TickRate)
}

// pointerX converts a terminal column to a field x coordinate.
func (m Model) pointerX(col int) float64 {
	fieldW, _ := m.game.FieldSize()
	if m.width <= 0 || m.width == fieldW {
		return float64(col)
	}
	return float64(col) * float64(fieldW) / float64(m.width)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.pixels.Rows(m.frame)
	placeOverlay(rows, m.game.Overlay(), m.frame.Width(), m.theme)

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine shows the session counters followed by the key help.
func (m Model) statusLine() string {
	s := m.game.Stats()
	t := m.theme

	sep := t.StatusSep.Render(" │ ")
	return t.StatusLabel.Render("blocks ") + t.StatusValue.Render(fmt.Sprintf("%d/%d", s.Remaining, s.Total)) +
		sep + t.StatusLabel.Render("balls ") + t.StatusValue.Render(fmt.Sprintf("%d", s.Balls)) +
		sep + t.StatusLabel.Render("debris ") + t.StatusValue.Render(fmt.Sprintf("%d", s.Debris)) +
		sep + m.help.View(m.keys)
}

// Run starts the Bubble Tea program on game and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, game *rainbow.Game, opts Options) error {
	model := NewModel(game, opts)
	model.logger.Info("driver started", "driver", "tui", "tick_rate", model.runtime.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion steers the paddle
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}

	model.logger.Info("driver stopped", "driver", "tui", "stats", fmt.Sprintf("%+v", game.Stats()))
	return nil
}
