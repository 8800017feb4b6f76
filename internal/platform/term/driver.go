// Package term is a tcell frame driver for Rainbow Breaker. It paints the
// game's pixel frame straight into terminal cells and reads pointer motion
// on its own goroutine, so paddle updates land while a step is running.
package term

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
	"github.com/vovakirdan/rainbow-breaker/internal/games/rainbow"
)

// nudgeStep is how far one left/right key press moves the paddle, in pixels.
const nudgeStep = 4.0

// Options configures the tcell driver.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Driver runs one game on one tcell screen.
type Driver struct {
	screen  tcell.Screen
	game    *rainbow.Game
	frame   *core.Frame // Persists across ticks so trails can fade
	clock   *core.FrameClock
	runtime core.RuntimeConfig
	logger  *log.Logger
	styles  map[cellColors]tcell.Style

	// session guards game.Reset against pointer updates from the event
	// goroutine. Step never takes it: the paddle position is atomic.
	session sync.RWMutex
}

// NewDriver creates a driver and starts a fresh session on game. A zero
// field size in opts is filled from the screen, two pixels per row with
// the bottom row kept for the status line.
func NewDriver(screen tcell.Screen, game *rainbow.Game, opts Options) *Driver {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cols, rows := screen.Size()
	if cfg.FieldW <= 0 {
		cfg.FieldW = cols
	}
	if cfg.FieldH <= 0 {
		cfg.FieldH = max(rows-1, 0) * 2
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		screen:  screen,
		game:    game,
		runtime: cfg,
		logger:  logger,
		styles:  make(map[cellColors]tcell.Style),
	}
	d.reset()
	return d
}

// reset (re)starts the session with the driver's runtime config.
func (d *Driver) reset() {
	d.session.Lock()
	d.game.Reset(d.runtime)
	d.session.Unlock()

	w, h := d.game.FieldSize()
	if d.frame == nil {
		d.frame = core.NewFrame(w, h)
	} else {
		d.frame.Resize(w, h)
		d.frame.Clear()
	}
	physics := d.game.Config().Physics
	d.clock = core.NewFrameClock(physics.ReferenceHz, physics.MaxDelta)
}

// Run initialises the terminal, plays game until the user quits or ctx is
// cancelled, and restores the terminal.
func Run(ctx context.Context, game *rainbow.Game, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	d := NewDriver(screen, game, opts)
	d.logger.Info("driver started", "driver", "tcell", "tick_rate", d.runtime.TickRate)
	d.Loop(ctx)
	d.logger.Info("driver stopped", "driver", "tcell", "stats", fmt.Sprintf("%+v", game.Stats()))
	return nil
}

// Loop runs the tick loop until the user quits or ctx is cancelled.
// Once the grid is cleared the ticker is stopped; input is still handled.
func (d *Driver) Loop(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go d.pollEvents(ctx, events)

	interval := time.Second / time.Duration(d.runtime.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	tick := ticker.C

	d.draw()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			switch d.handleEvent(ev) {
			case actionQuit:
				return
			case actionRestart:
				ticker.Reset(interval)
				tick = ticker.C
			}
			d.draw()

		case now := <-tick:
			if d.tick(now) {
				// Nothing moves any more; a nil channel never fires
				ticker.Stop()
				tick = nil
			}
		}
	}
}

// pollEvents forwards terminal events to the loop. Pointer motion is
// applied here directly.
func (d *Driver) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			// Screen finalised
			return
		}

		if mouse, ok := ev.(*tcell.EventMouse); ok {
			x, _ := mouse.Position()
			d.setPointer(x)
			continue
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// setPointer moves the paddle under terminal column col.
func (d *Driver) setPointer(col int) {
	d.session.RLock()
	defer d.session.RUnlock()

	fieldW, _ := d.game.FieldSize()
	cols, _ := d.screen.Size()
	x := float64(col)
	if cols > 0 && cols != fieldW {
		x = x * float64(fieldW) / float64(cols)
	}
	d.game.SetPointerX(x)
}

// tick advances and redraws the game. It reports whether the grid is cleared.
func (d *Driver) tick(now time.Time) bool {
	dt := d.clock.Delta(now)
	result := d.game.Step(dt)
	d.game.Render(d.frame)
	d.draw()
	return result.Cleared
}

// action is the loop-level outcome of an input event.
type action int

const (
	actionNone action = iota
	actionQuit
	actionRestart
)

// handleEvent applies a key or resize event.
func (d *Driver) handleEvent(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)

	case *tcell.EventResize:
		d.screen.Sync()
	}
	return actionNone
}

// handleKey maps keys to game input.
func (d *Driver) handleKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		d.game.NudgePaddle(-nudgeStep)
		return actionNone
	case tcell.KeyRight:
		d.game.NudgePaddle(nudgeStep)
		return actionNone
	case tcell.KeyEscape:
		d.togglePause()
		return actionNone
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch ev.Rune() {
	case 'q':
		return actionQuit
	case 'h', 'a':
		d.game.NudgePaddle(-nudgeStep)
	case 'l', 'd':
		d.game.NudgePaddle(nudgeStep)
	case 'p':
		d.togglePause()
	case 'r':
		d.runtime.Seed = time.Now().UnixNano()
		d.reset()
		d.logger.Info("session restarted", "seed", d.runtime.Seed)
		return actionRestart
	}
	return actionNone
}

func (d *Driver) togglePause() {
	if !d.game.TogglePause() {
		// Paused time must not show up as one huge dt
		d.clock.Reset(time.Now())
	}
}
