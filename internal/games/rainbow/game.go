// Package rainbow implements the Rainbow Breaker simulation: a block grid,
// bouncing balls, and falling debris that the paddle turns into more balls.
// The package contains pure game logic; drivers own timing, input and output.
package rainbow

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainbow-breaker/internal/config"
	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// Field size used when neither the config nor the driver picks one.
const (
	DefaultFieldW = 120
	DefaultFieldH = 80
)

// Stats summarises the live state for status lines and logs.
type Stats struct {
	Remaining int
	Total     int
	Balls     int
	Debris    int
	Caught    int
	Lost      int
	Ticks     uint64
	Elapsed   float64 // Sum of dt, in reference ticks
}

// Game is the complete state of one session. It is created once and handed
// to a driver, which calls Step on every tick and Render after it.
type Game struct {
	// Configuration
	cfg     config.RainbowConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	// Layout
	fieldW   int
	fieldH   int
	fieldErr error

	// Game objects
	grid   *Grid
	balls  *Set[Ball]
	debris *Set[Debris]
	paddle *Paddle
	rng    *core.SimpleRNG

	// Render scratch, refilled every step
	trail      []trailPoint
	lastPaddle core.Rect

	// Session state
	ticks     uint64
	elapsed   float64
	caught    int
	lostBalls int
	paused    bool
	cleared   bool
}

// New creates a game with the given configuration. Call Reset before use.
// A nil logger discards output.
func New(cfg config.RainbowConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
	}
}

// Reset starts a fresh session: full grid, one ball, centred paddle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.calculateLayout()

	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.grid = NewGrid(g.fieldW, g.cfg.Grid.Rows)
	g.balls = NewSet[Ball](16)
	g.debris = NewSet[Debris](256)

	paddleY := float64(g.fieldH - g.cfg.Paddle.BottomOffset)
	g.paddle = NewPaddle(float64(g.fieldW), paddleY, float64(g.cfg.Paddle.Width), float64(g.cfg.Paddle.Height))
	g.lastPaddle = g.paddle.Rect().Cell()

	g.trail = g.trail[:0]
	g.ticks = 0
	g.elapsed = 0
	g.caught = 0
	g.lostBalls = 0
	g.paused = false
	g.cleared = false

	if g.fieldErr != nil {
		g.logger.Warn("field does not fit the configuration", "width", g.fieldW, "height", g.fieldH, "error", g.fieldErr)
		return
	}

	b := g.cfg.Ball
	g.balls.Add(Ball{
		X:     float64(g.fieldW) / 2,
		Y:     float64(g.fieldH) / 2,
		VX:    g.rng.Range(0, b.StartVXMax),
		VY:    g.rng.Range(b.StartVYMin, b.StartVYMax),
		Color: core.White,
	})

	g.logger.Info("session started",
		"seed", runtime.Seed,
		"field", fmt.Sprintf("%dx%d", g.fieldW, g.fieldH),
		"grid", fmt.Sprintf("%dx%d", g.grid.Width(), g.grid.Height()),
		"blocks", g.grid.Remaining(),
	)
}

// calculateLayout resolves the field size from config, driver, then defaults.
func (g *Game) calculateLayout() {
	g.fieldW = g.cfg.Field.Width
	if g.fieldW <= 0 {
		g.fieldW = g.runtime.FieldW
	}
	if g.fieldW <= 0 {
		g.fieldW = DefaultFieldW
	}

	g.fieldH = g.cfg.Field.Height
	if g.fieldH <= 0 {
		g.fieldH = g.runtime.FieldH
	}
	if g.fieldH <= 0 {
		g.fieldH = DefaultFieldH
	}

	g.fieldErr = g.cfg.ValidateField(g.fieldW, g.fieldH)
}

// Step advances the simulation by dt reference ticks.
// Once the grid is cleared every further call is a no-op that reports Cleared.
func (g *Game) Step(dt float64) core.StepResult {
	if g.cleared {
		return core.StepResult{Cleared: true}
	}
	if g.fieldErr != nil {
		return core.StepResult{}
	}
	if g.paused {
		return core.StepResult{Paused: true}
	}

	g.ticks++
	g.elapsed += dt
	g.trail = g.trail[:0]

	g.stepBalls(dt)
	g.stepDebris(dt)

	if g.grid.Remaining() == 0 {
		g.cleared = true
		g.logger.Info("grid cleared",
			"ticks", g.ticks,
			"elapsed", g.elapsed,
			"balls", g.balls.Len(),
			"caught", g.caught,
		)
	}

	return core.StepResult{Cleared: g.cleared}
}

// SetPointerX centres the paddle on a pointer x coordinate in field pixels.
// Safe to call from an input goroutine while Step runs elsewhere.
func (g *Game) SetPointerX(x float64) {
	g.paddle.SetX(x - g.paddle.Width/2)
}

// NudgePaddle moves the paddle horizontally by dx pixels.
func (g *Game) NudgePaddle(dx float64) {
	g.paddle.SetX(g.paddle.X() + dx)
}

// PaddleX returns the paddle's left edge.
func (g *Game) PaddleX() float64 {
	return g.paddle.X()
}

// TogglePause flips the paused state and returns the new value.
// A cleared game cannot be paused.
func (g *Game) TogglePause() bool {
	if g.cleared {
		return false
	}
	g.paused = !g.paused
	return g.paused
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Cleared reports whether every block has been destroyed.
func (g *Game) Cleared() bool {
	return g.cleared
}

// FieldSize returns the play-field dimensions in pixels.
func (g *Game) FieldSize() (width, height int) {
	return g.fieldW, g.fieldH
}

// Grid exposes the block grid.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Balls exposes the live balls.
func (g *Game) Balls() *Set[Ball] {
	return g.balls
}

// Debris exposes the falling particles.
func (g *Game) Debris() *Set[Debris] {
	return g.debris
}

// Stats returns counters describing the current session.
func (g *Game) Stats() Stats {
	return Stats{
		Remaining: g.grid.Remaining(),
		Total:     g.grid.Capacity(),
		Balls:     g.balls.Len(),
		Debris:    g.debris.Len(),
		Caught:    g.caught,
		Lost:      g.lostBalls,
		Ticks:     g.ticks,
		Elapsed:   g.elapsed,
	}
}

// Overlay returns centred text lines the driver should draw over the
// field: the caption once cleared, a pause banner, or a size warning.
func (g *Game) Overlay() []string {
	switch {
	case g.fieldErr != nil:
		return []string{
			"Window too small",
			fmt.Sprintf("Need %dx%d pixels", g.cfg.Paddle.Width, g.cfg.Grid.Rows+g.cfg.Paddle.BottomOffset+1),
		}
	case g.cleared:
		return g.cfg.Render.Caption
	case g.paused:
		return []string{"PAUSED", "Press P to resume"}
	default:
		return nil
	}
}

// Render draws the current state into dst, which should persist across
// frames: the previous image is faded rather than cleared, leaving trails.
func (g *Game) Render(dst *core.Frame) {
	if dst.Width() != g.fieldW || dst.Height() != g.fieldH {
		dst.Resize(g.fieldW, g.fieldH)
	}

	dst.Fade(g.cfg.Render.TrailFade)

	// Erase the paddle where it was last drawn
	dst.DrawRect(g.lastPaddle, core.Black)

	// Draw blocks
	g.grid.Each(func(b Block) {
		dst.Set(b.GridX, b.GridY, b.Color)
	})

	// Draw ball paths
	for _, p := range g.trail {
		dst.Plot(p.X, p.Y, p.Color)
	}

	// Draw balls
	g.balls.Each(func(_ ID, b *Ball) {
		dst.Plot(b.X, b.Y, b.Color)
	})

	// Draw debris
	g.debris.Each(func(_ ID, d *Debris) {
		dst.Plot(d.X, d.Y, d.Color)
	})

	// Draw paddle
	g.lastPaddle = g.paddle.Rect().Cell()
	dst.DrawRect(g.lastPaddle, core.Paddle)
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.RainbowConfig {
	return g.cfg
}
