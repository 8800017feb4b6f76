package rainbow

import (
	"math"
	"sync/atomic"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// Paddle is the player's catcher. Its x position is written by the input
// side and read by the physics step, possibly from different goroutines,
// so it is stored atomically. Y and size are fixed for a session.
type Paddle struct {
	x      atomic.Uint64 // math.Float64bits of the left edge
	Y      float64
	Width  float64
	Height float64
	maxX   float64
}

// NewPaddle creates a paddle centred in a field fieldW pixels wide.
func NewPaddle(fieldW, y, width, height float64) *Paddle {
	p := &Paddle{
		Y:      y,
		Width:  width,
		Height: height,
		maxX:   math.Max(fieldW-width, 0),
	}
	p.SetX((fieldW - width) / 2)
	return p
}

// X returns the left edge.
func (p *Paddle) X() float64 {
	return math.Float64frombits(p.x.Load())
}

// SetX moves the left edge, clamped to [0, fieldWidth - width].
func (p *Paddle) SetX(x float64) {
	if math.IsNaN(x) {
		return
	}
	p.x.Store(math.Float64bits(core.ClampF(x, 0, p.maxX)))
}

// Rect returns the paddle's hit rectangle.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X(), Y: p.Y, W: p.Width, H: p.Height}
}

// Hit reports whether the point lies on the paddle, edges included.
func (p *Paddle) Hit(x, y float64) bool {
	return p.Rect().ContainsPoint(x, y)
}
