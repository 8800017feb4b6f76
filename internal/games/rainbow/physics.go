package rainbow

import (
	"math"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// scatterBase and scatterOffset shape the post-hit debris direction. They
// are fixed tuning constants: vx = cos(theta + 2π/(scatterBase·u) - scatterOffset) * speed.
const (
	scatterBase   = 30.0
	scatterOffset = 15.0
)

// trailPoint is a sub-step ball position recorded for rendering.
type trailPoint struct {
	X, Y  float64
	Color core.RGB
}

// subSteps returns the number of unit-length moves for a ball of the given
// speed. Zero, negative and non-finite speeds move nothing.
func subSteps(speed float64) int {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return 0
	}
	return int(math.Ceil(speed))
}

// cellOf maps a continuous coordinate to its grid index (rounded down).
// Values too large for an index map to -1, which every bounds test rejects.
func cellOf(v float64) int {
	f := math.Floor(v)
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return -1
	}
	return int(f)
}

// scatterVX returns the horizontal velocity of debris knocked loose by a
// ball travelling at heading theta. u must lie in (0, 1).
func scatterVX(theta, u, speed float64) float64 {
	return math.Cos(theta+2*math.Pi/(scatterBase*u)-scatterOffset) * speed
}

// stepBalls advances every ball by dt, resolving grid, wall and paddle
// collisions at each sub-step, then drops balls that left the field.
func (g *Game) stepBalls(dt float64) {
	paddle := g.paddle.Rect()
	fieldW := float64(g.fieldW)
	fieldH := float64(g.fieldH)

	g.balls.Each(func(id ID, b *Ball) {
		speed := math.Hypot(b.VX, b.VY)
		n := subSteps(speed)
		if n == 0 {
			return
		}
		theta := math.Atan2(b.VY, b.VX)

		for range n {
			b.X += b.VX / speed * dt
			b.Y += b.VY / speed * dt
			g.trail = append(g.trail, trailPoint{X: b.X, Y: b.Y, Color: b.Color})

			// Grid
			if block, ok := g.grid.Remove(cellOf(b.X), cellOf(b.Y)); ok {
				g.spawnDebris(block, theta)
				b.VY = -b.VY
			}

			// Walls
			if (b.X < 0 && b.VX < 0) || (b.X > fieldW && b.VX > 0) {
				b.VX = -b.VX
			}
			if b.Y < 0 && b.VY < 0 {
				b.VY = -b.VY
			}

			// Bottom exit
			if b.Y > fieldH {
				g.balls.Mark(id)
			}

			// Paddle, only once the ball is past its top edge
			if b.Y > paddle.Y && paddle.ContainsPoint(b.X, b.Y) {
				b.VY = -math.Abs(b.VY)
			}
		}
	})

	if lost := g.balls.Sweep(); lost > 0 {
		g.lostBalls += lost
	}
}

// spawnDebris turns a removed block into a falling particle.
func (g *Game) spawnDebris(block Block, theta float64) {
	g.debris.Add(Debris{
		Col:   block.GridX,
		Row:   block.GridY,
		X:     float64(block.GridX),
		Y:     float64(block.GridY),
		VX:    scatterVX(theta, g.rng.Open(), g.cfg.Physics.DebrisSpeed),
		VY:    g.cfg.Physics.DebrisLift,
		Color: block.Color,
	})
}

// stepDebris applies gravity to every particle, converts particles caught
// by the paddle into new balls and drops particles that fell out.
func (g *Game) stepDebris(dt float64) {
	paddle := g.paddle.Rect()
	fieldH := float64(g.fieldH)
	gravity := g.cfg.Physics.Gravity

	g.debris.Each(func(id ID, d *Debris) {
		d.VY += gravity * dt
		d.X += d.VX * dt
		d.Y += d.VY * dt

		if paddle.ContainsPoint(d.X, d.Y) {
			g.balls.Add(g.newBall(d.X, d.Y, d.Color))
			g.debris.Mark(id)
			g.caught++
		} else if d.Y > fieldH {
			g.debris.Mark(id)
		}
	})

	g.debris.Sweep()
}

// newBall creates a ball spawned from caught debris.
func (g *Game) newBall(x, y float64, color core.RGB) Ball {
	b := g.cfg.Ball
	return Ball{
		X:     x,
		Y:     y,
		VX:    g.rng.Range(0, b.SpawnVXMax),
		VY:    g.rng.Range(b.SpawnVYMin, b.SpawnVYMax),
		Color: color,
	}
}
