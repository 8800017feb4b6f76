package rainbow

import (
	"math"

	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	PaddleX   float64
	Remaining int
	Cleared   bool

	// Each ball is 5 values: X, Y, VX, VY, packed RGB
	BallCount int
	BallData  []float64

	// Each particle is 5 values: X, Y, VX, VY, packed RGB
	DebrisCount int
	DebrisData  []float64

	// Live cells as row-major indices
	BlockData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, g.balls.Len()*5)
	g.balls.Each(func(_ ID, b *Ball) {
		ballData = append(ballData, b.X, b.Y, b.VX, b.VY, packRGB(b.Color))
	})

	debrisData := make([]float64, 0, g.debris.Len()*5)
	g.debris.Each(func(_ ID, d *Debris) {
		debrisData = append(debrisData, d.X, d.Y, d.VX, d.VY, packRGB(d.Color))
	})

	blockData := make([]int, 0, g.grid.Remaining())
	g.grid.Each(func(b Block) {
		blockData = append(blockData, b.GridY*g.grid.Width()+b.GridX)
	})

	return Snapshot{
		Tick:        g.ticks,
		PaddleX:     g.paddle.X(),
		Remaining:   g.grid.Remaining(),
		Cleared:     g.cleared,
		BallCount:   g.balls.Len(),
		BallData:    ballData,
		DebrisCount: g.debris.Len(),
		DebrisData:  debrisData,
		BlockData:   blockData,
		RNGState:    g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Remaining)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DebrisCount) //#nosec G115 -- hash computation
	if snap.Cleared {
		h = h*31 + 1
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.DebrisData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}

// packRGB folds a colour into one float so it hashes with the positions.
func packRGB(c core.RGB) float64 {
	return float64(int(c.R)<<16 | int(c.G)<<8 | int(c.B))
}
