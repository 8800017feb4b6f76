package rainbow

import (
	"testing"

	"github.com/vovakirdan/rainbow-breaker/internal/config"
	"github.com/vovakirdan/rainbow-breaker/internal/core"
)

// Test field layout: 40x40 pixels, 4 block rows, paddle 10x2 with its top
// edge at y=35 and its left edge centred at x=15.
const (
	testFieldW  = 40
	testFieldH  = 40
	testPaddleX = 15.0
	testPaddleY = 35.0
)

func testConfig() config.RainbowConfig {
	cfg := config.DefaultRainbowConfig()
	cfg.Field.Width = testFieldW
	cfg.Field.Height = testFieldH
	cfg.Grid.Rows = 4
	cfg.Paddle.Width = 10
	cfg.Paddle.Height = 2
	cfg.Paddle.BottomOffset = 5
	return cfg
}

// newTestGame returns a reset game with no balls in play.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(testConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: 42})
	g.balls.Clear()
	return g
}

// onlyBall returns the single live ball, failing if there is not exactly one.
func onlyBall(t *testing.T, g *Game) Ball {
	t.Helper()
	if g.balls.Len() != 1 {
		t.Fatalf("expected exactly one ball, got %d", g.balls.Len())
	}
	var out Ball
	g.balls.Each(func(_ ID, b *Ball) { out = *b })
	return out
}

// onlyDebris returns the single live particle, failing if there is not exactly one.
func onlyDebris(t *testing.T, g *Game) Debris {
	t.Helper()
	if g.debris.Len() != 1 {
		t.Fatalf("expected exactly one debris particle, got %d", g.debris.Len())
	}
	var out Debris
	g.debris.Each(func(_ ID, d *Debris) { out = *d })
	return out
}
