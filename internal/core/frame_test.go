package core

import "testing"

func TestNewFrame(t *testing.T) {
	f := NewFrame(80, 24)

	if f.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", f.Width())
	}
	if f.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", f.Height())
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Get(x, y) != Black {
				t.Fatalf("New frame should be black, got %v at (%d, %d)", f.Get(x, y), x, y)
			}
		}
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame(10, 10)
	red := RGB{255, 0, 0}

	f.Set(5, 5, red)
	if f.Get(5, 5) != red {
		t.Errorf("Get(5, 5) = %v, expected %v", f.Get(5, 5), red)
	}

	// Out of bounds should be silent
	f.Set(-1, 0, red)
	f.Set(100, 0, red)
	f.Set(0, -1, red)
	f.Set(0, 100, red)

	if f.Get(-1, 0) != Black {
		t.Error("Out of bounds Get should return black")
	}
	if f.Get(100, 0) != Black {
		t.Error("Out of bounds Get should return black")
	}
}

func TestFramePlotFloors(t *testing.T) {
	f := NewFrame(4, 4)
	f.Plot(2.9, 1.1, White)
	if f.Get(2, 1) != White {
		t.Errorf("Plot(2.9, 1.1) should colour pixel (2, 1)")
	}

	// Negative fractions floor outside the frame
	f.Plot(-0.5, 0, White)
	if f.Get(0, 0) != Black {
		t.Errorf("Plot(-0.5, 0) should not colour pixel (0, 0)")
	}
}

func TestFrameFade(t *testing.T) {
	f := NewFrame(2, 1)
	f.Set(0, 0, White)

	f.Fade(0.5)
	got := f.Get(0, 0)
	if got.R < 120 || got.R > 135 {
		t.Errorf("Fade(0.5) of white should be mid grey, got %v", got)
	}
	if f.Get(1, 0) != Black {
		t.Errorf("Fade should leave black pixels black")
	}

	f.Fade(1)
	if f.Get(0, 0) != Black {
		t.Errorf("Fade(1) should clear the frame")
	}
}

func TestFrameDrawRect(t *testing.T) {
	f := NewFrame(10, 10)
	f.DrawRect(NewRect(2, 2, 3, 3), Paddle)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if f.Get(x, y) != Paddle {
				t.Errorf("DrawRect: expected paddle colour at (%d, %d), got %v", x, y, f.Get(x, y))
			}
		}
	}

	if f.Get(1, 1) != Black {
		t.Error("DrawRect should not affect outside area")
	}
	if f.Get(5, 5) != Black {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(10, 10)
	f.Set(1, 1, White)
	f.Set(8, 8, White)

	f.Resize(5, 4)
	if f.Width() != 5 || f.Height() != 4 {
		t.Errorf("After resize, dimensions should be 5x4, got %dx%d", f.Width(), f.Height())
	}
	if f.Get(1, 1) != White {
		t.Error("Content should be preserved after shrinking")
	}

	f.Resize(12, 12)
	if f.Get(1, 1) != White {
		t.Error("Content should be preserved after enlarging")
	}
	if f.Get(8, 8) != Black {
		t.Error("Content cropped by the shrink should not come back")
	}
}

func TestHSVColumnSweep(t *testing.T) {
	tests := []struct {
		hue      float64
		expected RGB
	}{
		{0, RGB{255, 0, 0}},
		{120, RGB{0, 255, 0}},
		{240, RGB{0, 0, 255}},
		{60, RGB{255, 255, 0}},
	}

	for _, tc := range tests {
		got := HSV(tc.hue, 1, 1)
		if got != tc.expected {
			t.Errorf("HSV(%v, 1, 1) = %v, expected %v", tc.hue, got, tc.expected)
		}
	}
}

func TestRGBHex(t *testing.T) {
	if Paddle.Hex() != "#00dd00" {
		t.Errorf("Hex() = %q, expected #00dd00", Paddle.Hex())
	}
}

func TestFrameFadeReachesBlack(t *testing.T) {
	f := NewFrame(1, 1)
	f.Set(0, 0, White)

	for range 100 {
		f.Fade(0.15)
	}
	if f.Get(0, 0) != Black {
		t.Errorf("repeated fading should end at black, got %v", f.Get(0, 0))
	}
}
