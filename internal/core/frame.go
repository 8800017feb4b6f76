package core

import "math"

// Frame is a 2D pixel buffer the game draws into. It decouples the
// simulation from the terminal: drivers decide how pixels become cells.
type Frame struct {
	width  int
	height int
	pixels []RGB
}

// NewFrame creates a new black frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Resize changes the frame dimensions, preserving content where possible.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == f.width && height == f.height && f.pixels != nil {
		return
	}

	old := f.pixels
	oldW, oldH := f.width, f.height

	f.width = width
	f.height = height
	f.pixels = make([]RGB, width*height)

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(f.pixels[y*width:y*width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// Clear fills the entire frame with black.
func (f *Frame) Clear() {
	f.Fill(Black)
}

// Fill fills the entire frame with the given colour.
func (f *Frame) Fill(c RGB) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Fade darkens every pixel toward black by amount.
func (f *Frame) Fade(amount float64) {
	if amount <= 0 {
		return
	}
	if amount >= 1 {
		f.Clear()
		return
	}
	for i, c := range f.pixels {
		if !c.IsBlack() {
			f.pixels[i] = c.Fade(amount)
		}
	}
}

// Set colours the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = c
}

// Plot colours the pixel containing the continuous point (x, y).
func (f *Frame) Plot(x, y float64, c RGB) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	f.Set(int(math.Floor(x)), int(math.Floor(y)), c)
}

// Get returns the colour at the given position.
// Returns black for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.pixels[y*f.width+x]
}

// DrawRect fills a rectangular area with the given colour.
func (f *Frame) DrawRect(r Rect, c RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.Set(x, y, c)
		}
	}
}
