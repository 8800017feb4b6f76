package rainbow

import "github.com/vovakirdan/rainbow-breaker/internal/core"

// Block is a single destructible grid cell.
type Block struct {
	GridX, GridY int
	Color        core.RGB
}

// cell is one slot of the grid; live is false once the block is removed.
type cell struct {
	block Block
	live  bool
}

// Grid owns the rectangular block field.
// Cells are stored in row-major order: index = row*width + col.
type Grid struct {
	width     int
	height    int
	cells     []cell
	remaining int
}

// NewGrid creates a fully populated grid. Every block in a column shares a
// colour; hue sweeps 0-360 degrees across the columns.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}

	for col := range width {
		color := ColumnColor(col, width)
		for row := range height {
			g.cells[row*width+col] = cell{
				block: Block{GridX: col, GridY: row, Color: color},
				live:  true,
			}
		}
	}
	g.remaining = width * height

	return g
}

// ColumnColor returns the block colour for a column of a grid width columns wide.
func ColumnColor(col, width int) core.RGB {
	if width <= 0 {
		return core.HSV(0, 1, 1)
	}
	return core.HSV(360*float64(col)/float64(width), 1, 1)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Capacity returns the number of cells, live or not.
func (g *Grid) Capacity() int {
	return g.width * g.height
}

// Remaining returns the number of live blocks.
func (g *Grid) Remaining() int {
	return g.remaining
}

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Lookup returns the live block at (col, row).
// Returns false for empty cells and out-of-range coordinates.
func (g *Grid) Lookup(col, row int) (Block, bool) {
	if !g.InBounds(col, row) {
		return Block{}, false
	}
	c := g.cells[row*g.width+col]
	if !c.live {
		return Block{}, false
	}
	return c.block, true
}

// Remove clears the cell at (col, row) and returns the block it held.
// Removing an empty or out-of-range cell returns false and changes nothing.
func (g *Grid) Remove(col, row int) (Block, bool) {
	if !g.InBounds(col, row) {
		return Block{}, false
	}
	c := &g.cells[row*g.width+col]
	if !c.live {
		return Block{}, false
	}
	c.live = false
	g.remaining--
	return c.block, true
}

// Each calls fn for every live block in row-major order.
func (g *Grid) Each(fn func(Block)) {
	for _, c := range g.cells {
		if c.live {
			fn(c.block)
		}
	}
}
