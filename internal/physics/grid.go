package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection.
// Rectangles are inserted by index into every cell they cover; queries visit
// the cells a rectangle covers. Positions outside the grid clamp to the edge
// cells, so off-screen objects are still found.
type SpatialGrid struct {
	originX     float64
	originY     float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that overlap a grid cell.
// The slice is reused between ticks (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering bounds with square cells.
func NewSpatialGrid(bounds Rect, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(bounds.W / cellSize))
	rows := int(math.Ceil(bounds.H / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		originX:     bounds.X,
		originY:     bounds.Y,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) to every cell r covers.
func (g *SpatialGrid) Insert(r Rect, index int) {
	c0, r0 := g.posToCell(r.Left(), r.Top())
	c1, r1 := g.posToCell(r.Right(), r.Bottom())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx].items = append(g.cells[idx].items, index)
		}
	}
}

// QueryRect calls fn for each item index stored in the cells r covers.
// An index stored in several cells is reported once per cell.
func (g *SpatialGrid) QueryRect(r Rect, fn func(index int)) {
	c0, r0 := g.posToCell(r.Left(), r.Top())
	c1, r1 := g.posToCell(r.Right(), r.Bottom())
	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			for _, itemIdx := range g.cells[rowOffset+col].items {
				fn(itemIdx)
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle objects outside the covered area.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.originX) * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor((y - g.originY) * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
