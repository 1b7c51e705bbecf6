package viewport

import "math"

// CellSize is the edge length of one background grid cell.
const CellSize = 75.0

// Cell is one square of the background grid.
type Cell struct {
	Index    int
	Row, Col int
	X, Y     float64
}

// Grid tiles the bounds with CellSize squares in row-major order.
type Grid struct {
	Cols, Rows int
}

// NewGrid lays out a grid covering b. Partial cells at the right and bottom
// edges are included.
func NewGrid(b Bounds) Grid {
	g := Grid{}
	if b.Width > 0 {
		g.Cols = int(math.Ceil(b.Width / CellSize))
	}
	if b.Height > 0 {
		g.Rows = int(math.Ceil(b.Height / CellSize))
	}
	return g
}

// Len is the number of cells.
func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Cell returns the cell at index. ok is false when index is out of range.
func (g Grid) Cell(index int) (Cell, bool) {
	if index < 0 || index >= g.Len() {
		return Cell{}, false
	}
	row, col := index/g.Cols, index%g.Cols
	return Cell{
		Index: index,
		Row:   row,
		Col:   col,
		X:     float64(col) * CellSize,
		Y:     float64(row) * CellSize,
	}, true
}

// IndexAt returns the index of the cell under (px, py), or -1.
func (g Grid) IndexAt(px, py float64) int {
	if px < 0 || py < 0 {
		return -1
	}
	col := int(px / CellSize)
	row := int(py / CellSize)
	if col >= g.Cols || row >= g.Rows {
		return -1
	}
	return row*g.Cols + col
}

// Hover tracks which grid cell has pointer focus.
type Hover struct {
	Index  int
	Active bool
}

// Enter gives focus to cell index.
func (h *Hover) Enter(index int) {
	h.Index = index
	h.Active = true
}

// Leave clears focus.
func (h *Hover) Leave() {
	h.Index = 0
	h.Active = false
}

// Is reports whether cell index currently has focus.
func (h Hover) Is(index int) bool {
	return h.Active && h.Index == index
}

// Move updates focus for a pointer at cell index (-1 when outside the grid).
// It reports the cell that lost focus and the cell that gained it, each -1
// when there is none. Staying on the same cell reports nothing.
func (h *Hover) Move(index int) (left, entered int) {
	left, entered = -1, -1
	if h.Active && h.Index == index {
		return left, entered
	}
	if h.Active {
		left = h.Index
		h.Leave()
	}
	if index >= 0 {
		h.Enter(index)
		entered = index
	}
	return left, entered
}
