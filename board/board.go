package board

// CellState is the player's mark on a single cell
type CellState uint8

const (
	Blank CellState = iota
	Filled
	Crossed
)

func (s CellState) String() string {
	switch s {
	case Blank:
		return "blank"
	case Filled:
		return "filled"
	case Crossed:
		return "crossed"
	default:
		return "invalid"
	}
}

// Board is a fixed cols x rows grid of cell states
// Coordinates are the caller's responsibility; out-of-range access panics
type Board struct {
	cols  int
	rows  int
	cells [][]CellState // row-major: cells[row][col]
}

// New creates a board with every cell Blank
func New(cols, rows int) *Board {
	cells := make([][]CellState, rows)
	for y := range cells {
		cells[y] = make([]CellState, cols)
	}
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: cells,
	}
}

// Cols returns the board width in cells
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the board height in cells
func (b *Board) Rows() int {
	return b.rows
}

// Size returns (cols, rows)
func (b *Board) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Get returns the state at (col, row)
func (b *Board) Get(col, row int) CellState {
	return b.cells[row][col]
}

// ToggleFill clears a filled cell, otherwise fills it (discarding a cross)
func (b *Board) ToggleFill(col, row int) {
	switch b.cells[row][col] {
	case Filled:
		b.cells[row][col] = Blank
	case Blank, Crossed:
		b.cells[row][col] = Filled
	}
}

// ToggleCross clears a crossed cell, otherwise crosses it (discarding a fill)
func (b *Board) ToggleCross(col, row int) {
	switch b.cells[row][col] {
	case Crossed:
		b.cells[row][col] = Blank
	case Blank, Filled:
		b.cells[row][col] = Crossed
	}
}

// Count returns the number of cells in the given state
func (b *Board) Count(state CellState) int {
	n := 0
	for _, line := range b.cells {
		for _, s := range line {
			if s == state {
				n++
			}
		}
	}
	return n
}
