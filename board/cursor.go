package board

// Cursor is a grid position clamped to [0, max) on both axes
type Cursor struct {
	col    int
	row    int
	maxCol int
	maxRow int
}

// NewCursor creates a cursor at the origin bounded by the given dimensions
func NewCursor(maxCol, maxRow int) *Cursor {
	return &Cursor{
		maxCol: maxCol,
		maxRow: maxRow,
	}
}

// MoveUp moves one row up, no-op on the top row
func (c *Cursor) MoveUp() {
	if c.row > 0 {
		c.row--
	}
}

// MoveDown moves one row down, no-op on the bottom row
func (c *Cursor) MoveDown() {
	if c.row < c.maxRow-1 {
		c.row++
	}
}

// MoveLeft moves one column left, no-op on the first column
func (c *Cursor) MoveLeft() {
	if c.col > 0 {
		c.col--
	}
}

// MoveRight moves one column right, no-op on the last column
func (c *Cursor) MoveRight() {
	if c.col < c.maxCol-1 {
		c.col++
	}
}

// Position returns (col, row)
func (c *Cursor) Position() (col, row int) {
	return c.col, c.row
}
