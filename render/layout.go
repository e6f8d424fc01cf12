package render

import "github.com/lixenwraith/picross/puzzle"

const (
	CellWidth    = 2
	CellHeight   = 1
	ColumnStride = CellWidth + 1  // cell plus separator
	RowStride    = CellHeight + 1 // cell line plus divider line
	GroupSize    = 5              // thick separator after every GroupSize cells
)

// Layout is the frame geometry derived from both clue tables
// Derived fresh per frame from the puzzle; holds no terminal state
type Layout struct {
	Cols int
	Rows int

	// ClueWidth is the right-aligned row clue field: digits plus one leading
	// space per clue on the widest line
	ClueWidth int
	// PanelWidth adds the margin column carrying the left grid border
	PanelWidth int
	// HeaderHeight is the number of stacked column clue lines
	HeaderHeight int
}

// NewLayout derives the frame geometry for a puzzle
func NewLayout(p *puzzle.Puzzle) Layout {
	cols, rows := p.Dimensions()
	digits, _ := p.Rows.MaxDigitWidth()
	count, _ := p.Rows.MaxLineCount()
	header, _ := p.Columns.MaxLineCount()

	clue := digits + count
	return Layout{
		Cols:         cols,
		Rows:         rows,
		ClueWidth:    clue,
		PanelWidth:   clue + 1,
		HeaderHeight: header,
	}
}

// FrameWidth returns the frame width in terminal cells
func (l Layout) FrameWidth() int {
	return l.PanelWidth + ColumnStride*l.Cols
}

// FrameHeight returns the frame height in terminal lines
func (l Layout) FrameHeight() int {
	return l.HeaderHeight + RowStride*l.Rows + 1
}

// Origin returns the frame top-left, centred when the terminal has room
func (l Layout) Origin(termW, termH int) (x, y int) {
	if spare := termW - l.FrameWidth(); spare > 0 {
		x = spare / 2
	}
	if spare := termH - l.FrameHeight(); spare > 0 {
		y = spare / 2
	}
	return x, y
}

// CursorCell returns the top-left of the cursor overlay for a grid cell
// The overlay spans the horizontal rule above the cell, the cell line and the
// rule below, and the separators on either side
func (l Layout) CursorCell(col, row, termW, termH int) (x, y int) {
	ox, oy := l.Origin(termW, termH)
	return ox + l.PanelWidth - 1 + ColumnStride*col, oy + l.HeaderHeight + RowStride*row
}

// thickAfter reports whether the separator after grid line i is thick
func thickAfter(i int) bool {
	return (i+1)%GroupSize == 0
}
