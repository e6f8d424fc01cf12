package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/picross/board"
	"github.com/lixenwraith/picross/puzzle"
	"github.com/lixenwraith/picross/terminal"
)

// Renderer draws the clue panels, the grid and the cursor overlay
// It reads puzzle, board and cursor on every Draw and never mutates them
type Renderer struct {
	puzzle *puzzle.Puzzle
	board  *board.Board
	cursor *board.Cursor
	glyphs Glyphs
}

// NewRenderer creates a renderer over the session state
func NewRenderer(p *puzzle.Puzzle, b *board.Board, c *board.Cursor, g Glyphs) *Renderer {
	return &Renderer{
		puzzle: p,
		board:  b,
		cursor: c,
		glyphs: g,
	}
}

// Layout derives the current frame geometry
func (r *Renderer) Layout() Layout {
	return NewLayout(r.puzzle)
}

// FrameSize returns the frame dimensions in terminal cells
func (r *Renderer) FrameSize() (width, height int) {
	l := r.Layout()
	return l.FrameWidth(), l.FrameHeight()
}

// Fit requests a terminal resize to the frame size unless the terminal
// already matches. Returns true when a request was sent
func (r *Renderer) Fit(d terminal.Driver) (bool, error) {
	fw, fh := r.FrameSize()
	tw, th, err := d.Size()
	if err != nil {
		return false, fmt.Errorf("query terminal size: %w", err)
	}
	if tw == fw && th == fh {
		return false, nil
	}
	if err := d.RequestSize(fw, fh); err != nil {
		return false, fmt.Errorf("request resize to %dx%d: %w", fw, fh, err)
	}
	return true, nil
}

// Draw clears the terminal, writes a full frame, overlays the cursor and flushes
func (r *Renderer) Draw(d terminal.Driver) error {
	termW, termH, err := d.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}

	l := r.Layout()
	ox, oy := l.Origin(termW, termH)

	w := frameWriter{d: d}
	w.clear()

	for i, line := range r.lines(l) {
		w.at(ox, oy+i, line)
	}

	// Status only when a spare line exists under the frame
	if y := oy + l.FrameHeight(); y < termH && termW > ox {
		w.at(ox, y, terminal.Width.Truncate(r.status(), termW-ox, ""))
	}

	col, row := r.cursor.Position()
	cx, cy := l.CursorCell(col, row, termW, termH)
	top, side, bottom := r.glyphs.overlay()

	w.save()
	w.at(cx, cy, top)
	w.at(cx, cy+1, string(side))
	w.at(cx+ColumnStride, cy+1, string(side))
	w.at(cx, cy+2, bottom)
	w.restore()

	w.flush()
	return w.err
}

// Lines returns the frame text without the cursor overlay, one entry per line
func (r *Renderer) Lines() []string {
	return r.lines(r.Layout())
}

func (r *Renderer) lines(l Layout) []string {
	out := make([]string, 0, l.FrameHeight())
	out = append(out, r.header(l)...)
	out = append(out, r.rule(l, r.glyphs.Top))
	for row := 0; row < l.Rows; row++ {
		out = append(out, r.row(l, row))
		if row == l.Rows-1 {
			break
		}
		if thickAfter(row) {
			out = append(out, r.rule(l, r.glyphs.ThickDivider))
		} else {
			out = append(out, r.rule(l, r.glyphs.Divider))
		}
	}
	out = append(out, r.rule(l, r.glyphs.Bottom))
	return out
}

// header stacks column clues bottom-aligned so the clue nearest the grid is on
// the last header line
func (r *Renderer) header(l Layout) []string {
	lines := make([]string, l.HeaderHeight)
	pad := strings.Repeat(" ", l.ClueWidth)
	empty := strings.Repeat(" ", CellWidth)

	for i := range lines {
		var sb strings.Builder
		sb.WriteString(pad)
		sb.WriteRune(r.glyphs.HeaderSep)
		for col := 0; col < l.Cols; col++ {
			clues, _ := r.puzzle.Columns.Get(col)
			idx := len(clues) + i - l.HeaderHeight
			if idx < 0 {
				sb.WriteString(empty)
			} else {
				sb.WriteString(r.slot(clues[idx]))
			}
			sb.WriteRune(r.glyphs.HeaderSep)
		}
		lines[i] = sb.String()
	}
	return lines
}

// slot right-justifies a clue in a cell-wide field
func (r *Renderer) slot(clue uint32) string {
	s := strconv.FormatUint(uint64(clue), 10)
	if len(s) > CellWidth {
		return r.glyphs.Overflow
	}
	return strings.Repeat(" ", CellWidth-len(s)) + s
}

func (r *Renderer) rule(l Layout, rule Rule) string {
	var sb strings.Builder
	for i := 0; i < l.ClueWidth; i++ {
		sb.WriteRune(r.glyphs.Panel)
	}
	sb.WriteRune(rule.Left)
	for col := 0; col < l.Cols; col++ {
		for i := 0; i < CellWidth; i++ {
			sb.WriteRune(rule.Fill)
		}
		switch {
		case col == l.Cols-1:
			sb.WriteRune(rule.Right)
		case thickAfter(col):
			sb.WriteRune(rule.Thick)
		default:
			sb.WriteRune(rule.Thin)
		}
	}
	return sb.String()
}

func (r *Renderer) row(l Layout, row int) string {
	var clue strings.Builder
	clues, _ := r.puzzle.Rows.Get(row)
	for _, c := range clues {
		clue.WriteByte(' ')
		clue.WriteString(strconv.FormatUint(uint64(c), 10))
	}

	var sb strings.Builder
	if pad := l.ClueWidth - clue.Len(); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(clue.String())
	sb.WriteRune(r.glyphs.Border)
	for col := 0; col < l.Cols; col++ {
		sb.WriteString(r.glyphs.Cell(r.board.Get(col, row)))
		switch {
		case col == l.Cols-1:
			sb.WriteRune(r.glyphs.Border)
		case thickAfter(col):
			sb.WriteRune(r.glyphs.CellThick)
		default:
			sb.WriteRune(r.glyphs.CellThin)
		}
	}
	return sb.String()
}

func (r *Renderer) status() string {
	col, row := r.cursor.Position()
	return fmt.Sprintf("%d,%d  filled %d  crossed %d",
		col+1, row+1, r.board.Count(board.Filled), r.board.Count(board.Crossed))
}

// frameWriter sequences driver calls and keeps the first failure; later calls
// become no-ops so a draw aborts at the failing step
type frameWriter struct {
	d   terminal.Driver
	err error
}

func (w *frameWriter) fail(op string, err error) {
	if err != nil && w.err == nil {
		w.err = fmt.Errorf("draw %s: %w", op, err)
	}
}

func (w *frameWriter) clear() {
	if w.err == nil {
		w.fail("clear", w.d.Clear())
	}
}

func (w *frameWriter) at(x, y int, text string) {
	if w.err != nil {
		return
	}
	w.fail("move", w.d.MoveTo(x, y))
	if w.err == nil {
		w.fail("write", w.d.Write(text))
	}
}

func (w *frameWriter) save() {
	if w.err == nil {
		w.fail("save position", w.d.SavePosition())
	}
}

func (w *frameWriter) restore() {
	if w.err == nil {
		w.fail("restore position", w.d.RestorePosition())
	}
}

func (w *frameWriter) flush() {
	if w.err == nil {
		w.fail("flush", w.d.Flush())
	}
}
