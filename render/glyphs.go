package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/picross/board"
	"github.com/lixenwraith/picross/terminal"
)

// ErrGlyphWidth is returned when a cell glyph does not span exactly CellWidth cells
var ErrGlyphWidth = errors.New("cell glyph width mismatch")

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle LineType = iota // ┌─┐│└┘
	LineDouble                 // ╔═╗║╚╝
	LineHeavy                  // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle: {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble: {'╔', '═', '╗', '║', '╚', '╝'},
	LineHeavy:  {'┏', '━', '┓', '┃', '┗', '┛'},
}

var lineTypeNames = map[string]LineType{
	"single": LineSingle,
	"double": LineDouble,
	"heavy":  LineHeavy,
}

// LineTypeByName resolves a config name (single, double, heavy) to a LineType
func LineTypeByName(name string) (LineType, error) {
	if lt, ok := lineTypeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lt, nil
	}
	return 0, fmt.Errorf("unknown line type %q", name)
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Rule is one horizontal grid line: the junction where it meets the left
// border, the fill under each cell, the crossing after each cell (thick every
// GroupSize columns) and the junction at the right border
type Rule struct {
	Left  rune
	Fill  rune
	Thin  rune
	Thick rune
	Right rune
}

// Glyphs is the full glyph table used to draw a frame
type Glyphs struct {
	Blank   string
	Filled  string
	Crossed string

	Panel     rune // rule under the row-clue panel on every horizontal line
	HeaderSep rune // column clue slot separator
	Border    rune // left and right grid border on cell rows
	CellThin  rune
	CellThick rune

	Top          Rule
	Divider      Rule
	ThickDivider Rule
	Bottom       Rule

	Cursor LineType

	Overflow string // shown in a column clue slot when the clue is too wide
}

// DefaultGlyphs returns the stock glyph table
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Blank:   "  ",
		Filled:  "██",
		Crossed: "╳╳",

		Panel:     '─',
		HeaderSep: '│',
		Border:    '┃',
		CellThin:  '│',
		CellThick: '┇',

		Top:          Rule{Left: '╆', Fill: '━', Thin: '┿', Thick: '╈', Right: '┪'},
		Divider:      Rule{Left: '╂', Fill: '─', Thin: '┼', Thick: '╂', Right: '┨'},
		ThickDivider: Rule{Left: '╊', Fill: '┅', Thin: '┿', Thick: '╋', Right: '┫'},
		Bottom:       Rule{Left: '┺', Fill: '━', Thin: '┷', Thick: '┻', Right: '┛'},

		Cursor: LineDouble,

		Overflow: "**",
	}
}

// Cell returns the glyph for a cell state
func (g Glyphs) Cell(s board.CellState) string {
	switch s {
	case board.Filled:
		return g.Filled
	case board.Crossed:
		return g.Crossed
	case board.Blank:
		return g.Blank
	default:
		return g.Blank
	}
}

// Validate checks every cell glyph spans exactly CellWidth terminal cells
func (g Glyphs) Validate() error {
	cells := []struct {
		name  string
		glyph string
	}{
		{"blank", g.Blank},
		{"filled", g.Filled},
		{"crossed", g.Crossed},
		{"overflow", g.Overflow},
	}
	for _, c := range cells {
		if w := terminal.Width.StringWidth(c.glyph); w != CellWidth {
			return fmt.Errorf("%w: %s %q is %d cells wide, want %d", ErrGlyphWidth, c.name, c.glyph, w, CellWidth)
		}
	}
	if int(g.Cursor) >= len(boxChars) {
		return fmt.Errorf("unknown cursor line type %d", g.Cursor)
	}
	return nil
}

// overlay returns the three cursor box lines; the middle line holds only the
// two side glyphs, the interior is left untouched
func (g Glyphs) overlay() (top string, side rune, bottom string) {
	chars := boxChars[g.Cursor]
	h := string(chars[boxH])
	top = string(chars[boxTL]) + h + h + string(chars[boxTR])
	bottom = string(chars[boxBL]) + h + h + string(chars[boxBR])
	return top, chars[boxV], bottom
}
