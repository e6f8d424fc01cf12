package puzzle

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfBounds is returned for clue line indices outside the table
var ErrOutOfBounds = errors.New("constraint index out of bounds")

// Constraints holds one ordered clue sequence per row or column
// Table size is fixed at construction; individual lines may be empty
type Constraints struct {
	size  int
	lines [][]uint32
}

// NewConstraints creates a table of size empty clue lines
func NewConstraints(size int) *Constraints {
	if size < 0 {
		size = 0
	}
	return &Constraints{
		size:  size,
		lines: make([][]uint32, size),
	}
}

// Size returns the number of clue lines
func (c *Constraints) Size() int {
	return c.size
}

// Set replaces the clues of line index
func (c *Constraints) Set(index int, clues []uint32) error {
	if err := c.check(index); err != nil {
		return err
	}
	line := make([]uint32, len(clues))
	copy(line, clues)
	c.lines[index] = line
	return nil
}

// Get returns a copy of the clues of line index
func (c *Constraints) Get(index int) ([]uint32, error) {
	if err := c.check(index); err != nil {
		return nil, err
	}
	line := make([]uint32, len(c.lines[index]))
	copy(line, c.lines[index])
	return line, nil
}

// LineCount returns the number of clues on line index
func (c *Constraints) LineCount(index int) int {
	return len(c.lines[index])
}

// DigitWidth returns the total decimal digit count of line index
// Clues [12, 3] measure 3
func (c *Constraints) DigitWidth(index int) int {
	width := 0
	for _, clue := range c.lines[index] {
		width += digits(clue)
	}
	return width
}

// MaxLineCount returns the largest LineCount and the first line reaching it
func (c *Constraints) MaxLineCount() (value, index int) {
	return c.maxBy(c.LineCount)
}

// MaxDigitWidth returns the largest DigitWidth and the first line reaching it
func (c *Constraints) MaxDigitWidth() (value, index int) {
	return c.maxBy(c.DigitWidth)
}

// maxBy scans lines in order; strict comparison keeps the lowest index on ties
func (c *Constraints) maxBy(measure func(int) int) (value, index int) {
	for i := 0; i < c.size; i++ {
		if m := measure(i); m > value {
			value, index = m, i
		}
	}
	return value, index
}

func (c *Constraints) check(index int) error {
	if index < 0 || index >= c.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfBounds, index, c.size)
	}
	return nil
}

func digits(n uint32) int {
	return len(strconv.FormatUint(uint64(n), 10))
}
