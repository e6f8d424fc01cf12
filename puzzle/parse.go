package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrFormat matches every *FormatError via errors.Is
var ErrFormat = errors.New("puzzle format error")

// FormatError reports a malformed puzzle file with the offending line
type FormatError struct {
	Line   int // 1-based, 0 when the error concerns end of file
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("puzzle format: end of file: %s", e.Reason)
	}
	return fmt.Sprintf("puzzle format: line %d: %s", e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// Puzzle is a loaded clue set: one table for columns, one for rows
type Puzzle struct {
	Columns *Constraints
	Rows    *Constraints
}

// Dimensions returns the grid size implied by the clue tables
func (p *Puzzle) Dimensions() (cols, rows int) {
	return p.Columns.Size(), p.Rows.Size()
}

// parseState tracks the section being read
type parseState uint8

const (
	stateColumnHeader parseState = iota
	stateColumns
	stateSeparator
	stateRowHeader
	stateRows
	stateTrailing
)

// Load reads and parses the puzzle file at path
func Load(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a puzzle definition:
//
//	v(N):
//	N column clue lines (may be empty)
//	<blank line>
//	h(M):
//	M row clue lines
//
// Section line counts must match the declared N and M exactly
func Parse(r io.Reader) (*Puzzle, error) {
	var (
		state   = stateColumnHeader
		columns section
		rows    section
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		switch state {
		case stateColumnHeader:
			n, err := parseHeader(line, "v")
			if err != nil {
				return nil, &FormatError{Line: lineNo, Reason: err.Error()}
			}
			columns = section{declared: n}
			state = stateColumns
			if columns.done() {
				state = stateSeparator
			}

		case stateColumns:
			if err := columns.add(line); err != nil {
				return nil, &FormatError{Line: lineNo, Reason: err.Error()}
			}
			if columns.done() {
				state = stateSeparator
			}

		case stateSeparator:
			if strings.TrimSpace(line) != "" {
				return nil, &FormatError{
					Line:   lineNo,
					Reason: fmt.Sprintf("expected blank line after %d column clue lines", columns.declared),
				}
			}
			state = stateRowHeader

		case stateRowHeader:
			n, err := parseHeader(line, "h")
			if err != nil {
				return nil, &FormatError{Line: lineNo, Reason: err.Error()}
			}
			rows = section{declared: n}
			state = stateRows
			if rows.done() {
				state = stateTrailing
			}

		case stateRows:
			if err := rows.add(line); err != nil {
				return nil, &FormatError{Line: lineNo, Reason: err.Error()}
			}
			if rows.done() {
				state = stateTrailing
			}

		case stateTrailing:
			if strings.TrimSpace(line) != "" {
				return nil, &FormatError{
					Line:   lineNo,
					Reason: fmt.Sprintf("more than the declared %d row clue lines", rows.declared),
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}

	switch state {
	case stateColumnHeader:
		return nil, &FormatError{Reason: "missing v(N): header"}
	case stateColumns:
		return nil, &FormatError{Reason: fmt.Sprintf("declared %d column clue lines, found %d", columns.declared, len(columns.lines))}
	case stateSeparator, stateRowHeader:
		return nil, &FormatError{Reason: "missing h(M): header"}
	case stateRows:
		return nil, &FormatError{Reason: fmt.Sprintf("declared %d row clue lines, found %d", rows.declared, len(rows.lines))}
	}

	colTable, err := columns.table()
	if err != nil {
		return nil, err
	}
	rowTable, err := rows.table()
	if err != nil {
		return nil, err
	}
	return &Puzzle{Columns: colTable, Rows: rowTable}, nil
}

// section collects the clue lines read so far against the declared count
type section struct {
	declared int
	lines    [][]uint32
}

func (s *section) done() bool {
	return len(s.lines) == s.declared
}

func (s *section) add(line string) error {
	clues, err := parseClues(line)
	if err != nil {
		return err
	}
	s.lines = append(s.lines, clues)
	return nil
}

func (s *section) table() (*Constraints, error) {
	c := NewConstraints(len(s.lines))
	for i, clues := range s.lines {
		if err := c.Set(i, clues); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// parseHeader extracts N from "<tag>(N):"
func parseHeader(line, tag string) (int, error) {
	s := strings.TrimSpace(line)
	prefix := tag + "("
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, "):") {
		return 0, fmt.Errorf("expected header %s(N):, got %q", tag, line)
	}
	num := s[len(prefix) : len(s)-len("):")]
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid line count %q in %s header", num, tag)
	}
	return n, nil
}

func parseClues(line string) ([]uint32, error) {
	fields := strings.Fields(line)
	clues := make([]uint32, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid clue %q", tok)
		}
		clues = append(clues, uint32(v))
	}
	return clues, nil
}
