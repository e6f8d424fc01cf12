// Package termtest provides a recording terminal.Driver for tests.
package termtest

import (
	"strings"

	"github.com/lixenwraith/picross/terminal"
)

// Screen is an in-memory terminal: a character grid with a write position,
// a scripted event queue and a log of every driver call
type Screen struct {
	width, height int
	cells         [][]rune

	x, y           int
	savedX, savedY int

	Raw           bool
	CursorVisible bool

	// ResizeOnRequest applies RequestSize immediately and queues an EventResize
	ResizeOnRequest bool
	Resizes         [][2]int

	Flushes int
	Ops     []string

	events []terminal.Event
	fail   map[string]error
}

// New creates a blank screen of the given size with the cursor visible
func New(width, height int) *Screen {
	s := &Screen{
		CursorVisible:   true,
		ResizeOnRequest: true,
		fail:            make(map[string]error),
	}
	s.setSize(width, height)
	return s
}

// Push appends scripted input events
func (s *Screen) Push(events ...terminal.Event) {
	s.events = append(s.events, events...)
}

// FailOn makes the named operation return err from now on
// Names: enable_raw, disable_raw, hide_cursor, show_cursor, size,
// request_size, clear, move, save, restore, write, flush, read
func (s *Screen) FailOn(op string, err error) {
	s.fail[op] = err
}

// SetSize changes the reported size without queuing an event
func (s *Screen) SetSize(width, height int) {
	s.setSize(width, height)
}

// Line returns row y as a string, trailing spaces kept
func (s *Screen) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	return string(s.cells[y])
}

// Lines returns every row with trailing spaces trimmed
func (s *Screen) Lines() []string {
	out := make([]string, s.height)
	for y := range out {
		out[y] = strings.TrimRight(string(s.cells[y]), " ")
	}
	return out
}

// Cell returns the rune at (x, y), 0 when out of range
func (s *Screen) Cell(x, y int) rune {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.cells[y][x]
}

// Position returns the current write position
func (s *Screen) Position() (x, y int) {
	return s.x, s.y
}

// Pending returns the number of unread scripted events
func (s *Screen) Pending() int {
	return len(s.events)
}

func (s *Screen) setSize(width, height int) {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
			if y < s.height && x < s.width {
				cells[y][x] = s.cells[y][x]
			}
		}
	}
	s.width, s.height = width, height
	s.cells = cells
}

func (s *Screen) op(name string) error {
	s.Ops = append(s.Ops, name)
	return s.fail[name]
}

func (s *Screen) EnableRawMode() error {
	if err := s.op("enable_raw"); err != nil {
		return err
	}
	s.Raw = true
	return nil
}

func (s *Screen) DisableRawMode() error {
	if err := s.op("disable_raw"); err != nil {
		return err
	}
	s.Raw = false
	return nil
}

func (s *Screen) HideCursor() error {
	if err := s.op("hide_cursor"); err != nil {
		return err
	}
	s.CursorVisible = false
	return nil
}

func (s *Screen) ShowCursor() error {
	if err := s.op("show_cursor"); err != nil {
		return err
	}
	s.CursorVisible = true
	return nil
}

func (s *Screen) Size() (int, int, error) {
	if err := s.op("size"); err != nil {
		return 0, 0, err
	}
	return s.width, s.height, nil
}

func (s *Screen) RequestSize(width, height int) error {
	if err := s.op("request_size"); err != nil {
		return err
	}
	s.Resizes = append(s.Resizes, [2]int{width, height})
	if s.ResizeOnRequest {
		s.setSize(width, height)
		s.events = append(s.events, terminal.ResizeEvent(width, height))
	}
	return nil
}

func (s *Screen) Clear() error {
	if err := s.op("clear"); err != nil {
		return err
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
	s.x, s.y = 0, 0
	return nil
}

func (s *Screen) MoveTo(x, y int) error {
	if err := s.op("move"); err != nil {
		return err
	}
	s.x, s.y = x, y
	return nil
}

func (s *Screen) SavePosition() error {
	if err := s.op("save"); err != nil {
		return err
	}
	s.savedX, s.savedY = s.x, s.y
	return nil
}

func (s *Screen) RestorePosition() error {
	if err := s.op("restore"); err != nil {
		return err
	}
	s.x, s.y = s.savedX, s.savedY
	return nil
}

// Write drops runes that fall outside the grid, like a non-wrapping terminal
func (s *Screen) Write(text string) error {
	if err := s.op("write"); err != nil {
		return err
	}
	for _, r := range text {
		switch r {
		case '\r':
			s.x = 0
		case '\n':
			s.y++
		default:
			if s.x >= 0 && s.y >= 0 && s.x < s.width && s.y < s.height {
				s.cells[s.y][s.x] = r
			}
			w := terminal.Width.RuneWidth(r)
			if w < 1 {
				w = 1
			}
			s.x += w
		}
	}
	return nil
}

func (s *Screen) Flush() error {
	if err := s.op("flush"); err != nil {
		return err
	}
	s.Flushes++
	return nil
}

// ReadEvent pops the next scripted event; an empty queue reads as ErrClosed
func (s *Screen) ReadEvent() (terminal.Event, error) {
	if err := s.op("read"); err != nil {
		return terminal.Event{}, err
	}
	if len(s.events) == 0 {
		return terminal.Event{}, terminal.ErrClosed
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

var _ terminal.Driver = (*Screen)(nil)
