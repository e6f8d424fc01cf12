package terminal

import "errors"

var (
	// ErrClosed is returned by ReadEvent once the input source is gone
	ErrClosed = errors.New("terminal closed")
	// ErrNotEngaged is returned by operations that need raw mode first
	ErrNotEngaged = errors.New("terminal not in raw mode")
)

// Driver is the terminal capability set consumed by the renderer and the
// interaction loop. Text is written at a write position that advances by the
// display width of each rune; MoveTo repositions it, SavePosition and
// RestorePosition keep one saved slot.
type Driver interface {
	EnableRawMode() error
	DisableRawMode() error
	HideCursor() error
	ShowCursor() error

	// Size returns the current terminal dimensions in cells
	Size() (width, height int, err error)
	// RequestSize asks the terminal to resize; completion is reported by a
	// later EventResize
	RequestSize(width, height int) error

	// Clear blanks the screen and homes the write position
	Clear() error
	MoveTo(x, y int) error
	SavePosition() error
	RestorePosition() error
	Write(text string) error
	// Flush makes everything written since the last flush visible
	Flush() error

	// ReadEvent blocks until the next input event
	ReadEvent() (Event, error)
}
