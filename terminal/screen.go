package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen implements Driver on top of a tcell.Screen
type Screen struct {
	screen  tcell.Screen
	style   tcell.Style
	engaged bool

	x, y           int // write position
	savedX, savedY int
}

// NewScreen creates a Screen bound to the process terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an existing tcell screen (e.g. a simulation screen)
// The screen must not be initialised yet; EnableRawMode does that
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		style:  tcell.StyleDefault,
	}
}

// EnableRawMode initialises tcell, which puts the tty in raw mode
func (s *Screen) EnableRawMode() error {
	if s.engaged {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	s.engaged = true
	return nil
}

// DisableRawMode finalises tcell and restores the tty. Safe to call twice
func (s *Screen) DisableRawMode() error {
	if !s.engaged {
		return nil
	}
	s.screen.Fini()
	s.engaged = false
	return nil
}

func (s *Screen) HideCursor() error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.screen.HideCursor()
	return nil
}

// ShowCursor shows the cursor at the write position
// After DisableRawMode tcell has already restored cursor visibility
func (s *Screen) ShowCursor() error {
	if !s.engaged {
		return nil
	}
	s.screen.ShowCursor(s.x, s.y)
	return nil
}

func (s *Screen) Size() (int, int, error) {
	if !s.engaged {
		return 0, 0, ErrNotEngaged
	}
	w, h := s.screen.Size()
	return w, h, nil
}

func (s *Screen) RequestSize(width, height int) error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.screen.SetSize(width, height)
	return nil
}

func (s *Screen) Clear() error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.screen.Clear()
	s.x, s.y = 0, 0
	return nil
}

func (s *Screen) MoveTo(x, y int) error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.x, s.y = x, y
	return nil
}

func (s *Screen) SavePosition() error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.savedX, s.savedY = s.x, s.y
	return nil
}

func (s *Screen) RestorePosition() error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.x, s.y = s.savedX, s.savedY
	return nil
}

// Write places text at the write position
// '\r' returns to column 0, '\n' advances one line
func (s *Screen) Write(text string) error {
	if !s.engaged {
		return ErrNotEngaged
	}
	for _, r := range text {
		switch r {
		case '\r':
			s.x = 0
		case '\n':
			s.y++
		default:
			s.screen.SetContent(s.x, s.y, r, nil, s.style)
			w := Width.RuneWidth(r)
			if w < 1 {
				w = 1
			}
			s.x += w
		}
	}
	return nil
}

func (s *Screen) Flush() error {
	if !s.engaged {
		return ErrNotEngaged
	}
	s.screen.Show()
	return nil
}

// ReadEvent blocks on tcell's event queue
func (s *Screen) ReadEvent() (Event, error) {
	if !s.engaged {
		return Event{}, ErrNotEngaged
	}
	switch ev := s.screen.PollEvent().(type) {
	case nil:
		return Event{}, ErrClosed
	case *tcell.EventKey:
		return keyEventFromTcell(ev), nil
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent(w, h), nil
	case *tcell.EventError:
		return Event{}, fmt.Errorf("read event: %w", ev)
	default:
		return Event{Type: EventOther}, nil
	}
}
