package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr := NewScreenFrom(sim)
	if err := scr.EnableRawMode(); err != nil {
		t.Fatalf("EnableRawMode failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(func() { scr.DisableRawMode() })
	return scr, sim
}

func TestScreenRequiresRawMode(t *testing.T) {
	scr := NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))

	if err := scr.Write("x"); !errors.Is(err, ErrNotEngaged) {
		t.Errorf("Expected ErrNotEngaged from Write, got %v", err)
	}
	if _, _, err := scr.Size(); !errors.Is(err, ErrNotEngaged) {
		t.Errorf("Expected ErrNotEngaged from Size, got %v", err)
	}
	if err := scr.DisableRawMode(); err != nil {
		t.Errorf("Expected DisableRawMode to be a no-op, got %v", err)
	}
	if err := scr.ShowCursor(); err != nil {
		t.Errorf("Expected ShowCursor to be a no-op, got %v", err)
	}
}

func TestScreenSize(t *testing.T) {
	scr, _ := newSimScreen(t, 30, 12)

	w, h, err := scr.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if w != 30 || h != 12 {
		t.Errorf("Expected 30x12, got %dx%d", w, h)
	}

	if err := scr.RequestSize(40, 10); err != nil {
		t.Fatalf("RequestSize failed: %v", err)
	}
	w, h, _ = scr.Size()
	if w != 40 || h != 10 {
		t.Errorf("Expected 40x10 after RequestSize, got %dx%d", w, h)
	}
}

func TestScreenWriteAdvances(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 5)

	scr.MoveTo(2, 1)
	if err := scr.Write("ab┃██"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	scr.Flush()

	want := []rune("ab┃██")
	for i, r := range want {
		got, _, _, _ := sim.GetContent(2+i, 1)
		if got != r {
			t.Errorf("Cell (%d, 1): expected %q, got %q", 2+i, r, got)
		}
	}
}

func TestScreenSaveRestore(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 5)

	scr.MoveTo(1, 1)
	scr.SavePosition()
	scr.MoveTo(10, 3)
	scr.Write("X")
	scr.RestorePosition()
	scr.Write("Y")

	if got, _, _, _ := sim.GetContent(10, 3); got != 'X' {
		t.Errorf("Expected X at (10, 3), got %q", got)
	}
	if got, _, _, _ := sim.GetContent(1, 1); got != 'Y' {
		t.Errorf("Expected Y at restored (1, 1), got %q", got)
	}
}

func TestScreenClearHomes(t *testing.T) {
	scr, sim := newSimScreen(t, 10, 3)

	scr.MoveTo(5, 2)
	scr.Write("Z")
	scr.Clear()
	scr.Write("A")

	if got, _, _, _ := sim.GetContent(0, 0); got != 'A' {
		t.Errorf("Expected A at origin after Clear, got %q", got)
	}
	if got, _, _, _ := sim.GetContent(5, 2); got == 'Z' {
		t.Error("Expected Clear to blank previous content")
	}
}

func TestScreenLineControl(t *testing.T) {
	scr, sim := newSimScreen(t, 10, 3)

	scr.Write("ab\r\ncd")
	if got, _, _, _ := sim.GetContent(0, 1); got != 'c' {
		t.Errorf("Expected c at (0, 1), got %q", got)
	}
}

func TestScreenReadEvents(t *testing.T) {
	scr, sim := newSimScreen(t, 10, 3)

	sim.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	sim.PostEvent(tcell.NewEventResize(12, 4))

	var key, resize Event
	for i := 0; i < 10 && (key.Type != EventKey || resize.Type != EventResize || resize.Width != 12); i++ {
		ev, err := scr.ReadEvent()
		if err != nil {
			t.Fatalf("ReadEvent failed: %v", err)
		}
		switch ev.Type {
		case EventKey:
			key = ev
		case EventResize:
			resize = ev
		}
	}

	if key.Type != EventKey || key.Key != KeyUp {
		t.Errorf("Expected KeyUp event, got %+v", key)
	}
	if resize.Type != EventResize || resize.Width != 12 || resize.Height != 4 {
		t.Errorf("Expected 12x4 resize, got %+v", resize)
	}
}
