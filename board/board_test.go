package board

import "testing"

func TestNewBoard(t *testing.T) {
	b := New(4, 3)

	cols, rows := b.Size()
	if cols != 4 || rows != 3 {
		t.Fatalf("Expected size 4x3, got %dx%d", cols, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if s := b.Get(x, y); s != Blank {
				t.Errorf("Expected cell (%d, %d) Blank, got %v", x, y, s)
			}
		}
	}
	if n := b.Count(Blank); n != 12 {
		t.Errorf("Expected 12 blank cells, got %d", n)
	}
}

func TestToggleFill(t *testing.T) {
	tests := []struct {
		start CellState
		once  CellState
		twice CellState
	}{
		{Blank, Filled, Blank},
		{Filled, Blank, Filled},
		{Crossed, Filled, Blank},
	}

	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			b := New(1, 1)
			setState(b, tt.start)

			b.ToggleFill(0, 0)
			if got := b.Get(0, 0); got != tt.once {
				t.Errorf("After one toggle: expected %v, got %v", tt.once, got)
			}
			b.ToggleFill(0, 0)
			if got := b.Get(0, 0); got != tt.twice {
				t.Errorf("After two toggles: expected %v, got %v", tt.twice, got)
			}
		})
	}
}

func TestToggleCross(t *testing.T) {
	tests := []struct {
		start CellState
		once  CellState
		twice CellState
	}{
		{Blank, Crossed, Blank},
		{Crossed, Blank, Crossed},
		{Filled, Crossed, Blank},
	}

	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			b := New(1, 1)
			setState(b, tt.start)

			b.ToggleCross(0, 0)
			if got := b.Get(0, 0); got != tt.once {
				t.Errorf("After one toggle: expected %v, got %v", tt.once, got)
			}
			b.ToggleCross(0, 0)
			if got := b.Get(0, 0); got != tt.twice {
				t.Errorf("After two toggles: expected %v, got %v", tt.twice, got)
			}
		})
	}
}

func TestFillThenCrossIsolated(t *testing.T) {
	b := New(3, 3)

	b.ToggleFill(1, 1)
	b.ToggleCross(1, 1)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Blank
			if x == 1 && y == 1 {
				want = Crossed
			}
			if got := b.Get(x, y); got != want {
				t.Errorf("Cell (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestNonSquareAddressing(t *testing.T) {
	b := New(5, 2)

	b.ToggleFill(4, 1)
	if b.Get(4, 1) != Filled {
		t.Error("Expected (4, 1) filled")
	}
	if b.Get(1, 0) != Blank {
		t.Error("Expected (1, 0) untouched")
	}
	if n := b.Count(Filled); n != 1 {
		t.Errorf("Expected 1 filled cell, got %d", n)
	}
}

func TestCellStateString(t *testing.T) {
	if Blank.String() != "blank" || Filled.String() != "filled" || Crossed.String() != "crossed" {
		t.Error("Unexpected CellState names")
	}
	if CellState(9).String() != "invalid" {
		t.Errorf("Expected invalid, got %s", CellState(9).String())
	}
}

func setState(b *Board, s CellState) {
	switch s {
	case Filled:
		b.ToggleFill(0, 0)
	case Crossed:
		b.ToggleCross(0, 0)
	case Blank:
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
	}{
		{"col past edge", 4, 0},
		{"row past edge", 0, 3},
		{"negative col", -1, 1},
		{"negative row", 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(4, 3)
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for (%d, %d)", tt.col, tt.row)
				}
			}()
			b.Get(tt.col, tt.row)
		})
	}
}
