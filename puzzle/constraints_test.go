package puzzle

import (
	"errors"
	"reflect"
	"testing"
)

func TestConstraintsSetGetRoundTrip(t *testing.T) {
	c := NewConstraints(3)

	lines := [][]uint32{{1, 2}, {}, {12, 3, 100}}
	for i, line := range lines {
		if err := c.Set(i, line); err != nil {
			t.Fatalf("Set(%d) failed: %v", i, err)
		}
	}

	for i, want := range lines {
		got, err := c.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if len(got) != len(want) || (len(want) > 0 && !reflect.DeepEqual(got, want)) {
			t.Errorf("Line %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestConstraintsOutOfBounds(t *testing.T) {
	c := NewConstraints(2)

	for _, idx := range []int{2, 3, 100, -1} {
		if err := c.Set(idx, []uint32{1}); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d): expected ErrOutOfBounds, got %v", idx, err)
		}
		if _, err := c.Get(idx); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d): expected ErrOutOfBounds, got %v", idx, err)
		}
	}
}

func TestConstraintsCopySemantics(t *testing.T) {
	c := NewConstraints(1)
	in := []uint32{4, 5}
	if err := c.Set(0, in); err != nil {
		t.Fatal(err)
	}

	in[0] = 99
	got, _ := c.Get(0)
	if got[0] != 4 {
		t.Errorf("Expected table to keep its own copy, got %v", got)
	}

	got[1] = 77
	again, _ := c.Get(0)
	if again[1] != 5 {
		t.Errorf("Expected Get to return a copy, got %v", again)
	}
}

func TestConstraintsLineMeasures(t *testing.T) {
	c := NewConstraints(2)
	_ = c.Set(0, []uint32{12, 3})
	_ = c.Set(1, []uint32{0, 100, 7, 1})

	if got := c.LineCount(0); got != 2 {
		t.Errorf("LineCount(0): expected 2, got %d", got)
	}
	if got := c.DigitWidth(0); got != 3 {
		t.Errorf("DigitWidth(0): expected 3, got %d", got)
	}
	if got := c.LineCount(1); got != 4 {
		t.Errorf("LineCount(1): expected 4, got %d", got)
	}
	if got := c.DigitWidth(1); got != 6 {
		t.Errorf("DigitWidth(1): expected 6, got %d", got)
	}
}

func TestConstraintsMaxAllEmpty(t *testing.T) {
	for _, size := range []int{0, 1, 5} {
		c := NewConstraints(size)

		if v, i := c.MaxLineCount(); v != 0 || i != 0 {
			t.Errorf("size %d MaxLineCount: expected (0, 0), got (%d, %d)", size, v, i)
		}
		if v, i := c.MaxDigitWidth(); v != 0 || i != 0 {
			t.Errorf("size %d MaxDigitWidth: expected (0, 0), got (%d, %d)", size, v, i)
		}
	}
}

func TestConstraintsMaxTieBreak(t *testing.T) {
	tests := []struct {
		name       string
		lines      [][]uint32
		countValue int
		countIndex int
		digitValue int
		digitIndex int
	}{
		{
			name:       "single max",
			lines:      [][]uint32{{1}, {1, 1, 1}, {2}},
			countValue: 3, countIndex: 1,
			digitValue: 3, digitIndex: 1,
		},
		{
			name:       "ties keep first",
			lines:      [][]uint32{{}, {1, 2}, {3, 4}, {10}},
			countValue: 2, countIndex: 1,
			digitValue: 2, digitIndex: 1,
		},
		{
			name:       "count and digits disagree",
			lines:      [][]uint32{{1, 1, 1}, {15, 20}},
			countValue: 3, countIndex: 0,
			digitValue: 4, digitIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConstraints(len(tt.lines))
			for i, line := range tt.lines {
				_ = c.Set(i, line)
			}

			if v, i := c.MaxLineCount(); v != tt.countValue || i != tt.countIndex {
				t.Errorf("MaxLineCount: expected (%d, %d), got (%d, %d)", tt.countValue, tt.countIndex, v, i)
			}
			if v, i := c.MaxDigitWidth(); v != tt.digitValue || i != tt.digitIndex {
				t.Errorf("MaxDigitWidth: expected (%d, %d), got (%d, %d)", tt.digitValue, tt.digitIndex, v, i)
			}
		})
	}
}
