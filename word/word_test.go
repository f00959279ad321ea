package word

import "testing"

func TestFullWordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   int64
	}{
		{"zero", 0},
		{"small positive", 42},
		{"small negative", -42},
		{"max five bytes", 1<<40 - 1},
		{"min five bytes", -(1<<40 - 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, overflow := NewFullWordFromInt64(tt.in)
			if overflow {
				t.Fatalf("NewFullWordFromInt64(%d) overflowed unexpectedly", tt.in)
			}
			got, overflow := w.ToInt64()
			if overflow {
				t.Fatalf("ToInt64() overflowed unexpectedly")
			}
			if got != tt.in {
				t.Errorf("round trip: got %d, want %d", got, tt.in)
			}
		})
	}
}

func TestFullWordFromInt64Overflow(t *testing.T) {
	tests := []struct {
		name string
		in   int64
	}{
		{"just over five bytes", 1 << 40},
		{"large negative", -(1 << 41)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, overflow := NewFullWordFromInt64(tt.in)
			if !overflow {
				t.Errorf("NewFullWordFromInt64(%d): want overflow, got none", tt.in)
			}
		})
	}
}

func TestFullWordSignOfRangedValue(t *testing.T) {
	w := FullWord{Neg, 0, 0, 0, 1, 2}
	v, overflow := w.ToInt64Ranged(0, 5)
	if overflow {
		t.Fatalf("unexpected overflow")
	}
	if v >= 0 {
		t.Errorf("field 0:5 of a negative word: got non-negative %d", v)
	}
	v, _ = w.ToInt64Ranged(1, 5)
	if v < 0 {
		t.Errorf("field 1:5 must ignore sign: got %d", v)
	}
}

func TestFullWordZeroSignsCompareEqual(t *testing.T) {
	pos := FullWord{Pos, 0, 0, 0, 0, 0}
	neg := FullWord{Neg, 0, 0, 0, 0, 0}
	pv, _ := pos.ToInt64()
	nv, _ := neg.ToInt64()
	if pv != 0 || nv != 0 {
		t.Errorf("both zero representations must convert to 0: got %d and %d", pv, nv)
	}
}

func TestHalfWordRoundTrip(t *testing.T) {
	w, overflow := NewHalfWordFromInt64(-1234)
	if overflow {
		t.Fatalf("unexpected overflow")
	}
	got, _ := w.ToInt64()
	if got != -1234 {
		t.Errorf("got %d, want -1234", got)
	}
}

func TestPosHalfWordAlwaysPositive(t *testing.T) {
	w, overflow := NewPosHalfWordFromInt64(-7)
	if overflow {
		t.Fatalf("unexpected overflow")
	}
	if !w.IsPositive() {
		t.Errorf("PosHalfWord must stay positive regardless of input sign")
	}
	got, _ := w.ToInt64()
	if got != 7 {
		t.Errorf("got %d, want 7 (magnitude only)", got)
	}
	w.FlipSign()
	if !w.IsPositive() {
		t.Errorf("FlipSign on PosHalfWord must be a no-op")
	}
}

func TestFieldRange(t *testing.T) {
	tests := []struct {
		f        Field
		wantL    int
		wantR    int
		wantSign bool
	}{
		{0, 0, 0, true},
		{5, 0, 5, true},
		{13, 1, 5, false},
		{45, 5, 5, false},
	}
	for _, tt := range tests {
		l, r := tt.f.Range()
		if l != tt.wantL || r != tt.wantR {
			t.Errorf("Field(%d).Range() = (%d,%d), want (%d,%d)", tt.f, l, r, tt.wantL, tt.wantR)
		}
		_, _, hadSign := tt.f.SignlessRange()
		if hadSign != tt.wantSign {
			t.Errorf("Field(%d).SignlessRange() hadSign = %v, want %v", tt.f, hadSign, tt.wantSign)
		}
	}
}
