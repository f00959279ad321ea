package vm

import (
	"testing"

	"github.com/aramirez/mixvm/word"
)

func TestOpModify6IncDec(t *testing.T) {
	m := newRunningVM()
	m.RA, _ = word.NewFullWordFromInt64(10)
	m.Mem[0] = NewInstruction(3, 0, 0, OpModifyA).Encode() // INCA 3

	mustStep(t, m)

	got, _ := m.RA.ToInt64()
	if got != 13 {
		t.Errorf("rA = %d, want 13", got)
	}

	m.PC = 1
	m.Mem[1] = NewInstruction(5, 0, 1, OpModifyA).Encode() // DECA 5
	mustStep(t, m)

	got, _ = m.RA.ToInt64()
	if got != 8 {
		t.Errorf("rA = %d, want 8", got)
	}
}

func TestOpModify6EntEnn(t *testing.T) {
	m := newRunningVM()
	m.RA, _ = word.NewFullWordFromInt64(999)
	m.Mem[0] = NewInstruction(7, 0, 2, OpModifyA).Encode() // ENTA 7

	mustStep(t, m)

	want, _ := word.NewFullWordFromInt64(7)
	if m.RA != want {
		t.Errorf("rA = %+v, want %+v", m.RA, want)
	}

	m.PC = 1
	m.Mem[1] = NewInstruction(7, 0, 3, OpModifyA).Encode() // ENNA 7
	mustStep(t, m)

	want, _ = word.NewFullWordFromInt64(-7)
	if m.RA != want {
		t.Errorf("rA = %+v, want %+v", m.RA, want)
	}
}

func TestOpModify6IncOverflow(t *testing.T) {
	m := newRunningVM()
	m.RA = word.FullWord{word.Pos, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	m.Mem[0] = NewInstruction(1, 0, 0, OpModifyA).Encode() // INCA 1

	mustStep(t, m)

	if !m.Overflow {
		t.Error("overflow not set when INCA exceeds five magnitude bytes")
	}
}

func TestOpModify3IndexRegisters(t *testing.T) {
	m := newRunningVM()
	m.RI[4], _ = word.NewHalfWordFromInt64(100)
	m.Mem[0] = NewInstruction(5, 0, 0, OpModify4).Encode() // INC4 5

	mustStep(t, m)

	got, _ := m.RI[4].ToInt64()
	if got != 105 {
		t.Errorf("rI4 = %d, want 105", got)
	}
}

func TestOpModify3EntUsesUncheckedAddress(t *testing.T) {
	m := newRunningVM()
	// 9000 is outside the 4000-word memory, but ENT5 only loads it as a
	// literal value, never dereferences it.
	m.Mem[0] = NewInstruction(9000, 0, 2, OpModify5).Encode() // ENT5 9000

	mustStep(t, m)

	got, _ := m.RI[5].ToInt64()
	if got != 9000 {
		t.Errorf("rI5 = %d, want 9000", got)
	}
}

func TestOpModify3EnnNegatesZero(t *testing.T) {
	m := newRunningVM()
	m.Mem[0] = NewInstruction(0, 0, 3, OpModify1).Encode() // ENN1 0

	mustStep(t, m)

	if m.RI[1].IsPositive() {
		t.Error("ENN1 0 must still flip the sign to negative")
	}
	got, _ := m.RI[1].ToInt64()
	if got != 0 {
		t.Errorf("rI1 = %d, want 0", got)
	}
}
