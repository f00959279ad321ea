package vm

import (
	"testing"

	"github.com/aramirez/mixvm/word"
)

func TestOpHlt(t *testing.T) {
	m := newRunningVM()
	m.Mem[0] = NewInstruction(0, 0, 2, OpSpecial).Encode() // HLT

	mustStep(t, m)

	if !m.Halted {
		t.Error("HLT must set Halted")
	}
}

func TestOpNotComplementsMagnitudeAndFlipsSign(t *testing.T) {
	m := newRunningVM()
	m.RA = word.FullWord{word.Pos, 0, 0, 0, 0, 5}
	m.Mem[0] = NewInstruction(0, 0, 9, OpSpecial).Encode() // NOT

	mustStep(t, m)

	want := word.FullWord{word.Neg, 0xFF, 0xFF, 0xFF, 0xFF, 0xFA}
	if m.RA != want {
		t.Errorf("rA = %+v, want %+v", m.RA, want)
	}
}

func TestOpBitwiseAnd(t *testing.T) {
	m := newRunningVM()
	m.RA = word.FullWord{word.Pos, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	m.Mem[100] = word.FullWord{word.Neg, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}
	m.Mem[0] = NewInstruction(100, 0, 10, OpSpecial).Encode() // ANDA 100

	mustStep(t, m)

	want := word.FullWord{word.Pos, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}
	if m.RA != want {
		t.Errorf("rA = %+v, want %+v", m.RA, want)
	}
}

func TestOpBitwiseXor(t *testing.T) {
	m := newRunningVM()
	m.RA = word.FullWord{word.Pos, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0}
	m.Mem[100] = word.FullWord{word.Pos, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}
	m.Mem[0] = NewInstruction(100, 0, 12, OpSpecial).Encode() // XORA 100

	mustStep(t, m)

	want := word.FullWord{word.Pos, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if m.RA != want {
		t.Errorf("rA = %+v, want %+v", m.RA, want)
	}
}

func TestOpFloatConvertFixToFloat(t *testing.T) {
	m := newRunningVM()
	m.RA = word.FullWord{word.Pos, 0, 0, 0, 0, 100}
	m.Mem[0] = NewInstruction(0, 0, 8, OpSpecial).Encode() // FLT (byte-sized fixed to float)

	mustStep(t, m)

	got := float32Bytes(m.RA)
	if got != 100 {
		t.Errorf("converted float = %v, want 100", got)
	}
}

func TestOpFloatConvertFloatToFix(t *testing.T) {
	m := newRunningVM()
	m.RA = packFloat32(100)
	m.Mem[0] = NewInstruction(0, 0, 3, OpSpecial).Encode() // FIX (32-bit range)

	mustStep(t, m)

	want := word.FullWord{word.Pos, 0, 0, 0, 0, 100}
	if m.RA != want {
		t.Errorf("rA = %+v, want %+v", m.RA, want)
	}
	if m.Overflow {
		t.Error("overflow set, want false")
	}
}

func TestOpFloatConvertFixOverflow(t *testing.T) {
	m := newRunningVM()
	m.RA = packFloat32(1e20)
	m.Mem[0] = NewInstruction(0, 0, 3, OpSpecial).Encode() // FIX (32-bit range)

	mustStep(t, m)

	if !m.Overflow {
		t.Error("overflow not set when the float exceeds the target integer range")
	}
}
