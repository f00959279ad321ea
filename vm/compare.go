package vm

import (
	"math"

	"github.com/aramirez/mixvm/word"
)

// opCmp6 implements CMPA and CMPX, including their F=7 float extension.
func (m *VM) opCmp6(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	target := m.Mem[addr]
	reg := *m.regFor6(instr.Opcode)

	if instr.Field == 7 {
		regVal := float32Bytes(reg)
		targetVal := float32Bytes(target)
		switch {
		case math.IsNaN(float64(regVal)) || math.IsNaN(float64(targetVal)):
			m.Comp = CompUnordered
		case regVal < targetVal:
			m.Comp = CompLess
		case regVal > targetVal:
			m.Comp = CompGreater
		default:
			m.Comp = CompEqual
		}
		return nil
	}

	l, r := instr.Field.Range()
	targetVal, _ := target.ToInt64Ranged(l, r)
	regVal, _ := reg.ToInt64Ranged(l, r)
	m.Comp = compareInt64(regVal, targetVal)
	return nil
}

// opCmp3 implements CMP1..CMP6: the index register is padded to a full
// word before the field comparison, matching the load/store family.
func (m *VM) opCmp3(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	target := m.Mem[addr]
	reg := m.regFor3(instr.Opcode)

	l, r := instr.Field.Range()
	targetVal, _ := target.ToInt64Ranged(l, r)
	padded := [6]byte{reg[0], 0, 0, 0, reg[1], reg[2]}
	var paddedWord word.FullWord
	copy(paddedWord[:], padded[:])
	regVal, _ := paddedWord.ToInt64Ranged(l, r)
	m.Comp = compareInt64(regVal, targetVal)
	return nil
}

// compareInt64 treats +0 and -0 as equal, matching MIX's sign-magnitude
// zero.
func compareInt64(a, b int64) CompIndicator {
	switch {
	case a == b || (a == 0 && b == 0):
		return CompEqual
	case a > b:
		return CompGreater
	default:
		return CompLess
	}
}
