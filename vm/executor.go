package vm

import "github.com/aramirez/mixvm/word"

// Step fetches, decodes, and executes one instruction. On success the
// program counter has advanced by at least one, except after a taken
// jump, where it equals the jump target. Any returned error halts the
// machine; partially-completed side
// effects from the failing instruction are not rolled back.
func (m *VM) Step() error {
	if m.Halted {
		return &Error{Code: ErrHalted, PC: m.PC}
	}

	cell := m.Mem[m.PC]
	instr, ok := DecodeInstruction(cell)
	if !ok {
		return m.fault(ErrIllegalInstruction)
	}
	m.PC++

	var err error
	switch instr.Opcode {
	case OpNop:
		// no-op
	case OpAdd, OpSub:
		err = m.opAddSub(instr)
	case OpMul:
		err = m.opMul(instr)
	case OpDiv:
		err = m.opDiv(instr)
	case OpSpecial:
		err = m.opSpecial(instr)
	case OpShift:
		err = m.opShift(instr)
	case OpMove:
		err = m.opMove(instr)
	case OpLdA, OpLdX:
		err = m.opLoad6(instr)
	case OpLd1, OpLd2, OpLd3, OpLd4, OpLd5, OpLd6:
		err = m.opLoad3(instr)
	case OpLdAN, OpLdXN:
		err = m.opLoadNeg6(instr)
	case OpLd1N, OpLd2N, OpLd3N, OpLd4N, OpLd5N, OpLd6N:
		err = m.opLoadNeg3(instr)
	case OpStA, OpStX:
		err = m.opStore6(instr)
	case OpSt1, OpSt2, OpSt3, OpSt4, OpSt5, OpSt6:
		err = m.opStore3(instr)
	case OpStJ:
		err = m.opStoreJ(instr)
	case OpStZ:
		err = m.opStoreZero(instr)
	case OpJbus, OpJred:
		err = m.opJbusJred(instr)
	case OpIoc:
		err = m.opIoc(instr)
	case OpIn, OpOut:
		err = m.opInOut(instr)
	case OpJmp:
		err = m.opJmp(instr)
	case OpJA, OpJX:
		err = m.opJmpReg6(instr)
	case OpJ1, OpJ2, OpJ3, OpJ4, OpJ5, OpJ6:
		err = m.opJmpReg3(instr)
	case OpModifyA, OpModifyX:
		err = m.opModify6(instr)
	case OpModify1, OpModify2, OpModify3, OpModify4, OpModify5, OpModify6:
		err = m.opModify3(instr)
	case OpCmpA, OpCmpX:
		err = m.opCmp6(instr)
	case OpCmp1, OpCmp2, OpCmp3, OpCmp4, OpCmp5, OpCmp6:
		err = m.opCmp3(instr)
	default:
		err = m.fault(ErrIllegalInstruction)
	}
	if err != nil {
		m.Halted = true
		return err
	}
	return nil
}

// effAddr computes A + rI[I], validated to fit in a memory address
// (0..4000). index must be 0..6.
func (m *VM) effAddr(addr int16, index uint8) (uint16, error) {
	v, err := m.effAddrUnchecked(addr, index)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= MemSize {
		return 0, m.fault(ErrInvalidAddress)
	}
	return uint16(v), nil
}

// effAddrUnchecked computes A + rI[I] as a signed 16-bit value without
// range-checking it against memory, for modify-family immediates and I/O
// command words. The index is still validated.
func (m *VM) effAddrUnchecked(addr int16, index uint8) (int16, error) {
	if index > 6 {
		return 0, m.fault(ErrInvalidIndex)
	}
	regVal, _ := m.RI[index].ToInt64()
	sum := regVal + int64(addr)
	if sum < -32768 || sum > 32767 {
		return 0, m.fault(ErrInvalidAddress)
	}
	return int16(sum), nil
}

// doJump sets PC to loc, saving the current (post-increment) PC into rJ
// first unless saveRJ is false (JSJ).
func (m *VM) doJump(loc uint16, saveRJ bool) {
	if saveRJ {
		rj, _ := word.NewPosHalfWordFromInt64(int64(m.PC))
		m.RJ = rj
	}
	m.PC = loc
}
