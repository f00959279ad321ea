package vm

import "github.com/aramirez/mixvm/word"

// copyFieldRightAligned copies the n = r-l+1 bytes of src[l..=r] into the
// rightmost n bytes of dst, preserving their relative order. It
// implements the "shifted right" byte alignment every load/store
// instruction uses to place a field into a full-width register or cell.
func copyFieldRightAligned(dst *[6]byte, src [6]byte, l, r int) {
	n := r - l + 1
	for i := 0; i < n; i++ {
		dst[5-i] = src[r-i]
	}
}

// opLoad6 implements LDA and LDX: load a field of a memory cell into a
// full register, zeroing the rest (the field's sign, if included,
// carries through; otherwise the loaded value is positive).
func (m *VM) opLoad6(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	cell := m.Mem[addr]
	l, r, signCopy := instr.Field.SignlessRange()

	reg := m.regFor6(instr.Opcode)
	*reg = word.FullWord{word.Pos, 0, 0, 0, 0, 0}
	var raw [6]byte
	copyFieldRightAligned(&raw, cell, l, r)
	copy(reg[1:], raw[1:])
	if signCopy {
		reg[0] = cell[0]
	}
	return nil
}

// opLoadNeg6 implements LDAN and LDXN: like opLoad6, but the loaded
// sign (when the field includes it) is inverted.
func (m *VM) opLoadNeg6(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	cell := m.Mem[addr]
	l, r, signCopy := instr.Field.SignlessRange()

	reg := m.regFor6(instr.Opcode)
	*reg = word.FullWord{word.Pos, 0, 0, 0, 0, 0}
	var raw [6]byte
	copyFieldRightAligned(&raw, cell, l, r)
	copy(reg[1:], raw[1:])
	if signCopy {
		reg[0] = cell[0]
		reg.FlipSign()
	}
	return nil
}

// opLoad3 implements LD1..LD6: only the field's sign byte and its low
// two magnitude bytes can ever reach an index register, so the field is
// first assembled into a scratch full word and only those three bytes
// are kept.
func (m *VM) opLoad3(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	cell := m.Mem[addr]
	l, r, signCopy := instr.Field.SignlessRange()

	temp := [6]byte{word.Pos, 0, 0, 0, 0, 0}
	copyFieldRightAligned(&temp, cell, l, r)
	if signCopy {
		temp[0] = cell[0]
	}

	reg := m.regFor3(instr.Opcode)
	reg[0], reg[1], reg[2] = temp[0], temp[4], temp[5]
	return nil
}

// opLoadNeg3 implements LD1N..LD6N: like opLoad3, with the sign
// inverted when the field includes it.
func (m *VM) opLoadNeg3(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	cell := m.Mem[addr]
	l, r, signCopy := instr.Field.SignlessRange()

	temp := [6]byte{word.Pos, 0, 0, 0, 0, 0}
	copyFieldRightAligned(&temp, cell, l, r)
	if signCopy {
		temp[0] = cell[0]
		if temp[0] == word.Pos {
			temp[0] = word.Neg
		} else {
			temp[0] = word.Pos
		}
	}

	reg := m.regFor3(instr.Opcode)
	reg[0], reg[1], reg[2] = temp[0], temp[4], temp[5]
	return nil
}

// opStore6 implements STA and STX: write a register field into memory,
// leaving the rest of the cell untouched.
func (m *VM) opStore6(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	reg := *m.regFor6(instr.Opcode)
	m.storeField(addr, [6]byte(reg), instr.Field)
	return nil
}

// opStore3 implements ST1..ST6: the 3-byte register is first padded
// into the same 6-byte layout opLoad3 unpacks, then stored like STA.
func (m *VM) opStore3(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	reg := m.regFor3(instr.Opcode)
	padded := [6]byte{reg[0], 0, 0, 0, reg[1], reg[2]}
	m.storeField(addr, padded, instr.Field)
	return nil
}

// opStoreJ implements STJ: rJ (always positive) padded and stored the
// same way as the 3-byte registers.
func (m *VM) opStoreJ(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	padded := [6]byte{m.RJ[0], 0, 0, 0, m.RJ[1], m.RJ[2]}
	m.storeField(addr, padded, instr.Field)
	return nil
}

// storeField writes the rightmost r-l+1 bytes of src into the field
// l..=r of memory cell addr (the inverse of the load alignment),
// preserving the rest of the cell.
func (m *VM) storeField(addr uint16, src [6]byte, field word.Field) {
	l, r, signCopy := field.SignlessRange()
	cell := m.Mem[addr]
	n := r - l + 1
	for i := 0; i < n; i++ {
		cell[r-i] = src[5-i]
	}
	if signCopy {
		cell[0] = src[0]
	}
	m.Mem[addr] = cell
}

// opStoreZero implements STZ: zero the field l..=r of a memory cell,
// forcing a positive sign if the field includes byte 0.
func (m *VM) opStoreZero(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	l, r := instr.Field.Range()
	cell := m.Mem[addr]
	for i := l; i <= r; i++ {
		if i == 0 {
			cell[0] = word.Pos
		} else {
			cell[i] = 0
		}
	}
	m.Mem[addr] = cell
	return nil
}

// opMove implements MOVE: copy F consecutive words starting at the
// effective address to the block starting at rI1, then advance rI1 by
// F. Overlapping source/destination ranges are copied low-to-high
// address, matching a straightforward word-by-word loop.
func (m *VM) opMove(instr Instruction) error {
	fromAddr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	toAddrSigned, _ := m.RI[1].ToInt64()
	toAddr := uint16(toAddrSigned)
	count := uint16(instr.Field)

	for i := uint16(0); i < count; i++ {
		src := fromAddr + i
		dst := toAddr + i
		if int(src) >= MemSize || int(dst) >= MemSize {
			return m.fault(ErrInvalidAddress)
		}
		m.Mem[dst] = m.Mem[src]
	}

	newI1 := toAddrSigned + int64(count)
	packed, overflow := word.NewHalfWordFromInt64(newI1)
	m.RI[1] = packed
	if overflow {
		m.Overflow = true
	}
	return nil
}

// regFor6 selects rA or rX by opcode. Every full-word family (load,
// store, jump, modify, compare) assigns its A-register opcode first and
// its X-register opcode last, so this covers LDA/LDAN/STA, JA, ENTA/
// ENNA/INCA/DECA, and CMPA; everything else in these families targets
// rX.
func (m *VM) regFor6(op Opcode) *word.FullWord {
	switch op {
	case OpLdA, OpLdAN, OpStA, OpJA, OpModifyA, OpCmpA:
		return &m.RA
	default:
		return &m.RX
	}
}

// regFor3 selects an index register by opcode, for the Ld/Ldn/St
// 3-byte families.
func (m *VM) regFor3(op Opcode) *word.HalfWord {
	return &m.RI[indexRegNum(op)]
}

// indexRegNum maps a 3-byte opcode (load, negated load, store, jump,
// modify, or compare) to its 1..6 index register number.
func indexRegNum(op Opcode) int {
	switch op {
	case OpLd1, OpLd1N, OpSt1, OpJ1, OpModify1, OpCmp1:
		return 1
	case OpLd2, OpLd2N, OpSt2, OpJ2, OpModify2, OpCmp2:
		return 2
	case OpLd3, OpLd3N, OpSt3, OpJ3, OpModify3, OpCmp3:
		return 3
	case OpLd4, OpLd4N, OpSt4, OpJ4, OpModify4, OpCmp4:
		return 4
	case OpLd5, OpLd5N, OpSt5, OpJ5, OpModify5, OpCmp5:
		return 5
	default:
		return 6
	}
}
