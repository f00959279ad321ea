package vm

import "github.com/aramirez/mixvm/word"

// opModify6 implements INCA/DECA/ENTA/ENNA and their X-register
// counterparts, selected by F=0..3.
func (m *VM) opModify6(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	reg := m.regFor6(instr.Opcode)

	switch instr.Field {
	case 0, 1:
		offset := int64(addr)
		if instr.Field == 1 {
			offset = -offset
		}
		value, _ := reg.ToInt64()
		newWord, overflow := word.NewFullWordFromInt64(value + offset)
		*reg = newWord
		if overflow {
			m.Overflow = true
		}
	case 2, 3:
		newWord, _ := word.NewFullWordFromInt64(int64(addr))
		*reg = newWord
		if instr.Field == 3 {
			reg.FlipSign()
		}
	default:
		return m.fault(ErrInvalidField)
	}
	return nil
}

// opModify3 implements INC1-6/DEC1-6/ENT1-6/ENN1-6, the index-register
// counterpart of opModify6. The address is an unchecked effective
// address: ENT/ENN frequently load small literal constants that need
// not be valid memory locations.
func (m *VM) opModify3(instr Instruction) error {
	addr, err := m.effAddrUnchecked(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	reg := m.regFor3(instr.Opcode)

	switch instr.Field {
	case 0, 1:
		offset := int64(addr)
		if instr.Field == 1 {
			offset = -offset
		}
		value, _ := reg.ToInt64()
		newWord, overflow := word.NewHalfWordFromInt64(value + offset)
		*reg = newWord
		if overflow {
			m.Overflow = true
		}
	case 2, 3:
		newWord, _ := word.NewHalfWordFromInt64(int64(addr))
		*reg = newWord
		if instr.Field == 3 {
			reg.FlipSign()
		}
	default:
		return m.fault(ErrInvalidField)
	}
	return nil
}
