package vm

import (
	"errors"

	"github.com/aramirez/mixvm/word"
)

var errInvalidField = errors.New("invalid field")

// opJmp implements the JMP family (JMP, JSJ, JOV, JNOV, and the eight
// comparison-indicator jumps), selected by F=0..11.
func (m *VM) opJmp(instr Instruction) error {
	target, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}

	var shouldJump bool
	switch instr.Field {
	case 0, 1:
		shouldJump = true
	case 2:
		shouldJump = m.Overflow
	case 3:
		shouldJump = !m.Overflow
	case 4:
		shouldJump = m.Comp == CompLess
	case 5:
		shouldJump = m.Comp == CompEqual
	case 6:
		shouldJump = m.Comp == CompGreater
	case 7:
		shouldJump = m.Comp != CompLess
	case 8:
		shouldJump = m.Comp != CompEqual
	case 9:
		shouldJump = m.Comp != CompGreater
	case 10:
		shouldJump = m.Comp != CompUnordered
	case 11:
		shouldJump = m.Comp == CompUnordered
	default:
		return m.fault(ErrInvalidField)
	}

	if instr.Field == 2 || instr.Field == 3 {
		m.Overflow = false
	}
	if shouldJump {
		m.doJump(target, instr.Field != 1)
	}
	return nil
}

// opJmpReg6 implements JA and JX: jump on a sign or parity test of the
// full register's value.
func (m *VM) opJmpReg6(instr Instruction) error {
	target, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	reg := m.regFor6(instr.Opcode)
	value, _ := reg.ToInt64()

	shouldJump, err := jumpRegCondition(instr.Field, value, true)
	if err != nil {
		return m.fault(ErrInvalidField)
	}
	if shouldJump {
		m.doJump(target, true)
	}
	return nil
}

// opJmpReg3 implements J1..J6: like opJmpReg6, restricted to the six
// sign-test fields (no parity test for index registers).
func (m *VM) opJmpReg3(instr Instruction) error {
	target, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	reg := m.regFor3(instr.Opcode)
	value, _ := reg.ToInt64()

	shouldJump, err := jumpRegCondition(instr.Field, value, false)
	if err != nil {
		return m.fault(ErrInvalidField)
	}
	if shouldJump {
		m.doJump(target, true)
	}
	return nil
}

// jumpRegCondition evaluates the F=0..5 sign tests shared by the
// register-jump families, plus F=6,7 parity tests when allowParity is
// set (JA/JX only).
func jumpRegCondition(field word.Field, value int64, allowParity bool) (bool, error) {
	sign := int64(0)
	switch {
	case value < 0:
		sign = -1
	case value > 0:
		sign = 1
	}
	switch field {
	case 0:
		return sign == -1, nil
	case 1:
		return sign == 0, nil
	case 2:
		return sign == 1, nil
	case 3:
		return sign != -1, nil
	case 4:
		return sign != 0, nil
	case 5:
		return sign != 1, nil
	case 6:
		if allowParity {
			return value&1 == 0, nil
		}
	case 7:
		if allowParity {
			return value&1 != 0, nil
		}
	}
	return false, errInvalidField
}
