package vm

import (
	"math"

	"github.com/aramirez/mixvm/word"
)

// opSpecial dispatches the miscellaneous F=0..12 operations that share
// opcode 5: NUM, CHAR, HLT, the IEEE-754 float/integer conversions, and
// the bitwise NOT/AND/OR/XOR extensions.
func (m *VM) opSpecial(instr Instruction) error {
	switch instr.Field {
	case 0:
		return m.opNum()
	case 1:
		return m.opChar()
	case 2:
		m.Halted = true
		return nil
	case 3, 4, 5, 6, 7, 8:
		return m.opFloatConvert(instr.Field)
	case 9:
		return m.opNot()
	case 10, 11, 12:
		return m.opBitwise(instr)
	default:
		return m.fault(ErrInvalidField)
	}
}

// opNum packs the low decimal digit of each byte of rAX, most
// significant first, into a five-byte magnitude left in rA. rA's sign
// byte is untouched.
func (m *VM) opNum() error {
	var result int64
	for _, b := range m.RA[1:] {
		result = result*10 + int64(b%10)
	}
	for _, b := range m.RX[1:] {
		result = result*10 + int64(b%10)
	}
	packed, _ := word.NewFullWordFromInt64(result)
	copy(m.RA[1:], packed[1:])
	return nil
}

// opChar spreads the ten decimal digits of |rA| across rA and rX as
// character codes (digit+30), least significant digit rightmost in rX.
func (m *VM) opChar() error {
	source, _ := m.RA.ToInt64()
	if source < 0 {
		source = -source
	}
	for regI := 9; regI >= 0; regI-- {
		digit := byte(source%10) + 30
		if regI >= 5 {
			m.RX[regI-5+1] = digit
		} else {
			m.RA[regI+1] = digit
		}
		source /= 10
	}
	return nil
}

// opFloatConvert implements the F=3..8 float/integer conversions, all
// operating on rA in place.
func (m *VM) opFloatConvert(field word.Field) error {
	reg := &m.RA
	switch field {
	case 3, 4, 5:
		orig := float32Bytes(*reg)
		sign := word.Pos
		if math.Signbit(float64(orig)) {
			sign = word.Neg
		}
		*reg = word.FullWord{sign, 0, 0, 0, 0, 0}

		var limit float64
		switch field {
		case 3:
			limit = math.MaxInt32
		case 4:
			limit = math.MaxInt16
		case 5:
			limit = math.MaxInt8
		}
		if math.IsNaN(float64(orig)) || math.IsInf(float64(orig), 0) || float64(orig) > limit || float64(orig) < -limit-1 {
			m.Overflow = true
		}

		switch field {
		case 3:
			result := uint32(math.Abs(float64(orig)))
			reg[2], reg[3], reg[4], reg[5] = byte(result>>24), byte(result>>16), byte(result>>8), byte(result)
		case 4:
			result := uint16(math.Abs(float64(orig)))
			reg[4], reg[5] = byte(result>>8), byte(result)
		case 5:
			reg[5] = byte(uint8(math.Abs(float64(orig))))
		}
		return nil
	case 6, 7, 8:
		var value float32
		switch field {
		case 6:
			value = float32(uint32(reg[2])<<24 | uint32(reg[3])<<16 | uint32(reg[4])<<8 | uint32(reg[5]))
		case 7:
			value = float32(uint16(reg[4])<<8 | uint16(reg[5]))
		case 8:
			value = float32(reg[5])
		}
		*reg = word.FullWord{word.Pos, 0, 0, 0, 0, 0}
		bits := math.Float32bits(value)
		reg[2], reg[3], reg[4], reg[5] = byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits)
		return nil
	default:
		return m.fault(ErrInvalidField)
	}
}

// opNot flips rA's sign and complements its five magnitude bytes.
func (m *VM) opNot() error {
	m.RA.FlipSign()
	for i := 1; i <= 5; i++ {
		m.RA[i] = ^m.RA[i]
	}
	return nil
}

// opBitwise implements AND/OR/XOR (F=10..12), combining rA with a memory
// operand byte by byte, sign byte included.
func (m *VM) opBitwise(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	cell := m.Mem[addr]
	for i := 0; i < 6; i++ {
		switch instr.Field {
		case 10:
			m.RA[i] &= cell[i]
		case 11:
			m.RA[i] |= cell[i]
		case 12:
			m.RA[i] ^= cell[i]
		}
	}
	return nil
}
