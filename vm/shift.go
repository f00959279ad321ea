package vm

import (
	"encoding/binary"
	"math/big"

	"github.com/aramirez/mixvm/word"
)

// eightyBitMask is (1<<80)-1, used to keep the combined rA:rX shift
// result to its 80-bit width.
var eightyBitMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 80), big.NewInt(1))

// opShift implements the eight shift variants (SLA, SRA, SLAX, SRAX,
// SLC, SRC, SLB, SRB) selected by F=0..7. The shift count is an
// effective address, so it is bounds-checked like a memory reference
// even though it is never dereferenced.
func (m *VM) opShift(instr Instruction) error {
	count, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}

	switch instr.Field {
	case 0, 1:
		return m.shiftA(instr.Field, count)
	case 2, 3, 6, 7:
		return m.shiftAX(instr.Field, count)
	case 4, 5:
		return m.shiftCircular(instr.Field, count)
	default:
		return m.fault(ErrInvalidField)
	}
}

// shiftA implements SLA (F=0) and SRA (F=1): a byte shift confined to
// rA, with rA's five magnitude bytes taken as an unsigned 64-bit value
// for the shift and the low 5 bytes written back as the new magnitude.
// rA's sign byte is untouched.
func (m *VM) shiftA(field word.Field, count uint16) error {
	bits := magnitude5(m.RA)
	if field == 0 {
		bits <<= uint(count) * 8
	} else {
		bits >>= uint(count) * 8
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], bits)
	copy(m.RA[1:], buf[3:8])
	return nil
}

// shiftAX implements SLAX/SRAX (byte shifts, F=2,3) and SLB/SRB (bit
// shifts, F=6,7) across the combined 80-bit rA:rX magnitude.
func (m *VM) shiftAX(field word.Field, count uint16) error {
	var combinedBytes [10]byte
	copy(combinedBytes[0:5], m.RA[1:6])
	copy(combinedBytes[5:10], m.RX[1:6])
	combined := new(big.Int).SetBytes(combinedBytes[:])

	switch field {
	case 2:
		combined.Lsh(combined, uint(count)*8)
	case 3:
		combined.Rsh(combined, uint(count)*8)
	case 6:
		combined.Lsh(combined, uint(count))
	case 7:
		combined.Rsh(combined, uint(count))
	}
	combined.And(combined, eightyBitMask)

	var result [10]byte
	combined.FillBytes(result[:])
	copy(m.RA[1:6], result[0:5])
	copy(m.RX[1:6], result[5:10])
	return nil
}

// shiftCircular implements SLC (F=4) and SRC (F=5): a cyclic rotation
// of the ten magnitude bytes spanning rA and rX, by count%10 positions.
func (m *VM) shiftCircular(field word.Field, count uint16) error {
	var orig [10]byte
	copy(orig[0:5], m.RA[1:6])
	copy(orig[5:10], m.RX[1:6])

	offset := int(count % 10)
	if field == 5 {
		offset = (10 - offset) % 10
	}

	var rotated [10]byte
	for i := 0; i < 10; i++ {
		rotated[i] = orig[(i+offset)%10]
	}
	copy(m.RA[1:6], rotated[0:5])
	copy(m.RX[1:6], rotated[5:10])
	return nil
}
