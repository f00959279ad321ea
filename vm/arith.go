package vm

import (
	"math"
	"math/big"

	"github.com/aramirez/mixvm/word"
)

// float32Bytes reads the big-endian binary32 payload from bytes 2..5 of
// a FullWord; the optional IEEE-754 extensions (F=7) use this layout,
// with byte 0 carrying the sign and byte 1 unused.
func float32Bytes(w word.FullWord) float32 {
	bits := uint32(w[2])<<24 | uint32(w[3])<<16 | uint32(w[4])<<8 | uint32(w[5])
	return math.Float32frombits(bits)
}

// packFloat32 writes v into the receiver's float32 layout: sign in byte
// 0, byte 1 cleared, big-endian binary32 in bytes 2..5.
func packFloat32(v float32) word.FullWord {
	bits := math.Float32bits(v)
	sign := word.Pos
	if math.Signbit(float64(v)) {
		sign = word.Neg
	}
	return word.FullWord{
		sign, 0,
		byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits),
	}
}

// opAddSub implements ADD and SUB, including their F=7 float extension.
func (m *VM) opAddSub(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	target := m.Mem[addr]

	if instr.Field == 7 {
		orig := float32Bytes(m.RA)
		other := float32Bytes(target)
		var result float32
		if instr.Opcode == OpAdd {
			result = orig + other
		} else {
			result = orig - other
		}
		m.RA = packFloat32(result)
		if math.IsInf(float64(result), 0) || math.IsNaN(float64(result)) {
			m.Overflow = true
		}
		return nil
	}

	l, r := instr.Field.Range()
	orig, _ := m.RA.ToInt64()
	target64, _ := target.ToInt64Ranged(l, r)
	var result int64
	if instr.Opcode == OpAdd {
		result = orig + target64
	} else {
		result = orig - target64
	}
	newWord, overflow := word.NewFullWordFromInt64(result)
	m.RA = newWord
	if overflow {
		m.Overflow = true
	}
	return nil
}

// opMul implements MUL and its F=7 float extension. The integer form
// places a 10-byte product across rA (high half) and rX (low half).
func (m *VM) opMul(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	target := m.Mem[addr]

	if instr.Field == 7 {
		orig := float32Bytes(m.RA)
		other := float32Bytes(target)
		result := orig * other
		m.RA = packFloat32(result)
		if math.IsInf(float64(result), 0) || math.IsNaN(float64(result)) {
			m.Overflow = true
		}
		return nil
	}

	l, r := instr.Field.Range()
	orig, _ := m.RA.ToInt64()
	target64, _ := target.ToInt64Ranged(l, r)
	// The magnitudes fit in int64, but their product can need up to 128
	// bits; compute the unsigned product by hand rather than risking
	// int64 overflow.
	hi, lo := mul64(orig, target64)
	negative := (orig < 0) != (target64 < 0) && orig != 0 && target64 != 0
	aBytes, xBytes, overflow := splitProduct(hi, lo)
	sign := word.Pos
	if negative {
		sign = word.Neg
	}
	m.RA = word.FullWord{sign, aBytes[0], aBytes[1], aBytes[2], aBytes[3], aBytes[4]}
	m.RX = word.FullWord{sign, xBytes[0], xBytes[1], xBytes[2], xBytes[3], xBytes[4]}
	if overflow {
		m.Overflow = true
	}
	return nil
}

// mul64 multiplies the absolute values of a and b and returns the
// 128-bit unsigned product split into high and low 64-bit halves.
func mul64(a, b int64) (hi, lo uint64) {
	ua := uint64(a)
	if a < 0 {
		ua = uint64(-a)
	}
	ub := uint64(b)
	if b < 0 {
		ub = uint64(-b)
	}
	const mask32 = 1<<32 - 1
	aLo, aHi := ua&mask32, ua>>32
	bLo, bHi := ub&mask32, ub>>32

	t0 := aLo * bLo
	t1 := aHi*bLo + t0>>32
	t2 := aLo*bHi + t1&mask32
	loRes := (t2 << 32) | t0&mask32
	hiRes := aHi*bHi + t1>>32 + t2>>32
	return hiRes, loRes
}

// splitProduct lays out a 128-bit unsigned magnitude (hi:lo) into the
// rightmost 10 bytes of the rAX pair (five bytes each), reporting
// overflow if any higher byte is non-zero.
func splitProduct(hi, lo uint64) (aBytes, xBytes [5]byte, overflow bool) {
	var be [16]byte
	for i := 0; i < 8; i++ {
		be[7-i] = byte(hi >> (8 * i))
		be[15-i] = byte(lo >> (8 * i))
	}
	for i := 0; i < 6; i++ {
		if be[i] != 0 {
			overflow = true
		}
	}
	copy(aBytes[:], be[6:11])
	copy(xBytes[:], be[11:16])
	return aBytes, xBytes, overflow
}

// opDiv implements DIV and its F=7 float extension. rAX is treated as an
// 80-bit signed dividend; dividing by zero sets overflow and zeroes the
// result rather than panicking, matching the reference implementation.
func (m *VM) opDiv(instr Instruction) error {
	addr, err := m.effAddr(instr.Addr, instr.Index)
	if err != nil {
		return err
	}
	target := m.Mem[addr]

	if instr.Field == 7 {
		orig := float32Bytes(m.RA)
		other := float32Bytes(target)
		result := orig / other
		m.RA = packFloat32(result)
		if math.IsInf(float64(result), 0) || math.IsNaN(float64(result)) {
			m.Overflow = true
		}
		return nil
	}

	l, r := instr.Field.Range()
	divisor, _ := target.ToInt64Ranged(l, r)

	// rAX holds an 80-bit magnitude, too wide for a uint64; math/big is
	// the natural stdlib tool for the one place this module needs
	// precision beyond 64 bits.
	dividend := new(big.Int).Lsh(big.NewInt(int64(magnitude5(m.RA))), 40)
	dividend.Or(dividend, big.NewInt(int64(magnitude5(m.RX))))
	dividendSign := m.RA.Sign()

	var quotientMag, remainderMag uint64
	overflowDiv := false
	if divisor == 0 {
		overflowDiv = true
	} else {
		divisorMag := new(big.Int).SetInt64(divisor)
		divisorMag.Abs(divisorMag)
		quotient, remainder := new(big.Int), new(big.Int)
		quotient.QuoRem(dividend, divisorMag, remainder)
		if !quotient.IsUint64() || quotient.Uint64() > 0xFFFFFFFFFF {
			overflowDiv = true
		} else {
			quotientMag = quotient.Uint64()
			remainderMag = remainder.Uint64()
		}
	}

	quotientSign := word.Pos
	if !overflowDiv && (dividendSign < 0) != (divisor < 0) {
		quotientSign = word.Neg
	}
	oldASign := m.RA[0]

	newA, overflowA := word.NewFullWordFromInt64(int64(quotientMag))
	newX, overflowX := word.NewFullWordFromInt64(int64(remainderMag))
	m.RX[0] = oldASign
	m.RA[0] = quotientSign
	copy(m.RA[1:], newA[1:])
	copy(m.RX[1:], newX[1:])
	if overflowDiv || overflowA || overflowX {
		m.Overflow = true
	}
	return nil
}

// magnitude5 returns the 5 magnitude bytes of w packed into the low 40
// bits of a uint64.
func magnitude5(w word.FullWord) uint64 {
	var v uint64
	for _, b := range w[1:] {
		v = v<<8 | uint64(b)
	}
	return v
}
