// Package word implements the sign-magnitude word types of the MIX
// machine: FullWord (6 bytes), HalfWord (3 bytes), and PosHalfWord (3
// bytes, always positive).
//
// Byte 0 of every word is the sign byte: Pos (0) or Neg (any non-zero
// value; Neg is the canonical non-zero value used here). Bytes 1..N-1
// hold the magnitude, big-endian.
package word

import "encoding/binary"

// Pos and Neg are the two sign byte values a word's byte 0 may hold.
const (
	Pos byte = 0
	Neg byte = 1
)

// FullWord is the native 6-byte MIX word: one sign byte and five
// magnitude bytes.
type FullWord [6]byte

// HalfWord is the 3-byte index register width: one sign byte and two
// magnitude bytes.
type HalfWord [3]byte

// PosHalfWord is the jump register width: like HalfWord, but the sign
// byte is forced positive on every mutating path.
type PosHalfWord [3]byte

// IsPositive reports whether the word's sign byte is Pos.
func (w FullWord) IsPositive() bool { return w[0] == Pos }

// Sign returns +1 for a positive word, -1 for a negative one.
func (w FullWord) Sign() int64 {
	if w.IsPositive() {
		return 1
	}
	return -1
}

// SetAll overwrites the word's bytes.
func (w *FullWord) SetAll(b [6]byte) { *w = b }

// FlipSign toggles the sign byte.
func (w *FullWord) FlipSign() {
	if w.IsPositive() {
		w[0] = Neg
	} else {
		w[0] = Pos
	}
}

// ToInt64 converts the word's magnitude and sign to a signed integer.
// The overflow bool is always false for FullWord: five magnitude bytes
// always fit in an int64.
func (w FullWord) ToInt64() (int64, bool) {
	var mag uint64
	for _, b := range w[1:] {
		mag = mag<<8 | uint64(b)
	}
	return int64(mag) * w.Sign(), false
}

// ToInt64Ranged converts the byte range L..=R to a signed integer. If L
// is 0, the word's own sign applies and the sign byte is excluded from
// the magnitude; otherwise the value is treated as positive. Overflow is
// set if the sliced range holds more than 8 non-zero bytes (unreachable
// for a 6-byte word, kept for symmetry with the wider ranges other
// widths might slice).
func (w FullWord) ToInt64Ranged(l, r int) (int64, bool) {
	return toInt64Ranged(w[:], w.Sign(), l, r)
}

// NewFullWordFromInt64 builds a FullWord from a signed integer. The
// absolute value is placed right-aligned in the five magnitude bytes;
// overflow is set when the magnitude does not fit.
func NewFullWordFromInt64(v int64) (FullWord, bool) {
	var w FullWord
	mag, overflow := packMagnitude(v, 5)
	if v < 0 {
		w[0] = Neg
	} else {
		w[0] = Pos
	}
	copy(w[1:], mag)
	return w, overflow
}

// IsPositive reports whether the word's sign byte is Pos.
func (w HalfWord) IsPositive() bool { return w[0] == Pos }

// Sign returns +1 for a positive word, -1 for a negative one.
func (w HalfWord) Sign() int64 {
	if w.IsPositive() {
		return 1
	}
	return -1
}

// SetAll overwrites the word's bytes.
func (w *HalfWord) SetAll(b [3]byte) { *w = b }

// FlipSign toggles the sign byte.
func (w *HalfWord) FlipSign() {
	if w.IsPositive() {
		w[0] = Neg
	} else {
		w[0] = Pos
	}
}

// ToInt64 converts the word's magnitude and sign to a signed integer.
func (w HalfWord) ToInt64() (int64, bool) {
	var mag uint64
	for _, b := range w[1:] {
		mag = mag<<8 | uint64(b)
	}
	return int64(mag) * w.Sign(), false
}

// ToInt64Ranged converts the byte range L..=R to a signed integer, per
// the same rule as FullWord.ToInt64Ranged.
func (w HalfWord) ToInt64Ranged(l, r int) (int64, bool) {
	return toInt64Ranged(w[:], w.Sign(), l, r)
}

// NewHalfWordFromInt64 builds a HalfWord from a signed integer.
func NewHalfWordFromInt64(v int64) (HalfWord, bool) {
	var w HalfWord
	mag, overflow := packMagnitude(v, 2)
	if v < 0 {
		w[0] = Neg
	} else {
		w[0] = Pos
	}
	copy(w[1:], mag)
	return w, overflow
}

// IsPositive always reports true: PosHalfWord's sign byte is pinned.
func (w PosHalfWord) IsPositive() bool { return true }

// Sign always returns +1.
func (w PosHalfWord) Sign() int64 { return 1 }

// SetAll overwrites the magnitude bytes and forces the sign positive.
func (w *PosHalfWord) SetAll(b [3]byte) {
	*w = b
	w[0] = Pos
}

// FlipSign is a no-op: PosHalfWord's sign byte never changes.
func (w *PosHalfWord) FlipSign() {}

// ToInt64 converts the word's magnitude to a signed integer (always
// non-negative).
func (w PosHalfWord) ToInt64() (int64, bool) {
	var mag uint64
	for _, b := range w[1:] {
		mag = mag<<8 | uint64(b)
	}
	return int64(mag), false
}

// NewPosHalfWordFromInt64 builds a PosHalfWord from a signed integer;
// the sign is always forced positive regardless of v's sign.
func NewPosHalfWordFromInt64(v int64) (PosHalfWord, bool) {
	var w PosHalfWord
	w[0] = Pos
	mag, overflow := packMagnitude(v, 2)
	copy(w[1:], mag)
	return w, overflow
}

// packMagnitude right-aligns |v| into n bytes, reporting overflow when
// the magnitude needs more than n bytes.
func packMagnitude(v int64, n int) ([]byte, bool) {
	mag := uint64(v)
	if v < 0 {
		mag = uint64(-v)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], mag)
	overflow := false
	for _, b := range buf[:8-n] {
		if b != 0 {
			overflow = true
			break
		}
	}
	return buf[8-n:], overflow
}

// toInt64Ranged implements the shared field-slice-to-int64 conversion
// used by FullWord and HalfWord: if the range includes the sign byte
// (l==0), the word's sign applies to the magnitude formed from bytes
// 1..=r; otherwise the slice l..=r is treated as an unsigned magnitude.
func toInt64Ranged(data []byte, sign int64, l, r int) (int64, bool) {
	signIncluded := l == 0
	start := l
	if signIncluded {
		start = l + 1
	}
	if start > r {
		return 0, false
	}
	slice := data[start : r+1]
	effSign := int64(1)
	if signIncluded {
		effSign = sign
	}
	nonzero := 0
	var mag uint64
	for _, b := range slice {
		if b != 0 {
			nonzero++
		}
		mag = mag<<8 | uint64(b)
	}
	return int64(mag) * effSign, nonzero > 8
}
