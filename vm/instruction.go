package vm

import "github.com/aramirez/mixvm/word"

// Instruction is the decoded form of a FullWord fetched from memory: a
// signed address, an index register selector, a field specifier, and an
// opcode.
type Instruction struct {
	Addr   int16
	Index  uint8
	Field  word.Field
	Opcode Opcode
}

// DecodeInstruction turns w into an Instruction. ok is false if byte 5
// is not a recognised opcode.
func DecodeInstruction(w word.FullWord) (instr Instruction, ok bool) {
	opcode := Opcode(w[5])
	if !opcode.valid() {
		return Instruction{}, false
	}
	magnitude := int16(w[1])<<8 | int16(w[2])
	addr := magnitude
	if !w.IsPositive() {
		addr = -magnitude
	}
	return Instruction{
		Addr:   addr,
		Index:  w[3],
		Field:  word.Field(w[4]),
		Opcode: opcode,
	}, true
}

// Encode packs instr into the FullWord layout DecodeInstruction reads
// back: sign plus two magnitude bytes for the address, index, field,
// opcode.
func (instr Instruction) Encode() word.FullWord {
	magnitude := instr.Addr
	sign := word.Pos
	if magnitude < 0 {
		sign = word.Neg
		magnitude = -magnitude
	}
	return word.FullWord{
		sign,
		byte(magnitude >> 8),
		byte(magnitude),
		instr.Index,
		byte(instr.Field),
		byte(instr.Opcode),
	}
}

// NewInstruction builds an Instruction from its four components, for
// assembling program images in code.
func NewInstruction(addr int16, index uint8, field word.Field, opcode Opcode) Instruction {
	return Instruction{Addr: addr, Index: index, Field: field, Opcode: opcode}
}
