package vm

// Opcode is a MIX operation code, the `C` field of an instruction word.
type Opcode uint8

// The full MIX opcode table. Every value 0..63 is assigned; there are no
// reserved gaps, so decoding only ever rejects a byte greater than 63.
const (
	OpNop Opcode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpSpecial // CHAR/NUM/HLT/float conversions/NOT/AND/OR/XOR, sub-selected by F
	OpShift   // SLA/SRA/SLAX/SRAX/SLC/SRC/SLB/SRB, sub-selected by F
	OpMove
	OpLdA
	OpLd1
	OpLd2
	OpLd3
	OpLd4
	OpLd5
	OpLd6
	OpLdX
	OpLdAN
	OpLd1N
	OpLd2N
	OpLd3N
	OpLd4N
	OpLd5N
	OpLd6N
	OpLdXN
	OpStA
	OpSt1
	OpSt2
	OpSt3
	OpSt4
	OpSt5
	OpSt6
	OpStX
	OpStJ
	OpStZ
	OpJbus
	OpIoc
	OpIn
	OpOut
	OpJred
	OpJmp
	OpJA
	OpJ1
	OpJ2
	OpJ3
	OpJ4
	OpJ5
	OpJ6
	OpJX
	OpModifyA
	OpModify1
	OpModify2
	OpModify3
	OpModify4
	OpModify5
	OpModify6
	OpModifyX
	OpCmpA
	OpCmp1
	OpCmp2
	OpCmp3
	OpCmp4
	OpCmp5
	OpCmp6
	OpCmpX
	numOpcodes
)

// valid reports whether c names a real opcode.
func (c Opcode) valid() bool { return c < numOpcodes }
