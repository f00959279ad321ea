// Package demo holds the fixed XTEA-verifier program the host shell
// loads and runs: a memory image, two named I/O device slots, and the
// addresses the program expects its input and key at.
package demo

import (
	"github.com/aramirez/mixvm/vm"
	"github.com/aramirez/mixvm/word"
)

// InputWords is the number of FullWords the verifier reads as
// ciphertext input.
const InputWords = 7

// Fixed region bases for the hosted memory image.
const (
	ProgramStart = 0
	ConstStart   = 3000
	TempStart    = 3100
	IOStart      = 3200
)

// Addresses inside the XTEA subroutine, occupying ProgramStart..+79.
const (
	locXTEA     = ProgramStart
	locXTEALoop = locXTEA + 4
	locXTEARet  = locXTEA + 79
)

// Addresses inside the driver routine, occupying ProgramStart+80..+123.
const (
	locMain          = ProgramStart + 80
	locMainOW        = locMain + 3
	locMainOL        = locMain + 5
	locMainOP        = locMain + 6
	locMainIL        = locMain + 14
	locMainIR        = locMain + 15
	locMainEnc       = locMain + 20
	locMainVerifLoop = locMain + 26
	locMainVerifCont = locMain + 30
	locMainVerifN    = locMain + 35
	locMainEnd       = locMain + 41
)

// Addresses of the program's constant data region.
const (
	locConstEQ3      = ConstStart
	locConstDelta    = locConstEQ3 + 1
	locConstWelcome  = locConstDelta + 1
	locConstEncLoops = locConstWelcome + 16
	locConstC        = locConstEncLoops + 1
	locConstWrong    = locConstC + InputWords
	locConstRight    = locConstWrong + 8
)

// Addresses of the program's scratch temporaries.
const (
	locTmpSum = TempStart
	locTmpI   = TempStart + 1
	locTmp1   = TempStart + 2
	locTmp2   = TempStart + 3
	locTmp3   = TempStart + 4
	locTmp4   = TempStart + 5
	locTmp5   = TempStart + 6
	locTmp6   = TempStart + 7
	locTmp7   = TempStart + 8
	locTmp8   = TempStart + 9
	locTmp9   = TempStart + 10
)

// LocArgV and LocArgK are the addresses the verifier reads the input
// block and the XTEA key from. ArgV sits at the start of the input
// buffer region; ArgK is embedded inside the XTEA routine's own code
// region, following the reference layout.
const (
	LocArgV = IOStart
	LocArgK = locXTEA + 76
)

// EntryPoint is the address Step begins executing at: the driver
// routine, not the XTEA subroutine it calls into.
const EntryPoint = locMain

// ReaderSlot and PrinterSlot are the device table indices the driver
// routine issues IOC/IN/OUT/JBUS instructions against.
const (
	PrinterSlot = 18
	ReaderSlot  = 19
)

// inst mirrors the reference program listing's own argument order
// (address, field, index, opcode) so each entry below can be transcribed
// without reordering its operands.
func inst(addr int16, field word.Field, index uint8, opcode vm.Opcode) vm.Instruction {
	return vm.NewInstruction(addr, index, field, opcode)
}

// program is the 124-instruction XTEA verifier: addresses 0..79 hold
// the XTEA block-cipher subroutine, 80..123 hold the driver that prints
// a banner, reads input, repeatedly calls the subroutine, compares the
// result against the embedded ciphertext, and prints the outcome.
var program = [124]vm.Instruction{
	inst(locXTEARet, 2, 0, vm.OpStJ),
	inst(32, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModifyA),
	inst(locTmpSum, 13, 0, vm.OpStA),
	inst(locTmpI, 5, 0, vm.OpStX),
	inst(0, 2, 0, vm.OpModifyX),
	inst(1, 0, 0, vm.OpModify1),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(4, 6, 0, vm.OpShift),
	inst(locTmp1, 13, 0, vm.OpStA),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(5, 7, 0, vm.OpShift),
	inst(locTmp2, 13, 0, vm.OpStA),
	inst(0, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModifyA),
	inst(locTmp1, 13, 0, vm.OpLdA),
	inst(locTmp2, 12, 0, vm.OpSpecial),
	inst(locTmp3, 13, 0, vm.OpStA),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(locTmp3, 13, 0, vm.OpAdd),
	inst(locTmp4, 13, 0, vm.OpStA),
	inst(locTmpSum, 13, 0, vm.OpLdA),
	inst(locConstEQ3, 10, 0, vm.OpSpecial),
	inst(locTmp5, 45, 0, vm.OpStA),
	inst(locTmp5, 45, 0, vm.OpLd2),
	inst(LocArgK, 13, 2, vm.OpLdA),
	inst(locTmp6, 13, 0, vm.OpStA),
	inst(locTmp6, 13, 0, vm.OpLdA),
	inst(locTmpSum, 13, 0, vm.OpAdd),
	inst(locTmp7, 13, 0, vm.OpStA),
	inst(locTmp7, 13, 0, vm.OpLdA),
	inst(locTmp4, 12, 0, vm.OpSpecial),
	inst(locTmp8, 13, 0, vm.OpStA),
	inst(1, 1, 0, vm.OpModify1),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(locTmp8, 13, 0, vm.OpAdd),
	inst(LocArgV, 13, 1, vm.OpStA),
	inst(locTmpSum, 13, 0, vm.OpLdA),
	inst(locConstDelta, 13, 0, vm.OpAdd),
	inst(locTmpSum, 13, 0, vm.OpStA),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(4, 6, 0, vm.OpShift),
	inst(locTmp1, 13, 0, vm.OpStA),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(5, 7, 0, vm.OpShift),
	inst(locTmp2, 13, 0, vm.OpStA),
	inst(0, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModifyA),
	inst(locTmp1, 13, 0, vm.OpLdA),
	inst(locTmp2, 12, 0, vm.OpSpecial),
	inst(locTmp3, 13, 0, vm.OpStA),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(locTmp3, 13, 0, vm.OpAdd),
	inst(locTmp4, 13, 0, vm.OpStA),
	inst(locTmpSum, 13, 0, vm.OpLdA),
	inst(11, 7, 0, vm.OpShift),
	inst(locTmp5, 13, 0, vm.OpStA),
	inst(0, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModifyA),
	inst(locTmp5, 13, 0, vm.OpLdA),
	inst(locConstEQ3, 10, 0, vm.OpSpecial),
	inst(locTmp6, 45, 0, vm.OpStA),
	inst(locTmp6, 45, 0, vm.OpLd2),
	inst(LocArgK, 13, 2, vm.OpLdA),
	inst(locTmp7, 13, 0, vm.OpStA),
	inst(locTmp7, 13, 0, vm.OpLdA),
	inst(locTmpSum, 13, 0, vm.OpAdd),
	inst(locTmp8, 13, 0, vm.OpStA),
	inst(locTmp8, 13, 0, vm.OpLdA),
	inst(locTmp4, 12, 0, vm.OpSpecial),
	inst(locTmp9, 13, 0, vm.OpStA),
	inst(1, 0, 0, vm.OpModify1),
	inst(LocArgV, 13, 1, vm.OpLdA),
	inst(locTmp9, 13, 0, vm.OpAdd),
	inst(LocArgV, 13, 1, vm.OpStA),
	inst(1, 1, 0, vm.OpModify1),
	inst(locTmpI, 5, 0, vm.OpLdX),
	inst(1, 1, 0, vm.OpModifyX),
	inst(locXTEALoop, 2, 0, vm.OpJX),
	inst(3999, 0, 0, vm.OpJmp),
	inst(0, 2, 0, vm.OpModifyA),
	inst(2, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModify3),
	inst(0, PrinterSlot, 0, vm.OpIoc),
	inst(locMainOW, PrinterSlot, 0, vm.OpJbus),
	inst(locConstWelcome, PrinterSlot, 3, vm.OpOut),
	inst(0x4433, 0x22, 0x11, vm.OpNop),
	inst(locMainOP, PrinterSlot, 0, vm.OpJbus),
	inst(8, 0, 0, vm.OpModify3),
	inst(1, 1, 0, vm.OpModifyX),
	inst(locMainOL, 2, 0, vm.OpJX),
	inst(2, PrinterSlot, 0, vm.OpIoc),
	inst(InputWords, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModify4),
	inst(LocArgV, ReaderSlot, 4, vm.OpIn),
	inst(locMainIR, ReaderSlot, 0, vm.OpJbus),
	inst(1, 0, 0, vm.OpModify4),
	inst(1, 1, 0, vm.OpModifyX),
	inst(locMainIL, 2, 0, vm.OpJX),
	inst(0, 2, 0, vm.OpModify1),
	inst(locXTEA, 0, 0, vm.OpJmp),
	inst(1, 0, 0, vm.OpModify1),
	inst(locConstEncLoops, 5, 0, vm.OpCmp1),
	inst(locMainEnc, 4, 0, vm.OpJmp),
	inst(InputWords, 2, 0, vm.OpModifyX),
	inst(InputWords-1, 2, 0, vm.OpModify2),
	inst(LocArgV, 13, 2, vm.OpLdA),
	inst(locConstC, 12, 2, vm.OpSpecial),
	inst(locMainVerifCont, 4, 0, vm.OpJA),
	inst(1, 1, 0, vm.OpModifyX),
	inst(1, 1, 0, vm.OpModify2),
	inst(locMainVerifLoop, 3, 0, vm.OpJ2),
	inst(2560, 2, 0, vm.OpModifyA),
	inst(locTmp1, 5, 0, vm.OpStX),
	inst(locMainVerifN, 2, 0, vm.OpJmp),
	inst(1, 2, 0, vm.OpModifyX),
	inst(0, 2, 0, vm.OpModifyA),
	inst(locTmp1, 5, 0, vm.OpDiv),
	inst(0, 2, 0, vm.OpModify1),
	inst(locMainEnd, 3, 0, vm.OpJmp),
	inst(8, 0, 0, vm.OpModify1),
	inst(locConstWrong, PrinterSlot, 1, vm.OpOut),
	inst(2, PrinterSlot, 0, vm.OpIoc),
	inst(0, 2, 0, vm.OpSpecial),
}

// welcome is the sixteen-word banner printed before the verifier reads
// its input.
var welcome = bannerWords(
	"EXPL0RE 1960S' PAST 1N 4 PRESENT W0RLD  " +
		"WHAT DID YOU UNCOVER, ELITE RUSTACEAN >>")

// cipher is the seven-word expected ciphertext the verifier compares
// the encrypted input against.
var cipher = [InputWords]word.FullWord{
	{0, 5, 139, 14, 94, 218},
	{0, 244, 138, 250, 182, 187},
	{0, 244, 123, 251, 140, 191},
	{0, 95, 176, 194, 183, 102},
	{0, 138, 101, 40, 247, 89},
	{0, 122, 206, 163, 121, 181},
	{0, 192, 133, 13, 8, 206},
}

// wrong is the eight-word banner printed on a failed verification.
var wrong = bannerWords("THAT IS NOT CORRECT. TRY AGAIN :D       ")

// right is the eight-word banner printed on a successful verification.
var right = bannerWords("NOW MARCH BEYOND, AND REVIVE THE LEGACY.")

// xteaDelta is the XTEA round constant 0x9E3779B9, stored right-aligned
// across the five magnitude bytes the program reads it from.
var xteaDelta = word.FullWord{word.Pos, 0x9e, 0x38, 0x53, 0x8a, 0x49}

// LoadInto writes the verifier's program and constant data into m's
// memory, ready to run from EntryPoint.
func LoadInto(m *vm.VM) {
	for i, instr := range program {
		m.Mem[ProgramStart+i] = instr.Encode()
	}

	m.Mem[locConstEQ3] = word.FullWord{word.Pos, 0, 0, 0, 0, 3}
	m.Mem[locConstDelta] = xteaDelta
	for i, w := range welcome {
		m.Mem[locConstWelcome+i] = w
	}
	for i, w := range cipher {
		m.Mem[locConstC+i] = w
	}
	for i, w := range wrong {
		m.Mem[locConstWrong+i] = w
	}
	for i, w := range right {
		m.Mem[locConstRight+i] = w
	}
	encLoops, _ := word.NewFullWordFromInt64(InputWords - 1)
	m.Mem[locConstEncLoops] = encLoops
}
