package vm

import "github.com/aramirez/mixvm/word"

// MemSize is the number of FullWord cells in the machine's memory.
const MemSize = 4000

// Memory is the machine's flat, unsegmented address space: 4000 full
// words, indexed 0..3999.
type Memory [MemSize]word.FullWord

// VM is the state of a MIX machine: registers, flags, program counter,
// memory, and the I/O device table. The zero value is a valid machine
// with Halted false; NewVM returns the halted starting state.
type VM struct {
	RA word.FullWord
	RX word.FullWord

	// RI holds the six index registers at indices 1..6. RI[0] is never
	// written; it stays the zero HalfWord so indexed-addressing code
	// can treat index 0 uniformly as "no indexing" without a branch.
	RI [7]word.HalfWord

	RJ word.PosHalfWord

	Overflow bool
	Comp     CompIndicator

	PC     uint16
	Halted bool

	Mem     Memory
	Devices [NumDevices]IODevice
}

// NewVM returns a freshly constructed, halted machine with zeroed
// registers, memory, and no devices installed.
func NewVM() *VM {
	return &VM{Halted: true}
}

// Reset zeroes the register file, program counter, and flags. Memory and
// installed devices are untouched.
func (m *VM) Reset() {
	m.RA = word.FullWord{}
	m.RX = word.FullWord{}
	for i := range m.RI {
		m.RI[i] = word.HalfWord{}
	}
	m.RJ = word.PosHalfWord{}
	m.PC = 0
	m.Overflow = false
	m.Comp = CompEqual
}

// Restart clears Halted, allowing Step to run again.
func (m *VM) Restart() {
	m.Halted = false
}

// Halt sets Halted.
func (m *VM) Halt() {
	m.Halted = true
}

// InstallDevice attaches dev at the given device id (0..20).
func (m *VM) InstallDevice(id int, dev IODevice) {
	m.Devices[id] = dev
}

// fault wraps code into a *Error carrying the current PC and halts the
// machine, matching the "any error is fatal for the current run" rule.
func (m *VM) fault(code ErrorCode) error {
	m.Halted = true
	return &Error{Code: code, PC: m.PC}
}
