package vm

import "github.com/aramirez/mixvm/word"

// NumDevices is the size of the VM's I/O device table (slots 0..20).
const NumDevices = 21

// IODevice is the contract every I/O peripheral implements. Read and
// Write act on exactly one block of BlockSize() words; a partial
// transfer or any other failure is reported as a plain error (the
// contract does not distinguish kinds). The VM never assumes a device is
// goroutine-safe: it calls into at most one device at a time, and only
// from within Step.
type IODevice interface {
	// Read fills buf, which must have length BlockSize(), with one
	// block read from the device.
	Read(buf []word.FullWord) error

	// Write emits one block of data, which must have length
	// BlockSize(), to the device.
	Write(data []word.FullWord) error

	// Control sends a device-specific command.
	Control(cmd int16) error

	// IsBusy reports whether the device cannot currently accept a
	// transfer.
	IsBusy() (bool, error)

	// IsReady reports whether the device is ready for a transfer.
	IsReady() (bool, error)

	// BlockSize is the number of full words the device transfers per
	// Read or Write call.
	BlockSize() int
}
