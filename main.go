// Command mixvm runs the hosted XTEA-verifier program on a MIX virtual
// machine. It takes no arguments: a fixed program and memory image are
// built in, standard input feeds the line-reader device, and standard
// output receives the line-printer device's banners.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aramirez/mixvm/config"
	"github.com/aramirez/mixvm/demo"
	"github.com/aramirez/mixvm/device"
	"github.com/aramirez/mixvm/vm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mixvm: failed to load config: %v\n", err)
		os.Exit(1)
	}

	var trace *bufio.Writer
	if cfg.Execution.EnableTrace {
		f, err := os.Create(cfg.Trace.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mixvm: failed to open trace file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		trace = bufio.NewWriter(f)
		defer trace.Flush()
	}

	m := vm.NewVM()
	demo.LoadInto(m)
	m.InstallDevice(cfg.Devices.PrinterSlot, device.NewLinePrinter())
	m.InstallDevice(cfg.Devices.ReaderSlot, device.NewLineReader())

	m.PC = demo.EntryPoint
	m.Restart()

	var cycles uint64
	for !m.Halted {
		if cfg.Execution.MaxCycles != 0 && cycles >= cfg.Execution.MaxCycles {
			fmt.Fprintf(os.Stderr, "mixvm: exceeded max cycles (%d)\n", cfg.Execution.MaxCycles)
			os.Exit(1)
		}
		if err := m.Step(); err != nil {
			fmt.Fprintf(os.Stderr, "mixvm: %v\n", err)
			os.Exit(1)
		}
		if trace != nil {
			fmt.Fprintf(trace, "cycle=%d pc=%d rA=%v rX=%v overflow=%v comp=%v\n",
				cycles, m.PC, m.RA, m.RX, m.Overflow, m.Comp)
		}
		cycles++
	}
}
