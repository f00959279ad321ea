// Package device implements the two hosted I/O peripherals used by the
// demo program: a line-oriented card reader and a line-oriented
// printer, both built on the MIX character alphabet.
package device

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/aramirez/mixvm/alphabet"
	"github.com/aramirez/mixvm/word"
)

// errNotSupported is returned by the read/write/control operations a
// particular device doesn't implement, matching the reference devices'
// one-directional behaviour.
var errNotSupported = errors.New("operation not supported by this device")

// LineReader is a one-word-block input device (unit 19 in the hosted
// demo): each block reads five raw bytes from its source and maps them
// through the MIX alphabet, falling back to the low single-quote code
// for any byte with no mapping.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader builds a LineReader reading from os.Stdin.
func NewLineReader() *LineReader {
	return &LineReader{r: bufio.NewReader(os.Stdin)}
}

// SetReader redirects the device's input source, for tests or embedding
// hosts that want to supply input programmatically.
func (d *LineReader) SetReader(r io.Reader) {
	if br, ok := r.(*bufio.Reader); ok {
		d.r = br
	} else {
		d.r = bufio.NewReader(r)
	}
}

// BlockSize is always 1: the five characters of a block pack into a
// single FullWord.
func (d *LineReader) BlockSize() int { return 1 }

// Read fills buf[0] from the next five bytes of the input source.
func (d *LineReader) Read(buf []word.FullWord) error {
	if len(buf) != d.BlockSize() {
		return errNotSupported
	}
	var raw [5]byte
	if _, err := io.ReadFull(d.r, raw[:]); err != nil {
		return err
	}
	var w word.FullWord
	w[0] = word.Pos
	for i, b := range raw {
		code, ok := alphabet.FromChar(rune(b))
		if !ok {
			code = alphabet.LowSQuote
		}
		w[i+1] = byte(code)
	}
	buf[0] = w
	return nil
}

// Write is unsupported: LineReader is input-only.
func (d *LineReader) Write([]word.FullWord) error { return errNotSupported }

// Control is unsupported: LineReader has no device-specific commands.
func (d *LineReader) Control(int16) error { return errNotSupported }

// IsBusy always reports false: reads complete synchronously.
func (d *LineReader) IsBusy() (bool, error) { return false, nil }

// IsReady always reports true: reads complete synchronously.
func (d *LineReader) IsReady() (bool, error) { return true, nil }

// LinePrinter is an eight-word-block output device (unit 18 in the
// hosted demo): each block decodes forty characters through the MIX
// alphabet and writes them, followed by a newline.
type LinePrinter struct {
	w         *bufio.Writer
	lowerCase bool
}

// NewLinePrinter builds a LinePrinter writing to os.Stdout.
func NewLinePrinter() *LinePrinter {
	return &LinePrinter{w: bufio.NewWriter(os.Stdout)}
}

// SetWriter redirects the device's output sink, for tests or embedding
// hosts that want to capture output programmatically.
func (d *LinePrinter) SetWriter(w io.Writer) {
	if bw, ok := w.(*bufio.Writer); ok {
		d.w = bw
	} else {
		d.w = bufio.NewWriter(w)
	}
}

// BlockSize is 8: forty characters per line.
func (d *LinePrinter) BlockSize() int { return 8 }

// Read is unsupported: LinePrinter is output-only.
func (d *LinePrinter) Read([]word.FullWord) error { return errNotSupported }

// Write decodes data's forty character bytes through the MIX alphabet
// and emits them as a single line.
func (d *LinePrinter) Write(data []word.FullWord) error {
	if len(data) != d.BlockSize() {
		return errNotSupported
	}
	for _, w := range data {
		for _, b := range w[1:] {
			ch, ok := alphabet.Code(b).ToChar()
			if !ok {
				return errNotSupported
			}
			if d.lowerCase && ch >= 'A' && ch <= 'Z' {
				ch = ch - 'A' + 'a'
			}
			if _, err := d.w.WriteRune(ch); err != nil {
				return err
			}
		}
	}
	return d.w.WriteByte('\n')
}

// Control implements the printer's three commands: 0 selects uppercase
// output, 1 selects lowercase, 2 flushes buffered output.
func (d *LinePrinter) Control(cmd int16) error {
	switch cmd {
	case 0:
		d.lowerCase = false
		return nil
	case 1:
		d.lowerCase = true
		return nil
	case 2:
		return d.w.Flush()
	default:
		return errNotSupported
	}
}

// IsBusy always reports false: writes complete synchronously.
func (d *LinePrinter) IsBusy() (bool, error) { return false, nil }

// IsReady always reports true: writes complete synchronously.
func (d *LinePrinter) IsReady() (bool, error) { return true, nil }
