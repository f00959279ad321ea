package device

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aramirez/mixvm/alphabet"
	"github.com/aramirez/mixvm/word"
)

func TestLineReaderPacksFiveCharactersIntoOneWord(t *testing.T) {
	d := NewLineReader()
	d.SetReader(strings.NewReader("ABC12"))

	buf := make([]word.FullWord, d.BlockSize())
	if err := d.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}

	a, _ := alphabet.FromChar('A')
	b, _ := alphabet.FromChar('B')
	c, _ := alphabet.FromChar('C')
	one, _ := alphabet.FromChar('1')
	two, _ := alphabet.FromChar('2')
	want := word.FullWord{word.Pos, byte(a), byte(b), byte(c), byte(one), byte(two)}
	if buf[0] != want {
		t.Errorf("buf[0] = %+v, want %+v", buf[0], want)
	}
}

func TestLineReaderFallsBackOnUnmappedBytes(t *testing.T) {
	d := NewLineReader()
	d.SetReader(strings.NewReader("A~~~~"))

	buf := make([]word.FullWord, d.BlockSize())
	if err := d.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if buf[0][2] != byte(alphabet.LowSQuote) {
		t.Errorf("unmapped byte code = %d, want LowSQuote (%d)", buf[0][2], alphabet.LowSQuote)
	}
}

func TestLineReaderRejectsWrongBlockSize(t *testing.T) {
	d := NewLineReader()
	d.SetReader(strings.NewReader("ABCDE"))

	if err := d.Read(make([]word.FullWord, 2)); err == nil {
		t.Error("want an error for a buffer that isn't exactly one block")
	}
}

func TestLinePrinterWritesDecodedLine(t *testing.T) {
	var out bytes.Buffer
	d := NewLinePrinter()
	d.SetWriter(&out)

	block := make([]word.FullWord, d.BlockSize())
	for i := range block {
		block[i] = word.FullWord{word.Pos, 0, 0, 0, 0, 0}
	}
	sp, _ := alphabet.FromChar(' ')
	for i := range block {
		block[i] = word.FullWord{word.Pos, byte(sp), byte(sp), byte(sp), byte(sp), byte(sp)}
	}
	if err := d.Write(block); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := d.Control(2); err != nil {
		t.Fatalf("Control(flush): %v", err)
	}

	want := strings.Repeat(" ", 40) + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLinePrinterLowerCaseCommand(t *testing.T) {
	var out bytes.Buffer
	d := NewLinePrinter()
	d.SetWriter(&out)

	a, _ := alphabet.FromChar('A')
	block := make([]word.FullWord, d.BlockSize())
	for i := range block {
		block[i] = word.FullWord{word.Pos, byte(a), byte(a), byte(a), byte(a), byte(a)}
	}

	if err := d.Control(1); err != nil {
		t.Fatalf("Control(lowercase): %v", err)
	}
	if err := d.Write(block); err != nil {
		t.Fatalf("Write: %v", err)
	}
	d.Control(2)

	want := strings.Repeat("a", 40) + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLinePrinterRejectsWrongBlockSize(t *testing.T) {
	var out bytes.Buffer
	d := NewLinePrinter()
	d.SetWriter(&out)

	if err := d.Write(make([]word.FullWord, 1)); err == nil {
		t.Error("want an error for a block that isn't exactly eight words")
	}
}
