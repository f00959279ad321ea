package demo

import (
	"testing"

	"github.com/aramirez/mixvm/alphabet"
	"github.com/aramirez/mixvm/vm"
	"github.com/aramirez/mixvm/word"
)

func decodeWords(t *testing.T, words []word.FullWord) string {
	t.Helper()
	var sb []rune
	for _, w := range words {
		for _, b := range w[1:] {
			ch, ok := alphabet.Code(b).ToChar()
			if !ok {
				t.Fatalf("byte %d has no alphabet mapping", b)
			}
			sb = append(sb, ch)
		}
	}
	return string(sb)
}

func TestWelcomeBannerDecodesToReadableText(t *testing.T) {
	text := decodeWords(t, welcome)
	if len(text) != 80 {
		t.Fatalf("welcome banner length = %d, want 80", len(text))
	}
}

func TestWrongAndRightBannersDecodeToReadableText(t *testing.T) {
	wrongText := decodeWords(t, wrong)
	if len(wrongText) != 40 {
		t.Errorf("wrong banner length = %d, want 40", len(wrongText))
	}
	rightText := decodeWords(t, right)
	if len(rightText) != 40 {
		t.Errorf("right banner length = %d, want 40", len(rightText))
	}
}

func TestLoadIntoPopulatesConstantRegion(t *testing.T) {
	m := vm.NewVM()
	LoadInto(m)

	wantEQ3 := word.FullWord{word.Pos, 0, 0, 0, 0, 3}
	if m.Mem[locConstEQ3] != wantEQ3 {
		t.Errorf("mem[locConstEQ3] = %+v, want %+v", m.Mem[locConstEQ3], wantEQ3)
	}
	if m.Mem[locConstDelta] != xteaDelta {
		t.Errorf("mem[locConstDelta] = %+v, want %+v", m.Mem[locConstDelta], xteaDelta)
	}
	wantEncLoops := word.FullWord{word.Pos, 0, 0, 0, 0, InputWords - 1}
	if m.Mem[locConstEncLoops] != wantEncLoops {
		t.Errorf("mem[locConstEncLoops] = %+v, want %+v", m.Mem[locConstEncLoops], wantEncLoops)
	}
}

func TestLoadIntoPlacesProgramAtEntryPoint(t *testing.T) {
	m := vm.NewVM()
	LoadInto(m)

	instr, ok := vm.DecodeInstruction(m.Mem[EntryPoint])
	if !ok {
		t.Fatalf("mem[EntryPoint] does not decode as an instruction")
	}
	if instr.Opcode == 0 && instr.Addr == 0 && instr.Field == 0 {
		t.Errorf("mem[EntryPoint] looks uninitialised: %+v", instr)
	}
}

func TestLoadIntoCopiesCipherAndBannerRegions(t *testing.T) {
	m := vm.NewVM()
	LoadInto(m)

	for i, w := range cipher {
		if m.Mem[locConstC+i] != w {
			t.Errorf("mem[locConstC+%d] = %+v, want %+v", i, m.Mem[locConstC+i], w)
		}
	}
	for i, w := range welcome {
		if m.Mem[locConstWelcome+i] != w {
			t.Errorf("mem[locConstWelcome+%d] = %+v, want %+v", i, m.Mem[locConstWelcome+i], w)
		}
	}
}
