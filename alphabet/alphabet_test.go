package alphabet

import "testing"

func TestRoundTrip(t *testing.T) {
	for code := Code(0); code < NumCodes; code++ {
		ch, ok := code.ToChar()
		if !ok {
			t.Fatalf("Code(%d).ToChar() failed, want ok", code)
		}
		got, ok := FromChar(ch)
		if !ok {
			t.Fatalf("FromChar(%q) failed, want ok", ch)
		}
		if got != code {
			t.Errorf("round trip for code %d: got %d via char %q", code, got, ch)
		}
	}
}

func TestFromCharUnsupported(t *testing.T) {
	if _, ok := FromChar('~'); ok {
		t.Errorf("FromChar('~') should fail: not part of the MIX alphabet")
	}
}

func TestToCharOutOfRange(t *testing.T) {
	if _, ok := Code(200).ToChar(); ok {
		t.Errorf("Code(200).ToChar() should fail: out of range")
	}
}
