// Package alphabet implements the 56-symbol character set of the MIX
// machine (D. E. Knuth, TAOCP Vol. 1, p. 140) and its bidirectional
// mapping to host ASCII/Unicode characters.
package alphabet

// Code is one of the 56 MIX character codes, 0..55.
type Code uint8

// The 56 MIX character codes.
const (
	Space Code = iota
	A
	B
	C
	D
	E
	F
	G
	H
	I
	SQuote
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	Degree
	DQuote
	S
	T
	U
	V
	W
	X
	Y
	Z
	Zero
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Dot
	Comma
	LParen
	RParen
	Plus
	Minus
	Star
	Slash
	Equal
	Dollar
	LAngle
	RAngle
	At
	SemiColon
	Colon
	LowSQuote
)

// NumCodes is the size of the MIX alphabet.
const NumCodes = 56

var codeToChar = [NumCodes]rune{
	Space: ' ', A: 'A', B: 'B', C: 'C', D: 'D', E: 'E', F: 'F', G: 'G',
	H: 'H', I: 'I', SQuote: '\'', J: 'J', K: 'K', L: 'L', M: 'M', N: 'N',
	O: 'O', P: 'P', Q: 'Q', R: 'R', Degree: '°', DQuote: '"', S: 'S',
	T: 'T', U: 'U', V: 'V', W: 'W', X: 'X', Y: 'Y', Z: 'Z', Zero: '0',
	One: '1', Two: '2', Three: '3', Four: '4', Five: '5', Six: '6',
	Seven: '7', Eight: '8', Nine: '9', Dot: '.', Comma: ',', LParen: '(',
	RParen: ')', Plus: '+', Minus: '-', Star: '*', Slash: '/', Equal: '=',
	Dollar: '$', LAngle: '<', RAngle: '>', At: '@', SemiColon: ';',
	Colon: ':', LowSQuote: '‚',
}

var charToCode map[rune]Code

func init() {
	charToCode = make(map[rune]Code, NumCodes)
	for code, ch := range codeToChar {
		charToCode[ch] = Code(code)
	}
}

// ToChar converts a MIX character code to its host rune. ok is false if
// code is outside 0..55.
func (c Code) ToChar() (ch rune, ok bool) {
	if int(c) >= NumCodes {
		return 0, false
	}
	return codeToChar[c], true
}

// FromChar converts a host rune to its MIX character code. ok is false
// if the rune has no representation in the MIX alphabet.
func FromChar(ch rune) (code Code, ok bool) {
	code, ok = charToCode[ch]
	return code, ok
}
