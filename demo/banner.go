package demo

import (
	"github.com/aramirez/mixvm/alphabet"
	"github.com/aramirez/mixvm/word"
)

// bannerWords packs s into full words of five alphabet characters each,
// sign byte positive, padding an incomplete final word with spaces.
// Characters with no alphabet mapping are rejected by a panic during
// package initialisation, since banner text is a compile-time constant,
// never user input.
func bannerWords(s string) []word.FullWord {
	runes := []rune(s)
	n := (len(runes) + 4) / 5
	words := make([]word.FullWord, n)
	for i := range words {
		w := word.FullWord{word.Pos, 0, 0, 0, 0, 0}
		for j := 0; j < 5; j++ {
			pos := i*5 + j
			ch := ' '
			if pos < len(runes) {
				ch = runes[pos]
			}
			code, ok := alphabet.FromChar(ch)
			if !ok {
				panic("demo: banner text contains a character outside the MIX alphabet")
			}
			w[j+1] = byte(code)
		}
		words[i] = w
	}
	return words
}
