package hufftext

import (
	"math"
)

// Symbol represents a symbol in the byte alphabet.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1

// Frequencies holds the number of occurrences of each Symbol.  A frequency
// of 0 means that the Symbol does not occur at all.
type Frequencies [NumSymbols]uint64

// CountFrequencies tallies the symbols in data.
func CountFrequencies(data []byte) Frequencies {
	var freqs Frequencies
	for _, ch := range data {
		freqs[ch]++
	}
	return freqs
}

// Distinct returns the number of symbols with a non-zero frequency.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all frequencies.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}
