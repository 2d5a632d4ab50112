package hufftext

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Huffman code tree for the given frequencies.  Every
// symbol with a non-zero frequency appears in exactly one Leaf, and the sum
// of frequency × depth over all leaves is minimal.
//
// Leaves enter the queue in ascending Symbol order and ties are broken by
// queue insertion order, so the same frequencies always yield the same tree.
//
// A single distinct symbol yields an *Internal root whose Left is the Leaf
// and whose Right is nil, giving that symbol the one-bit code "0".
//
func BuildTree(freqs *Frequencies) (Node, error) {
	var q freqQueue
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			q.Insert(freq, Leaf{Symbol(symbol)})
		}
	}

	switch q.Len() {
	case 0:
		return nil, fmt.Errorf("%w: no symbols to build a tree from", ErrEmptyInput)
	case 1:
		only, _ := q.ExtractMin()
		return &Internal{Left: only.node}, nil
	}

	for q.Len() > 1 {
		a, _ := q.ExtractMin()
		b, _ := q.ExtractMin()
		q.Insert(a.freq+b.freq, &Internal{Left: a.node, Right: b.node})
	}

	root, ok := q.ExtractMin()
	assert.Assertf(ok && q.IsEmpty(), "queue should hold exactly the root, but %d entries remain", q.Len())
	return root.node, nil
}
