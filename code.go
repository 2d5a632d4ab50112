package hufftext

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// maxBitsPerCode is the longest Code: the depth of the deepest leaf in a
// tree over the byte alphabet.
const maxBitsPerCode = MaxDepth

// codeWords is the number of 64-bit words needed to hold maxBitsPerCode bits.
const codeWords = (maxBitsPerCode + 63) / 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits, first bit first.  Bit i
	// of the Code is bit (63 - i%64) of Bits[i/64]; bits past Size are
	// always zero.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64
// bits.  The most significant of the size low bits of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "MakeCode size %d > 64", size)
	var hc Code
	if size != 0 {
		hc.Size = size
		hc.Bits[0] = bits << (64 - size)
	}
	return hc
}

// Bit returns bit i of the Code, where bit 0 is the first bit.
func (hc Code) Bit(i int) uint {
	return uint(hc.Bits[i/64]>>(63-uint(i%64))) & 1
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(int(hc.Size) < maxBitsPerCode, "code size %d would exceed %d bits", int(hc.Size)+1, maxBitsPerCode)
	i := int(hc.Size)
	hc.Bits[i/64] |= uint64(bit&1) << (63 - uint(i%64))
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code, as a sequence of
// '0' and '1' characters.
func (hc Code) String() string {
	buf := make([]byte, hc.Size)
	for i := range buf {
		buf[i] = '0' + byte(hc.Bit(i))
	}
	return string(buf)
}

// writeTo writes the bits of the Code to w, first bit first.
func (hc Code) writeTo(w *bitio.Writer) error {
	for word, remain := 0, int(hc.Size); remain > 0; word, remain = word+1, remain-64 {
		n := remain
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(hc.Bits[word]>>(64-uint(n)), uint8(n)); err != nil {
			return err
		}
	}
	return nil
}

var _ fmt.Stringer = Code{}

// CodeTable maps each Symbol in a tree to the Code for its leaf.
type CodeTable map[Symbol]Code

// BuildCodeTable derives the CodeTable for the given tree by walking every
// root-to-leaf path, appending 0 for each left branch and 1 for each right
// branch.
func BuildCodeTable(root Node) CodeTable {
	table := make(CodeTable)
	var walk func(n Node, hc Code)
	walk = func(n Node, hc Code) {
		switch x := n.(type) {
		case nil:
			// absent sibling of a single-symbol tree
		case Leaf:
			table[x.Symbol] = hc
		case *Internal:
			walk(x.Left, hc.Append(0))
			walk(x.Right, hc.Append(1))
		}
	}
	walk(root, Code{})
	return table
}

// IsPrefixFree reports whether no Code in the table is a prefix of another.
func (table CodeTable) IsPrefixFree() bool {
	for a, ca := range table {
		for b, cb := range table {
			if a != b && cb.HasPrefix(ca) {
				return false
			}
		}
	}
	return true
}

// BitLength returns the number of bits needed to encode symbols with the
// given frequencies, before padding.
func (table CodeTable) BitLength(freqs *Frequencies) uint64 {
	var total uint64
	for symbol, hc := range table {
		total += freqs[symbol] * uint64(hc.Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, in ascending Symbol order.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	symbols := make(bySymbol, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%q) = %q\n", byte(symbol), table[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
