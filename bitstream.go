package hufftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bitstream is a sequence of bits packed into bytes, most significant bit
// first.  Bytes past the first Len bits are zero padding.
type Bitstream struct {
	Bytes []byte
	Len   int
}

// Padding returns the number of zero bits that follow the Len valid bits.
func (bs Bitstream) Padding() int {
	return 8*len(bs.Bytes) - bs.Len
}

// String returns the valid bits as a sequence of '0' and '1' characters.
func (bs Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(bs.Len)
	r := bitio.NewReader(bytes.NewReader(bs.Bytes))
	for i := 0; i < bs.Len; i++ {
		if r.TryReadBool() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = Bitstream{}

// Pack concatenates the codes for each byte of data, in order, and pads the
// result with zero bits up to a byte boundary.  It fails with
// ErrUnknownSymbol if data holds a byte that has no Code in table.
func Pack(table CodeTable, data []byte) (Bitstream, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var n int
	for i, ch := range data {
		hc, found := table[Symbol(ch)]
		if !found || hc.Size == 0 {
			return Bitstream{}, fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, ch, i)
		}
		if err := hc.writeTo(w); err != nil {
			return Bitstream{}, err
		}
		n += int(hc.Size)
	}

	skipped, err := w.Align()
	if err != nil {
		return Bitstream{}, err
	}
	if err := w.Close(); err != nil {
		return Bitstream{}, err
	}

	bs := Bitstream{Bytes: buf.Bytes(), Len: n}
	assert.Assertf(bs.Padding() == int(skipped), "padding %d != skipped bits %d", bs.Padding(), skipped)
	return bs, nil
}

// Unpack is the inverse of Pack's framing: it pairs payload with the number
// of padding bits that were recorded for it.
func Unpack(payload []byte, padding int) (Bitstream, error) {
	if padding < 0 || padding > 7 {
		return Bitstream{}, fmt.Errorf("%w: got %d, want 0 .. 7", ErrInvalidPadding, padding)
	}
	total := 8 * len(payload)
	if padding > total {
		return Bitstream{}, fmt.Errorf("%w: %d padding bits in a %d-bit payload", ErrInvalidPadding, padding, total)
	}
	return Bitstream{Bytes: payload, Len: total - padding}, nil
}

// DecodeSymbols walks the tree once per bit of bs: 0 descends Left, 1
// descends Right.  On reaching a Leaf its symbol is emitted and the walk
// restarts at the root.
//
// Bits that run out partway down a path are discarded.  A bit leading into
// the absent sentinel is a dead end; the walk restarts at the root without
// emitting anything.
//
func DecodeSymbols(root Node, bs Bitstream) ([]byte, error) {
	if _, ok := root.(*Internal); !ok {
		return nil, fmt.Errorf("%w: root must be an internal node", ErrMalformedTree)
	}

	out := make([]byte, 0, bs.Len/8+1)
	r := bitio.NewReader(bytes.NewReader(bs.Bytes))
	cur := root
	for i := 0; i < bs.Len; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}

		next := cur.(*Internal).Left
		if bit {
			next = cur.(*Internal).Right
		}

		switch x := next.(type) {
		case nil:
			cur = root
		case Leaf:
			out = append(out, byte(x.Symbol))
			cur = root
		case *Internal:
			cur = x
		}
	}
	return out, nil
}
