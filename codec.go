package hufftext

import (
	"bytes"
	"fmt"
)

// Tokens of the serialized tree format.
const (
	leafMark  = '\''
	leftMark  = '0'
	rightMark = '1'
)

// SerializeTree returns the compact textual form of the tree.
//
// A Leaf is written as a quote followed by its raw symbol byte, and an
// *Internal as '0', its Left subtree, '1', then its Right subtree.  The absent
// sentinel is written as nothing at all.
//
func SerializeTree(root Node) []byte {
	var buf bytes.Buffer
	writeNode(&buf, root)
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n Node) {
	switch x := n.(type) {
	case nil:
		// absent
	case Leaf:
		buf.WriteByte(leafMark)
		buf.WriteByte(byte(x.Symbol))
	case *Internal:
		buf.WriteByte(leftMark)
		writeNode(buf, x.Left)
		buf.WriteByte(rightMark)
		writeNode(buf, x.Right)
	}
}

// ParseTree is the inverse of SerializeTree.  The whole of data must be
// consumed by the tree.
func ParseTree(data []byte) (Node, error) {
	root, end, err := parseTreePrefix(data)
	if err != nil {
		return nil, err
	}
	if end != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after tree", ErrMalformedTree, len(data)-end)
	}
	return root, nil
}

// parseTreePrefix parses one tree from the front of data and returns it
// together with the offset just past its last byte.
//
// The only place the absent sentinel is accepted is the Right slot of the
// root, when Left is a Leaf and the byte after the '1' (if any) cannot start
// a node.
//
func parseTreePrefix(data []byte) (Node, int, error) {
	root, pos, err := parseNode(data, 0, 0)
	if err != nil {
		return nil, 0, err
	}
	return root, pos, nil
}

func parseNode(data []byte, pos int, depth int) (Node, int, error) {
	if pos >= len(data) {
		return nil, 0, fmt.Errorf("%w: unexpected end of input at offset %d", ErrMalformedTree, pos)
	}

	switch data[pos] {
	case leafMark:
		pos++
		if pos >= len(data) {
			return nil, 0, fmt.Errorf("%w: missing symbol after leaf marker at offset %d", ErrMalformedTree, pos-1)
		}
		return Leaf{Symbol(data[pos])}, pos + 1, nil

	case leftMark:
		if depth >= MaxDepth {
			return nil, 0, fmt.Errorf("%w: nesting deeper than %d at offset %d", ErrMalformedTree, MaxDepth, pos)
		}
		left, pos, err := parseNode(data, pos+1, depth+1)
		if err != nil {
			return nil, 0, err
		}
		if pos >= len(data) || data[pos] != rightMark {
			return nil, 0, fmt.Errorf("%w: expected %q at offset %d", ErrMalformedTree, rightMark, pos)
		}
		pos++

		if _, isLeaf := left.(Leaf); isLeaf && depth == 0 && !startsNode(data, pos) {
			return &Internal{Left: left}, pos, nil
		}

		right, pos, err := parseNode(data, pos, depth+1)
		if err != nil {
			return nil, 0, err
		}
		return &Internal{Left: left, Right: right}, pos, nil

	default:
		return nil, 0, fmt.Errorf("%w: unexpected byte %q at offset %d", ErrMalformedTree, data[pos], pos)
	}
}

func startsNode(data []byte, pos int) bool {
	return pos < len(data) && (data[pos] == leafMark || data[pos] == leftMark)
}
