package hufftext

// MaxDepth is the deepest a tree over the byte alphabet can be: a fully
// skewed tree with one leaf for each of the NumSymbols symbols.
const MaxDepth = NumSymbols - 1

// Node is a node in a Huffman code tree.  It is either a Leaf or an
// *Internal.
//
// A nil Node is the "absent" sentinel.  It appears only as the right child of
// the root of a tree built for a single distinct symbol, where it marks a
// dead branch that no Code leads into.
type Node interface {
	isNode()
}

// Leaf is a Node holding exactly one Symbol.
type Leaf struct {
	Symbol Symbol
}

// Internal is a Node with two children.  Left is reached by a 0 bit and
// Right by a 1 bit.
type Internal struct {
	Left  Node
	Right Node
}

func (Leaf) isNode()      {}
func (*Internal) isNode() {}

var (
	_ Node = Leaf{}
	_ Node = (*Internal)(nil)
)

// Equal reports whether a and b have identical shape and identical symbols
// at identical paths.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x == y
	case *Internal:
		y, ok := b.(*Internal)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// Leaves returns the number of leaves in the tree.
func Leaves(n Node) int {
	switch x := n.(type) {
	case Leaf:
		return 1
	case *Internal:
		return Leaves(x.Left) + Leaves(x.Right)
	}
	return 0
}
