package hufftext

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
)

// Render returns a human-readable listing of the tree.  Nodes are numbered
// as in a binary heap: the root is 1 and the children of node i are 2i and
// 2i+1.  An internal node i is listed as "2i <= i => 2i+1" followed by its
// left and right subtrees; a leaf is listed as "i = 'c'".
//
// The listing is for display only; use SerializeTree for a form that can be
// parsed back.
//
func Render(root Node) string {
	var buf bytes.Buffer
	renderNode(&buf, root, big.NewInt(1))
	return buf.String()
}

func renderNode(buf *bytes.Buffer, n Node, index *big.Int) {
	switch x := n.(type) {
	case nil:
		fmt.Fprintf(buf, "%d = (absent)", index)
	case Leaf:
		fmt.Fprintf(buf, "%d = %q", index, byte(x.Symbol))
	case *Internal:
		left := new(big.Int).Lsh(index, 1)
		right := new(big.Int).Add(left, big.NewInt(1))
		fmt.Fprintf(buf, "%d <= %d => %d\n", left, index, right)
		renderNode(buf, x.Left, left)
		buf.WriteByte('\n')
		renderNode(buf, x.Right, right)
	}
}

// DumpTree writes Render's listing of the tree to the given writer, framed
// the same way as CodeTable.Dump.
func DumpTree(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	for _, line := range bytes.Split([]byte(Render(root)), []byte{'\n'}) {
		buf.WriteByte('\t')
		buf.Write(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
