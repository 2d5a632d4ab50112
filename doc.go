// Package hufftext implements a self-describing Huffman compressor for byte
// strings.  The code tree travels with the compressed data in a compact
// textual form, so an artifact can be decoded without any external context.
//
// An artifact has three fields separated by line breaks:
//
//     <serialized tree>
//     <padding, one decimal digit 0 .. 7>
//     <payload bytes>
//
// The serialized tree is self-delimiting: a leaf holding byte c is written as
// the quote character followed by c itself, and an internal node is written
// as "0" + left + "1" + right.  Leaf bytes are written raw, so the tree field
// may itself contain line breaks.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftext
