package hufftext

import (
	"fmt"
	"math"
)

// Result is the outcome of a successful Encode.
type Result struct {
	// Artifact holds the framed output: tree, padding and payload.
	Artifact []byte

	// Tree is the Huffman code tree the data was encoded with.
	Tree Node

	// Codes maps each symbol of the input to its Code.
	Codes CodeTable

	// Ratio is len(input) / len(Artifact), rounded to two decimal places.
	// It is informational only.
	Ratio float64
}

// Report returns a one-line summary of the compression ratio.
func (r *Result) Report() string {
	return fmt.Sprintf("Compression Ratio: %.2f:1", r.Ratio)
}

// Decoded is the outcome of a successful Decode.
type Decoded struct {
	// Data holds the original bytes.
	Data []byte

	// Tree is the Huffman code tree read from the artifact.
	Tree Node
}

// Encode compresses data into a self-describing artifact.  It fails with
// ErrEmptyInput if data is empty.
//
// Encode holds no state between calls and is safe for concurrent use.
//
func Encode(data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	freqs := CountFrequencies(data)
	root, err := BuildTree(&freqs)
	if err != nil {
		return nil, err
	}

	codes := BuildCodeTable(root)
	payload, err := Pack(codes, data)
	if err != nil {
		return nil, err
	}

	artifact, err := Artifact{Tree: root, Payload: payload}.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return &Result{
		Artifact: artifact,
		Tree:     root,
		Codes:    codes,
		Ratio:    Ratio(len(data), len(artifact)),
	}, nil
}

// Decode reverses Encode.
//
// It fails with ErrMalformedArtifact if any of the three fields is missing,
// with ErrInvalidPadding if the padding field is not a digit in [0, 7], and
// with ErrMalformedTree if the tree field does not parse.
//
func Decode(artifact []byte) (*Decoded, error) {
	a, err := ParseArtifact(artifact)
	if err != nil {
		return nil, err
	}

	data, err := DecodeSymbols(a.Tree, a.Payload)
	if err != nil {
		return nil, err
	}
	return &Decoded{Data: data, Tree: a.Tree}, nil
}

// Ratio returns originalSize / compressedSize rounded to two decimal places,
// or 0 if compressedSize is 0.
func Ratio(originalSize, compressedSize int) float64 {
	if compressedSize == 0 {
		return 0
	}
	return math.Round(100*float64(originalSize)/float64(compressedSize)) / 100
}
