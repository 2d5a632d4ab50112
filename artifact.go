package hufftext

import (
	"bytes"
	"encoding"
	"fmt"
	"strconv"
)

// fieldSep separates the three fields of an artifact.
const fieldSep = '\n'

// Artifact is the self-describing output of Encode.
type Artifact struct {
	Tree    Node
	Payload Bitstream
}

// MarshalBinary lays the artifact out as tree, padding digit and payload,
// separated by line breaks.
func (a Artifact) MarshalBinary() ([]byte, error) {
	tree := SerializeTree(a.Tree)
	padding := a.Payload.Padding()
	if padding < 0 || padding > 7 {
		return nil, fmt.Errorf("%w: got %d, want 0 .. 7", ErrInvalidPadding, padding)
	}

	out := make([]byte, 0, len(tree)+3+len(a.Payload.Bytes))
	out = append(out, tree...)
	out = append(out, fieldSep)
	out = strconv.AppendInt(out, int64(padding), 10)
	out = append(out, fieldSep)
	out = append(out, a.Payload.Bytes...)
	return out, nil
}

// UnmarshalBinary parses an artifact produced by MarshalBinary.
func (a *Artifact) UnmarshalBinary(data []byte) error {
	parsed, err := ParseArtifact(data)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Artifact{}
	_ encoding.BinaryUnmarshaler = (*Artifact)(nil)
)

// ParseArtifact splits data into its tree, padding and payload fields.
//
// The serialized tree is self-delimiting and may contain line breaks of its
// own, so the tree's parser decides where the first field ends.  Payload
// bytes are never searched for separators.  If the tree does not parse, the
// first line break is taken as its end, so that a missing field or a bad
// padding digit is reported in preference to the tree error.  As a result,
// an artifact whose tree field is itself malformed can report
// ErrInvalidPadding where splitting the fields from the end would have
// reported ErrMalformedTree: "a\nb\n3\nx" is one such input, since "b" is
// read as its padding field.
//
func ParseArtifact(data []byte) (*Artifact, error) {
	if bytes.Count(data, []byte{fieldSep}) < 2 {
		return nil, fmt.Errorf("%w: want tree, padding and payload fields", ErrMalformedArtifact)
	}

	root, end, treeErr := parseTreePrefix(data)
	if treeErr == nil && (end >= len(data) || data[end] != fieldSep) {
		treeErr = fmt.Errorf("%w: tree not followed by a line break at offset %d", ErrMalformedTree, end)
	}
	if treeErr != nil {
		end = bytes.IndexByte(data, fieldSep)
	}

	rest := data[end+1:]
	i := bytes.IndexByte(rest, fieldSep)
	if i < 0 {
		return nil, fmt.Errorf("%w: missing payload field", ErrMalformedArtifact)
	}

	padding, err := parsePadding(rest[:i])
	if err != nil {
		return nil, err
	}
	if treeErr != nil {
		return nil, treeErr
	}

	payload, err := Unpack(rest[i+1:], padding)
	if err != nil {
		return nil, err
	}
	return &Artifact{Tree: root, Payload: payload}, nil
}

func parsePadding(field []byte) (int, error) {
	if len(field) != 1 || field[0] < '0' || field[0] > '7' {
		return 0, fmt.Errorf("%w: got %q, want 0 .. 7", ErrInvalidPadding, field)
	}
	return int(field[0] - '0'), nil
}
