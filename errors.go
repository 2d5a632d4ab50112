package hufftext

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when asked to encode zero symbols.
	ErrEmptyInput = errors.New("hufftext: empty input")

	// ErrMalformedTree is returned when a serialized tree contains an
	// unexpected token or ends early.
	ErrMalformedTree = errors.New("hufftext: malformed tree")

	// ErrMalformedArtifact is returned when an artifact lacks the tree
	// field or either of the two trailing fields.
	ErrMalformedArtifact = errors.New("hufftext: malformed artifact")

	// ErrUnknownSymbol is returned by Pack when the input holds a symbol
	// that has no Code in the table.
	ErrUnknownSymbol = errors.New("hufftext: no code for symbol")

	// ErrInvalidPadding is returned when the padding field is not an
	// integer in [0, 7], or claims more bits than the payload holds.
	ErrInvalidPadding = errors.New("hufftext: invalid padding")
)
