package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Build when there are no symbols to
	// build a tree from.
	//
	// Compress never returns this: empty text compresses to an empty
	// bit-string with an empty table.
	ErrEmptyInput = errors.New("no symbols to build a tree from")

	// ErrInvalidText is returned by Compress when the text is not valid
	// UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")
)

// UnknownSymbolError is returned by Encode when the text contains a character
// that is not in the code table.
type UnknownSymbolError struct {
	Symbol rune
	Offset int // byte offset in the text
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q at offset %d is not in the code table", e.Symbol, e.Offset)
}

// InvalidCodeTableError reports a code table entry that makes the table
// unusable for decoding.
type InvalidCodeTableError struct {
	Symbol rune
	Code   string
	Reason string

	keyErr bool // Symbol is unset because the key is not a character
}

func (e *InvalidCodeTableError) Error() string {
	if e.keyErr {
		return fmt.Sprintf("invalid code %q: %v", e.Code, e.Reason)
	}
	return fmt.Sprintf("invalid code %q for symbol %q: %v", e.Code, e.Symbol, e.Reason)
}

// MalformedEncodingError is returned by Decode when the bit-string cannot be
// decoded with the code table: it is truncated, corrupted, or contains
// characters other than '0' and '1'.
type MalformedEncodingError struct {
	Offset int // index of the offending bit
	Reason string
}

func (e *MalformedEncodingError) Error() string {
	return fmt.Sprintf("malformed encoding at bit %d: %v", e.Offset, e.Reason)
}

// DegenerateTreeError is returned by Derive if it reaches a leaf that would
// receive an empty code.
type DegenerateTreeError struct {
	Symbol rune
}

func (e *DegenerateTreeError) Error() string {
	return fmt.Sprintf("symbol %q has an empty code", e.Symbol)
}
