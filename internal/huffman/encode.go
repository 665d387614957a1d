package huffman

import "strings"

// Encode replaces every character in text with its code from table
// and returns the concatenated bit-string.
//
// The result is not padded to a byte boundary.
// Returns an UnknownSymbolError if text contains a character that is not in
// the table.
func Encode(text string, table CodeTable) (string, error) {
	var (
		out  strings.Builder
		size int
	)
	for off, r := range text {
		code, ok := table[r]
		if !ok {
			return "", &UnknownSymbolError{Symbol: r, Offset: off}
		}
		size += len(code)
	}

	out.Grow(size)
	for _, r := range text {
		out.WriteString(table[r])
	}
	return out.String(), nil
}
