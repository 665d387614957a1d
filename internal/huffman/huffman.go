package huffman

import "unicode/utf8"

// Result is the outcome of compressing a text.
type Result struct {
	// Bits is the encoded text as a string of '0' and '1' characters.
	Bits string

	// Table holds the code for every character of the text.
	// It is required to decode Bits.
	Table CodeTable

	// Freq holds the character counts the table was built from.
	// It is informational only and is not needed to decode Bits.
	Freq FrequencyTable

	size int // of the original text in bytes
}

// Compress compresses text into a bit-string and the code table needed to
// decompress it.
//
// Empty text compresses to an empty bit-string and an empty table.
// Returns ErrInvalidText if text is not valid UTF-8.
func Compress(text string) (*Result, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	freq := Analyze(text)
	if len(freq) == 0 {
		return &Result{Table: CodeTable{}, Freq: freq}, nil
	}

	root, err := Build(freq)
	if err != nil {
		return nil, err
	}

	table, err := Derive(root)
	if err != nil {
		return nil, err
	}

	bits, err := Encode(text, table)
	if err != nil {
		return nil, err
	}

	return &Result{
		Bits:  bits,
		Table: table,
		Freq:  freq,
		size:  len(text),
	}, nil
}

// Decompress reconstructs text from a bit-string and its code table.
// See Decode for the errors it may return.
func Decompress(bits string, table CodeTable) (string, error) {
	return Decode(bits, table)
}

// Stats summarizes the effectiveness of a compression.
type Stats struct {
	// OriginalBytes is the size of the original text in bytes.
	OriginalBytes int

	// EncodedBits is the length of the bit-string.
	EncodedBits int

	// EncodedBytes is the number of bytes needed to hold EncodedBits
	// once packed.
	EncodedBytes int

	// Ratio is EncodedBytes / OriginalBytes, or 0 for empty text.
	Ratio float64
}

// Stats reports the compressed and original sizes of this result.
func (r *Result) Stats() Stats {
	s := Stats{
		OriginalBytes: r.size,
		EncodedBits:   len(r.Bits),
		EncodedBytes:  (len(r.Bits) + 7) / 8,
	}
	if s.OriginalBytes > 0 {
		s.Ratio = float64(s.EncodedBytes) / float64(s.OriginalBytes)
	}
	return s
}
