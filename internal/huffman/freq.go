package huffman

import "sort"

// FrequencyTable maps each character of a text to the number of times it
// occurs. Counts are always positive.
type FrequencyTable map[rune]int

// Analyze counts the occurrences of every character in text.
//
// Every code point is its own symbol: whitespace, control characters and
// differently-cased letters are all distinct. Empty text yields an empty
// table.
func Analyze(text string) FrequencyTable {
	freq := make(FrequencyTable)
	for _, r := range text {
		freq[r]++
	}
	return freq
}

// Symbols returns the characters in the table in ascending code point order.
func (f FrequencyTable) Symbols() []rune {
	syms := make([]rune, 0, len(f))
	for r := range f {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// Total reports the total number of characters counted.
func (f FrequencyTable) Total() int {
	var n int
	for _, c := range f {
		n += c
	}
	return n
}
