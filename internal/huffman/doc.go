// Package huffman implements lossless text compression with binary Huffman
// codes.
//
// Compression runs in four stages:
//
//	Analyze -> Build -> Derive -> Encode
//
// Analyze counts how often each character appears in the text,
// Build greedily merges the two lightest nodes until a single tree remains,
// Derive walks that tree to assign a '0'/'1' code to every character,
// and Encode concatenates those codes.
//
// The output of compression is a bit-string (a string of '0' and '1'
// characters, not packed bytes) and the CodeTable used to produce it.
// The CodeTable is the only thing Decode needs to reconstruct the text;
// it does not need the tree or the frequencies.
//
// Codes are prefix-free: no code is a prefix of another code in the same
// table. This allows decoding one bit at a time without delimiters.
//
// All functions in this package are pure and safe for concurrent use.
package huffman
