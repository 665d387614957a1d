package huffman

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// CodeTable maps characters to their codes.
// Each code is a non-empty string of '0' and '1' characters.
//
// A CodeTable is the only artifact needed to decode a bit-string.
// It serializes to JSON as an object keyed by the characters themselves:
//
//	{"\n": "110", "a": "0", "b": "111", "r": "10"}
type CodeTable map[rune]string

var (
	_ json.Marshaler   = CodeTable(nil)
	_ json.Unmarshaler = (*CodeTable)(nil)
)

// Derive walks the tree rooted at root and assigns a code to every leaf:
// '0' for each step to a left child and '1' for each step to a right child.
//
// Returns a DegenerateTreeError if a leaf would receive an empty code,
// which happens only if root itself is a leaf.
// A nil root yields an empty table.
func Derive(root *Node) (CodeTable, error) {
	table := make(CodeTable)
	if root == nil {
		return table, nil
	}

	var walk func(*Node, []byte) error
	walk = func(n *Node, path []byte) error {
		if n.IsLeaf() {
			if len(path) == 0 {
				return &DegenerateTreeError{Symbol: n.Symbol}
			}
			table[n.Symbol] = string(path)
			return nil
		}

		// Branches synthesized for a lone symbol have no right child.
		for i, child := range [...]*Node{n.Left, n.Right} {
			if child == nil {
				continue
			}
			if err := walk(child, append(path, '0'+byte(i))); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, nil); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate reports whether the table can be used to decode bit-strings.
// Every problem found is reported as an *InvalidCodeTableError,
// combined into a single error if there is more than one.
// Use multierr.Errors to retrieve them individually.
func (t CodeTable) Validate() error {
	_, err := newTrie(t)
	return err
}

// Symbols returns the characters in the table in ascending code point order.
func (t CodeTable) Symbols() []rune {
	syms := make([]rune, 0, len(t))
	for r := range t {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// MarshalJSON encodes the table as a JSON object keyed by the literal
// characters. Keys are written in sorted order.
func (t CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(t))
	for r, code := range t {
		m[string(r)] = code
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a table produced by MarshalJSON.
// Every key must be exactly one character.
// Codes are not validated here; see Validate.
func (t *CodeTable) UnmarshalJSON(b []byte) (err error) {
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m == nil {
		*t = nil
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := make(CodeTable, len(m))
	for _, k := range keys {
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) {
			err = multierr.Append(err, &InvalidCodeTableError{
				Code:   m[k],
				Reason: fmt.Sprintf("key %q is not a single character", k),
				keyErr: true,
			})
			continue
		}
		table[r] = m[k]
	}
	if err != nil {
		return err
	}

	*t = table
	return nil
}
