package huffman

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Decode reconstructs the text encoded in bits using the given code table.
//
// The table is validated first; see CodeTable.Validate.
// Returns a MalformedEncodingError if bits contains anything other than '0'
// and '1', contains a sequence that matches no code, or ends partway through
// a code. Decode never returns partially decoded text.
//
// Empty bits decode to empty text.
func Decode(bits string, table CodeTable) (string, error) {
	t, err := newTrie(table)
	if err != nil {
		return "", err
	}
	if len(bits) == 0 {
		return "", nil
	}

	var (
		out   strings.Builder
		cur   int32 // current trie node
		start int   // offset of the code being matched
	)
	for i := 0; i < len(bits); i++ {
		b := bits[i]
		if b != '0' && b != '1' {
			return "", &MalformedEncodingError{
				Offset: i,
				Reason: fmt.Sprintf("unexpected character %q", b),
			}
		}

		next := t.nodes[cur].child[b-'0']
		if next == 0 {
			return "", &MalformedEncodingError{
				Offset: start,
				Reason: fmt.Sprintf("%q does not match any code", bits[start:i+1]),
			}
		}

		if n := &t.nodes[next]; n.leaf {
			out.WriteRune(n.symbol)
			cur, start = 0, i+1
		} else {
			cur = next
		}
	}

	if cur != 0 {
		return "", &MalformedEncodingError{
			Offset: start,
			Reason: fmt.Sprintf("input ends in the middle of a code: %q", bits[start:]),
		}
	}

	return out.String(), nil
}

// trie is a binary trie of codes.
// Node 0 is the root.
// Because the root is never anyone's child,
// a child index of 0 means there is no child.
type trie struct {
	nodes []trieNode
}

type trieNode struct {
	child  [2]int32
	leaf   bool
	symbol rune
}

// newTrie builds a trie from the given code table,
// reporting every entry that makes the table ambiguous or malformed.
func newTrie(table CodeTable) (*trie, error) {
	t := &trie{nodes: make([]trieNode, 1, 2*len(table)+1)}

	var err error
	for _, sym := range table.Symbols() {
		if ierr := t.insert(sym, table[sym]); ierr != nil {
			err = multierr.Append(err, ierr)
		}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *trie) insert(sym rune, code string) error {
	invalid := func(reason string, args ...interface{}) error {
		return &InvalidCodeTableError{
			Symbol: sym,
			Code:   code,
			Reason: fmt.Sprintf(reason, args...),
		}
	}

	if len(code) == 0 {
		return invalid("code is empty")
	}
	for _, r := range code {
		if r != '0' && r != '1' {
			return invalid("code must contain only '0' and '1', found %q", r)
		}
	}

	var cur int32
	for i := 0; i < len(code); i++ {
		if n := &t.nodes[cur]; n.leaf {
			return invalid("code %q of symbol %q is a prefix of it", code[:i], n.symbol)
		}

		bit := code[i] - '0'
		next := t.nodes[cur].child[bit]
		if next == 0 {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{})
			t.nodes[cur].child[bit] = next
		}
		cur = next
	}

	n := &t.nodes[cur]
	switch {
	case n.leaf:
		return invalid("symbol %q has the same code", n.symbol)
	case n.child != [2]int32{}:
		return invalid("code is a prefix of the code of symbol %q", t.firstSymbolBelow(cur))
	}

	n.leaf = true
	n.symbol = sym
	return nil
}

// firstSymbolBelow returns the symbol of the leftmost leaf below node i.
func (t *trie) firstSymbolBelow(i int32) rune {
	for !t.nodes[i].leaf {
		n := &t.nodes[i]
		if n.child[0] != 0 {
			i = n.child[0]
		} else {
			i = n.child[1]
		}
	}
	return t.nodes[i].symbol
}
