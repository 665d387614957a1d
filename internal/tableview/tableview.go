// Package tableview renders code tables for humans.
package tableview

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const _gutter = "  "

type row struct {
	symbol string
	count  string
	code   string
}

// Render writes a listing of the code table to w,
// with the shortest codes first.
//
//	SYMBOL  COUNT  CODE
//	'a'         5  0
//	'c'         1  100
//
// Symbols are quoted Go-style, so control and invisible characters show
// up as escapes like '\n' or '\u200b'.
// The COUNT column is omitted if freq is nil.
func Render(w io.Writer, table huffman.CodeTable, freq huffman.FrequencyTable) error {
	syms := table.Symbols()
	sort.SliceStable(syms, func(i, j int) bool {
		ci, cj := table[syms[i]], table[syms[j]]
		if len(ci) != len(cj) {
			return len(ci) < len(cj)
		}
		return ci < cj
	})

	rows := make([]row, 0, len(syms)+1)
	rows = append(rows, row{symbol: "SYMBOL", count: "COUNT", code: "CODE"})
	for _, r := range syms {
		rows = append(rows, row{
			symbol: strconv.QuoteRune(r),
			count:  strconv.Itoa(freq[r]),
			code:   table[r],
		})
	}

	var symWidth, countWidth int
	for _, r := range rows {
		symWidth = max(symWidth, width(r.symbol))
		countWidth = max(countWidth, width(r.count))
	}

	var out strings.Builder
	for _, r := range rows {
		out.WriteString(r.symbol)
		out.WriteString(strings.Repeat(" ", symWidth-width(r.symbol)))
		out.WriteString(_gutter)
		if freq != nil {
			out.WriteString(strings.Repeat(" ", countWidth-width(r.count)))
			out.WriteString(r.count)
			out.WriteString(_gutter)
		}
		out.WriteString(r.code)
		out.WriteByte('\n')
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// width reports the number of terminal cells needed to display s.
func width(s string) int {
	var n int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		n += runewidth.StringWidth(g.Str())
	}
	return n
}
