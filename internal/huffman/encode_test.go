package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	table := CodeTable{'a': "0", 'b': "10", '日': "11"}

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "empty", give: "", want: ""},
		{desc: "single", give: "b", want: "10"},
		{desc: "multibyte", give: "a日b", want: "01110"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.give, table)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_unknownSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		give  string
		table CodeTable

		wantSymbol rune
		wantOffset int // in bytes
	}{
		{
			desc:       "ascii",
			give:       "abz",
			table:      CodeTable{'a': "0", 'b': "1"},
			wantSymbol: 'z',
			wantOffset: 2,
		},
		{
			desc:       "after multibyte",
			give:       "日本z",
			table:      CodeTable{'日': "0", '本': "1"},
			wantSymbol: 'z',
			wantOffset: 6,
		},
		{
			desc:       "multibyte unknown",
			give:       "a世",
			table:      CodeTable{'a': "0"},
			wantSymbol: '世',
			wantOffset: 1,
		},
		{
			desc:       "empty table",
			give:       "x",
			table:      CodeTable{},
			wantSymbol: 'x',
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.give, tt.table)
			assert.Empty(t, got, "must not return partial output")

			var uerr *UnknownSymbolError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.wantSymbol, uerr.Symbol)
			assert.Equal(t, tt.wantOffset, uerr.Offset)
			assert.Contains(t, err.Error(), "is not in the code table")
		})
	}
}
