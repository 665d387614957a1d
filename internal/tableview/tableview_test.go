package tableview

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		table huffman.CodeTable
		freq  huffman.FrequencyTable
		want  []string
	}{
		{
			desc:  "empty",
			table: huffman.CodeTable{},
			freq:  huffman.FrequencyTable{},
			want:  []string{"SYMBOL  COUNT  CODE"},
		},
		{
			desc:  "abracadabra",
			table: huffman.CodeTable{'a': "0", 'c': "100", 'd': "101", 'b': "110", 'r': "111"},
			freq:  huffman.FrequencyTable{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1},
			want: []string{
				"SYMBOL  COUNT  CODE",
				"'a'         5  0",
				"'c'         1  100",
				"'d'         1  101",
				"'b'         2  110",
				"'r'         2  111",
			},
		},
		{
			desc:  "without counts",
			table: huffman.CodeTable{'x': "1", 'y': "0"},
			want: []string{
				"SYMBOL  CODE",
				"'y'     0",
				"'x'     1",
			},
		},
		{
			desc:  "escapes",
			table: huffman.CodeTable{'\n': "00", '\x00': "01", '\u200b': "10", '\'': "11"},
			want: []string{
				"SYMBOL    CODE",
				`'\n'      00`,
				`'\x00'    01`,
				`'\u200b'  10`,
				`'\''      11`,
			},
		},
		{
			desc:  "wide characters",
			table: huffman.CodeTable{'世': "0", 'a': "1"},
			freq:  huffman.FrequencyTable{'世': 12, 'a': 3},
			want: []string{
				"SYMBOL  COUNT  CODE",
				"'世'       12  0",
				"'a'         3  1",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.table, tt.freq))
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

func TestRenderWriteError(t *testing.T) {
	t.Parallel()

	err := Render(failWriter{}, huffman.CodeTable{'a': "0"}, nil)
	assert.ErrorContains(t, err, "great sadness")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("great sadness")
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, width("'a'"))
	assert.Equal(t, 4, width("'世'"))
	assert.Equal(t, 3, width("'é'"), "combining marks take no space")
}
