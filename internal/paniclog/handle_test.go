package paniclog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/abhinav/huffpack/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	t.Parallel()

	sadness := errors.New("great sadness")

	tests := []struct {
		desc string
		give interface{}

		wantMsg string // contains check
		wantErr string // equals check
		wantIs  error
	}{
		{desc: "nil"},
		{
			desc:    "string",
			give:    "foo",
			wantMsg: "ERROR panic: foo\n",
			wantErr: "panic: foo",
		},
		{
			desc:    "error",
			give:    sadness,
			wantMsg: "ERROR panic: great sadness\n",
			wantErr: "panic: great sadness",
			wantIs:  sadness,
		},
		{
			desc:    "int",
			give:    42,
			wantMsg: "ERROR panic: 42\n",
			wantErr: "panic: 42",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			got := Handle(tt.give, log.New(&buff, nil))

			if len(tt.wantErr) == 0 {
				assert.NoError(t, got)
				assert.Empty(t, buff.String())
				return
			}

			require.Error(t, got)
			assert.Equal(t, tt.wantErr, got.Error())
			assert.Contains(t, buff.String(), tt.wantMsg)
			assert.Contains(t, buff.String(), "ERROR goroutine ")
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		var (
			err  error
			buff bytes.Buffer
		)
		defer func() {
			require.Error(t, err)
			assert.Equal(t, "panic: great sadness", err.Error())
			assert.Contains(t, buff.String(), "panic: great sadness\n")
		}()

		defer Recover(&err, log.New(&buff, nil))

		panic("great sadness")
	})

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()

		var (
			err  error
			buff bytes.Buffer
		)
		defer func() {
			require.NoError(t, err)
			assert.Empty(t, buff.String())
		}()

		defer Recover(&err, log.New(&buff, nil))
	})

	t.Run("panic after error", func(t *testing.T) {
		t.Parallel()

		var buff bytes.Buffer
		err := errors.New("first")

		defer func() {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "first")
			assert.Contains(t, err.Error(), "panic: second")
		}()

		defer Recover(&err, log.New(&buff, nil))

		panic("second")
	})
}
