package log

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		level Level
		want  []string
	}{
		{
			desc:  "debug",
			level: Debug,
			want:  []string{"DEBUG debug", "INFO info", "WARN warn", "ERROR error"},
		},
		{
			desc:  "info",
			level: Info,
			want:  []string{"INFO info", "WARN warn", "ERROR error"},
		},
		{
			desc:  "error",
			level: Error,
			want:  []string{"ERROR error"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			log := New(&buff, &Options{Level: tt.level})

			log.Debug("debug")
			log.Info("info")
			log.Warn("warn")
			log.Error("error")

			assert.Equal(t, unlines(tt.want...), buff.String())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, nil)
	log.Debug("hidden")
	log.Info("shown")

	assert.Equal(t, unlines("INFO shown"), buff.String())
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, nil)

	log.Info("values",
		"str", "plain",
		"quoted", "two words",
		"empty", "",
		"control", "a\nb",
		"int", 42,
		"uint", uint64(7),
		"float", 0.25,
		"bool", true,
		"duration", 1500*time.Millisecond,
		"err", errors.New("great sadness"),
		slog.Group("grp", "a", 1, "b", "x=y"),
	)

	assert.Equal(t, unlines(
		`INFO values str=plain quoted="two words" empty="" control="a\nb"`+
			` int=42 uint=7 float=0.25 bool=true duration=1.5s`+
			` err="great sadness" grp.a=1 grp.b="x=y"`,
	), buff.String())
}

func TestOmitEmpty(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, nil)

	log.Info("msg",
		OmitEmpty(slog.String, "skipped", ""),
		OmitEmpty(slog.Int, "zero", 0),
		OmitEmpty(slog.String, "kept", "x"),
	)

	assert.Equal(t, unlines("INFO msg kept=x"), buff.String())
}

func TestWithName(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, nil).WithName("cli")
	log.With("mode", "pack").WithName("codec").Info("msg", "type", "zstd")

	assert.Equal(t, unlines("INFO msg cli.mode=pack cli.codec.type=zstd"), buff.String())
}

func TestColor(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, &Options{Color: true})
	log.Error("failed", "k", "v")

	assert.Equal(t,
		"\x1b[91;1mERROR\x1b[0m \x1b[1mfailed\x1b[0m \x1b[2mk=\x1b[0mv\n",
		buff.String())
}

func TestTrailingNewline(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	New(&buff, nil).Info("foo\n\n")

	assert.Equal(t, unlines("INFO foo"), buff.String())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.False(t, Discard.Enabled(context.Background(), Error))
	Discard.With("k", "v").WithGroup("g").Error("nothing")
}

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string
	}{
		{desc: "empty"},
		{
			desc: "split message",
			give: []string{"foo\nbar"},
			want: unlines("INFO foo", "INFO bar"),
		},
		{
			desc: "ends with a newline",
			give: []string{"foo\n", "bar\n"},
			want: unlines("INFO foo", "INFO bar"),
		},
		{
			desc: "no newlines",
			give: []string{"foo", "bar"},
			want: unlines("INFO foobar"),
		},
		{
			desc: "newline late",
			give: []string{"foo", "b\nar"},
			want: unlines("INFO foob", "INFO ar"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			w := Writer{Log: New(&buff, nil), Level: Info}
			for _, s := range tt.give {
				_, err := io.WriteString(&w, s)
				require.NoError(t, err)
			}
			require.NoError(t, w.Close())

			assert.Equal(t, tt.want, buff.String())
		})
	}
}

func TestWriterBelowLevel(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	w := Writer{Log: New(&buff, nil), Level: Debug}
	_, err := io.WriteString(&w, "hidden\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Empty(t, buff.String())
}

func unlines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
