package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// handler is a slog.Handler that writes one line per record:
//
//	LEVEL message key=value group.key="quoted value"
type handler struct {
	w     io.Writer
	level Level
	color bool

	mu *sync.Mutex // guards writes to w; shared by derived handlers

	attrs []byte // preformatted attributes from WithAttrs
	group string // dot-separated prefix for attribute keys
}

var _ slog.Handler = (*handler)(nil)

// ANSI escape sequences.
const (
	_reset  = "\x1b[0m"
	_bold   = "\x1b[1m"
	_dim    = "\x1b[2m"
	_red    = "\x1b[91;1m"
	_yellow = "\x1b[93;1m"
	_green  = "\x1b[92;1m"
	_gray   = "\x1b[2;1m"
)

func (h *handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	buf := *getBuf()
	defer putBuf(&buf)

	buf = h.style(buf, levelColor(rec.Level), rec.Level.String())
	buf = append(buf, ' ')
	buf = h.style(buf, _bold, strings.TrimRight(rec.Message, "\n"))

	if len(h.attrs) > 0 {
		buf = append(buf, h.attrs...)
	}
	rec.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.group, a)
		return true
	})
	buf = append(buf, '\n')

	if h.mu != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
	}
	_, err := h.w.Write(buf)
	return err
}

func levelColor(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return _red
	case lvl >= slog.LevelWarn:
		return _yellow
	case lvl >= slog.LevelInfo:
		return _green
	default:
		return _gray
	}
}

// style appends s to buf, wrapped in the given escape sequence if colors
// are enabled.
func (h *handler) style(buf []byte, esc, s string) []byte {
	if !h.color {
		return append(buf, s...)
	}
	buf = append(buf, esc...)
	buf = append(buf, s...)
	return append(buf, _reset...)
}

func (h *handler) appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if len(group) > 0 {
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = h.appendAttr(buf, key, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = h.style(buf, _dim, key+"=")

	switch a.Value.Kind() {
	case slog.KindString:
		buf = appendString(buf, a.Value.String())
	case slog.KindInt64:
		buf = strconv.AppendInt(buf, a.Value.Int64(), 10)
	case slog.KindUint64:
		buf = strconv.AppendUint(buf, a.Value.Uint64(), 10)
	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, a.Value.Float64(), 'f', -1, 64)
	case slog.KindBool:
		buf = strconv.AppendBool(buf, a.Value.Bool())
	case slog.KindDuration:
		buf = append(buf, a.Value.Duration().String()...)
	case slog.KindTime:
		buf = append(buf, a.Value.Time().String()...)
	default:
		buf = appendString(buf, fmt.Sprint(a.Value.Any()))
	}
	return buf
}

// appendString appends s, quoted if it would otherwise be ambiguous.
func appendString(buf []byte, s string) []byte {
	if needsQuote(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuote(s string) bool {
	if len(s) == 0 {
		return true
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '"' || r == '=' || !unicode.IsPrint(r)
	}) >= 0
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		out.attrs = out.appendAttr(out.attrs, h.group, a)
	}
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}

	out := *h
	if len(out.group) > 0 {
		out.group += "."
	}
	out.group += name
	return &out
}

var _bufPool = sync.Pool{
	New: func() interface{} {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}
