package log

import (
	"bytes"
	"context"
)

// Writer is an io.Writer that writes to the provided logger, splitting
// messages across newlines into new log entries.
//
// Call Close to flush a trailing partial line.
type Writer struct {
	Log   *Logger
	Level Level

	buff bytes.Buffer
}

func (w *Writer) Write(bs []byte) (int, error) {
	n := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx], bs[idx+1:]
		if w.buff.Len() == 0 {
			w.logLine(line)
			continue
		}

		// Join with the partial line from a previous write.
		w.buff.Write(line)
		w.logLine(w.buff.Bytes())
		w.buff.Reset()
	}
	return n, nil
}

// Close flushes any buffered partial line to the underlying log.
func (w *Writer) Close() error {
	if w.buff.Len() > 0 {
		w.logLine(w.buff.Bytes())
		w.buff.Reset()
	}
	return nil
}

func (w *Writer) logLine(b []byte) {
	w.Log.Log(context.Background(), w.Level, string(b))
}
