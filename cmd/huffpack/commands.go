package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/abhinav/huffpack/internal/archive"
	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/abhinav/huffpack/internal/log"
	"github.com/abhinav/huffpack/internal/tableview"
)

// session holds the state shared by a single command invocation.
type session struct {
	Log    *log.Logger
	Config *config

	Input  io.Reader
	Output io.Writer

	// Color is set if Output is a terminal.
	Color bool
}

type command struct {
	Name string
	Run  func(*session) error
}

var _commands = map[string]command{
	"compress":   {Name: "compress", Run: runCompress},
	"decompress": {Name: "decompress", Run: runDecompress},
	"pack":       {Name: "pack", Run: runPack},
	"unpack":     {Name: "unpack", Run: runUnpack},
	"table":      {Name: "table", Run: runTable},
}

func commandNames() []string {
	names := make([]string, 0, len(_commands))
	for name := range _commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type textPayload struct {
	Text string `json:"text"`
}

type encodedPayload struct {
	EncodedText string            `json:"encodedText"`
	CodeTable   huffman.CodeTable `json:"codeTable"`
}

func runCompress(s *session) error {
	res, err := s.compress()
	if err != nil {
		return err
	}

	return s.writeJSON(encodedPayload{
		EncodedText: res.Bits,
		CodeTable:   res.Table,
	})
}

func runDecompress(s *session) error {
	data, err := s.readInput()
	if err != nil {
		return err
	}

	var req encodedPayload
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if req.CodeTable == nil {
		return errors.New(`decode request: "codeTable" is missing`)
	}

	text, err := huffman.Decompress(req.EncodedText, req.CodeTable)
	if err != nil {
		return err
	}

	return s.writeJSON(textPayload{Text: text})
}

func runPack(s *session) error {
	res, err := s.compress()
	if err != nil {
		return err
	}

	codec, err := archive.NewCodec(s.Config.Codec)
	if err != nil {
		return err
	}

	return archive.Write(s.Output, &archive.Archive{
		Bits:  res.Bits,
		Table: res.Table,
	}, codec)
}

func runUnpack(s *session) error {
	data, err := s.readInput()
	if err != nil {
		return err
	}

	a, err := archive.Parse(data)
	if err != nil {
		return err
	}

	text, err := huffman.Decompress(a.Bits, a.Table)
	if err != nil {
		return err
	}

	_, err = io.WriteString(s.Output, text)
	return err
}

func runTable(s *session) error {
	res, err := s.compress()
	if err != nil {
		return err
	}

	return tableview.Render(s.Output, res.Table, res.Freq)
}

// readInput reads all of the input,
// failing if it is larger than the configured limit.
func (s *session) readInput() ([]byte, error) {
	limit := s.Config.MaxInput
	data, err := io.ReadAll(io.LimitReader(s.Input, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("input is larger than %d bytes", limit)
	}
	return data, nil
}

// compress reads text from the input and compresses it.
func (s *session) compress() (*huffman.Result, error) {
	data, err := s.readInput()
	if err != nil {
		return nil, err
	}

	text := string(data)
	if s.Config.JSONInput {
		var req textPayload
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		text = req.Text
	}

	res, err := huffman.Compress(text)
	if err != nil {
		return nil, err
	}

	if s.Config.Stats {
		stats := res.Stats()
		s.Log.Info("compressed",
			"characters", res.Freq.Total(),
			"distinct", len(res.Freq),
			"originalBytes", stats.OriginalBytes,
			"encodedBits", stats.EncodedBits,
			"encodedBytes", stats.EncodedBytes,
			"ratio", fmt.Sprintf("%.3f", stats.Ratio))
	}

	if s.Log.Enabled(context.Background(), log.Debug) {
		w := log.Writer{Log: s.Log.WithName("table"), Level: log.Debug}
		if err := tableview.Render(&w, res.Table, res.Freq); err == nil {
			_ = w.Close()
		}
	}

	return res, nil
}
