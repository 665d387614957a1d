package archive

import (
	"encoding"
	"flag"
	"fmt"
	"strings"
)

// CodecType identifies the algorithm used to compress the code table inside
// an archive.
type CodecType uint8

// Supported codecs.
// These values are written to archives and must not change.
const (
	CodecNone CodecType = 0x1
	CodecZstd CodecType = 0x2
	CodecS2   CodecType = 0x3
	CodecLZ4  CodecType = 0x4
)

var _codecNames = map[CodecType]string{
	CodecNone: "none",
	CodecZstd: "zstd",
	CodecS2:   "s2",
	CodecLZ4:  "lz4",
}

var (
	_ flag.Value               = (*CodecType)(nil)
	_ encoding.TextMarshaler   = CodecType(0)
	_ encoding.TextUnmarshaler = (*CodecType)(nil)
)

func (c CodecType) String() string {
	if name, ok := _codecNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CodecType(%d)", uint8(c))
}

// Set parses a codec name. It implements flag.Value.
func (c *CodecType) Set(name string) error {
	for t, n := range _codecNames {
		if strings.EqualFold(n, name) {
			*c = t
			return nil
		}
	}
	return fmt.Errorf("unknown codec %q: must be one of none, zstd, s2, lz4", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c CodecType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CodecType) UnmarshalText(b []byte) error {
	return c.Set(string(b))
}

// Codec compresses and decompresses blobs of data.
// Implementations are safe for concurrent use.
type Codec interface {
	// Type identifies the codec in archive headers.
	Type() CodecType

	// Compress returns a compressed copy of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress.
	Decompress(data []byte) ([]byte, error)
}

//go:generate mockgen -destination mock_codec_test.go -package archive github.com/abhinav/huffpack/internal/archive Codec

// Upper bound on the size of a decompressed code table.
// Code tables are small; anything larger is corrupt.
const _maxTableSize = 64 << 20

// NewCodec returns the Codec for the given type.
func NewCodec(t CodecType) (Codec, error) {
	switch t {
	case CodecNone:
		return noopCodec{}, nil
	case CodecZstd:
		return zstdCodec{}, nil
	case CodecS2:
		return s2Codec{}, nil
	case CodecLZ4:
		return lz4Codec{}, nil
	default:
		return nil, fmt.Errorf("unsupported codec: %v", t)
	}
}

type noopCodec struct{}

func (noopCodec) Type() CodecType { return CodecNone }

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}
