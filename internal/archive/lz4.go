package archive

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var _lz4Compressors = sync.Pool{
	New: func() any { return new(lz4.Compressor) },
}

type lz4Codec struct{}

func (lz4Codec) Type() CodecType { return CodecLZ4 }

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c := _lz4Compressors.Get().(*lz4.Compressor)
	defer _lz4Compressors.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if n == 0 && len(data) > 0 {
		// Incompressible input.
		// Store it as a literal-only block so it still round-trips.
		return literalBlock(data), nil
	}
	return dst[:n], nil
}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// The decompressed size is not recorded,
	// so start with a guess and grow until it fits.
	size := 4 * len(data)
	for size <= _maxTableSize {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		size *= 2
	}
	return nil, fmt.Errorf("lz4: decompressed size exceeds %d bytes", _maxTableSize)
}

// literalBlock encodes data as a single LZ4 sequence with no matches.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+16)
	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xf0)
		rest := n - 15
		for ; rest >= 255; rest -= 255 {
			out = append(out, 0xff)
		}
		out = append(out, byte(rest))
	}
	return append(out, data...)
}
