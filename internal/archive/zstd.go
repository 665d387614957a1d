package archive

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are expensive to create and designed to be reused.
var (
	_zstdEncoders = sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedBestCompression),
				zstd.WithEncoderCRC(false), // archives carry their own checksum
			)
			if err != nil {
				panic(fmt.Sprintf("create zstd encoder: %v", err))
			}
			return enc
		},
	}

	_zstdDecoders = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderMaxMemory(_maxTableSize),
			)
			if err != nil {
				panic(fmt.Sprintf("create zstd decoder: %v", err))
			}
			return dec
		},
	}
)

type zstdCodec struct{}

func (zstdCodec) Type() CodecType { return CodecZstd }

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	enc := _zstdEncoders.Get().(*zstd.Encoder)
	defer _zstdEncoders.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	dec := _zstdDecoders.Get().(*zstd.Decoder)
	defer _zstdDecoders.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	return out, nil
}
