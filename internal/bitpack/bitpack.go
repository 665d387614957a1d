// Package bitpack converts between bit-strings
// (strings of '0' and '1' characters)
// and the bytes they represent.
//
// Bits are packed most significant bit first.
// The final byte is padded with zero bits.
package bitpack

import "fmt"

// PackedLen reports the number of bytes needed to hold n bits.
func PackedLen(n int) int {
	return (n + 7) / 8
}

// Pack packs the given bit-string into bytes.
// It fails if bits contains anything other than '0' and '1'.
func Pack(bits string) ([]byte, error) {
	out := make([]byte, PackedLen(len(bits)))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			// nothing to do
		case '1':
			out[i/8] |= 0x80 >> (i % 8)
		default:
			return nil, fmt.Errorf("bit %d: unexpected character %q", i, bits[i])
		}
	}
	return out, nil
}

// Unpack unpacks the first n bits of data into a bit-string.
//
// data must hold exactly PackedLen(n) bytes,
// and the padding bits after the first n must be zero.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("negative bit count %d", n)
	}
	if want := PackedLen(n); len(data) != want {
		return "", fmt.Errorf("%d bits need %d bytes, got %d", n, want, len(data))
	}
	if pad := n % 8; pad > 0 {
		if last := data[len(data)-1]; last&(0xff>>pad) != 0 {
			return "", fmt.Errorf("non-zero padding in final byte %08b", last)
		}
	}

	out := make([]byte, n)
	for i := range out {
		if data[i/8]&(0x80>>(i%8)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out), nil
}
