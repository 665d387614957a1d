// Package archive stores compressed texts in a compact binary form.
//
// An archive holds the packed bits of an encoded text
// and the code table needed to decode them:
//
//	magic    "HUFP"
//	codec    1 byte, CodecType used for the table
//	bits     uvarint, number of encoded bits
//	tableLen uvarint, length of the compressed table
//	table    JSON code table, compressed with codec
//	payload  bits packed MSB-first, zero-padded to a byte boundary
//	checksum xxhash64 of all preceding bytes, little-endian
//
// The archive does not check that the table is usable;
// the decoder does that.
package archive

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/abhinav/huffpack/internal/bitpack"
	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/cespare/xxhash/v2"
)

const (
	_magic        = "HUFP"
	_checksumSize = 8
)

var (
	// ErrBadMagic indicates that the input is not an archive.
	ErrBadMagic = errors.New("not a huffpack archive")

	// ErrChecksum indicates that the archive is corrupted.
	ErrChecksum = errors.New("archive checksum mismatch")

	// ErrTruncated indicates that the archive ends early.
	ErrTruncated = errors.New("archive is truncated")
)

// Archive is the contents of an archive file.
type Archive struct {
	// Bits is the encoded text as '0' and '1' characters.
	Bits string

	// Table is the code table for Bits.
	Table huffman.CodeTable
}

// Write writes the archive to w, compressing its table with codec.
func Write(w io.Writer, a *Archive, codec Codec) error {
	table, err := json.Marshal(a.Table)
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}

	table, err = codec.Compress(table)
	if err != nil {
		return fmt.Errorf("compress table with %v: %w", codec.Type(), err)
	}

	payload, err := bitpack.Pack(a.Bits)
	if err != nil {
		return fmt.Errorf("pack bits: %w", err)
	}

	buf := make([]byte, 0, len(_magic)+1+2*binary.MaxVarintLen64+len(table)+len(payload)+_checksumSize)
	buf = append(buf, _magic...)
	buf = append(buf, byte(codec.Type()))
	buf = binary.AppendUvarint(buf, uint64(len(a.Bits)))
	buf = binary.AppendUvarint(buf, uint64(len(table)))
	buf = append(buf, table...)
	buf = append(buf, payload...)
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(buf))

	_, err = w.Write(buf)
	return err
}

// Read reads an archive written by Write.
func Read(r io.Reader) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses the bytes of an archive written by Write.
func Parse(data []byte) (*Archive, error) {
	if len(data) < len(_magic) || string(data[:len(_magic)]) != _magic {
		return nil, ErrBadMagic
	}
	if len(data) < len(_magic)+1+_checksumSize {
		return nil, ErrTruncated
	}

	body, sum := data[:len(data)-_checksumSize], data[len(data)-_checksumSize:]
	if xxhash.Sum64(body) != binary.LittleEndian.Uint64(sum) {
		return nil, ErrChecksum
	}

	body = body[len(_magic):]
	codec, err := NewCodec(CodecType(body[0]))
	if err != nil {
		return nil, err
	}
	body = body[1:]

	nbits, body, err := readUvarint(body)
	if err != nil {
		return nil, fmt.Errorf("read bit count: %w", err)
	}
	tableLen, body, err := readUvarint(body)
	if err != nil {
		return nil, fmt.Errorf("read table length: %w", err)
	}
	if tableLen > uint64(len(body)) {
		return nil, fmt.Errorf("read table: %w", ErrTruncated)
	}

	tableData, payload := body[:tableLen], body[tableLen:]
	if nbits > uint64(len(payload))*8 {
		return nil, fmt.Errorf("read payload: %w", ErrTruncated)
	}

	tableData, err = codec.Decompress(tableData)
	if err != nil {
		return nil, fmt.Errorf("decompress table with %v: %w", codec.Type(), err)
	}

	var table huffman.CodeTable
	if err := json.Unmarshal(tableData, &table); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}

	bits, err := bitpack.Unpack(payload, int(nbits))
	if err != nil {
		return nil, fmt.Errorf("unpack bits: %w", err)
	}

	return &Archive{Bits: bits, Table: table}, nil
}

func readUvarint(b []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(b)
	switch {
	case n == 0:
		return 0, nil, ErrTruncated
	case n < 0:
		return 0, nil, errors.New("value overflows 64 bits")
	}
	return v, b[n:], nil
}
