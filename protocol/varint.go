package protocol

import (
	"io"

	"github.com/go-faster/errors"
)

const (
	segmentBits = 0x7F
	continueBit = 0x80

	// MaxVarIntLen is the maximum number of bytes a VarInt occupies on the wire.
	MaxVarIntLen = 5
	// MaxVarLongLen is the maximum number of bytes a VarLong occupies on the wire.
	MaxVarLongLen = 10
)

// ReadVarInt reads a VarInt from r. Bytes are consumed one at a time, so r may be a live
// connection: no more than MaxVarIntLen bytes are ever read.
func ReadVarInt(r io.ByteReader) (int32, error) {
	v, err := readVarNumber(r, 32)
	return int32(uint32(v)), err
}

// ReadVarLong reads a VarLong from r, consuming no more than MaxVarLongLen bytes.
func ReadVarLong(r io.ByteReader) (int64, error) {
	v, err := readVarNumber(r, 64)
	return int64(v), err
}

// WriteVarInt writes x to w using the minimal number of groups.
func WriteVarInt(w io.Writer, x int32) error {
	var buf [MaxVarIntLen]byte
	n := AppendVarInt(buf[:0], x)
	_, err := w.Write(n)
	return err
}

// WriteVarLong writes x to w using the minimal number of groups.
func WriteVarLong(w io.Writer, x int64) error {
	var buf [MaxVarLongLen]byte
	n := AppendVarLong(buf[:0], x)
	_, err := w.Write(n)
	return err
}

// AppendVarInt appends the encoding of x to b. Negative values are encoded through their two's
// complement bit pattern and therefore always occupy five bytes.
func AppendVarInt(b []byte, x int32) []byte {
	return appendVarNumber(b, uint64(uint32(x)))
}

// AppendVarLong appends the encoding of x to b.
func AppendVarLong(b []byte, x int64) []byte {
	return appendVarNumber(b, uint64(x))
}

// VarIntLen returns the number of bytes x occupies once encoded.
func VarIntLen(x int32) int {
	v := uint32(x)
	n := 1
	for v&^segmentBits != 0 {
		v >>= 7
		n++
	}
	return n
}

func appendVarNumber(b []byte, v uint64) []byte {
	for v&^segmentBits != 0 {
		b = append(b, byte(v&segmentBits)|continueBit)
		v >>= 7
	}
	return append(b, byte(v))
}

// readVarNumber accumulates groups until a terminator is read. It fails with ErrVarNumberTooBig
// as soon as the bit position reaches width, which bounds the read to width/7+1 bytes.
func readVarNumber(r io.ByteReader, width uint) (uint64, error) {
	var (
		value    uint64
		position uint
	)
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, ErrPrematureEndOfVarNumber
			}
			return 0, errors.Wrap(err, "read var number")
		}
		value |= uint64(b&segmentBits) << position
		if b&continueBit == 0 {
			return value, nil
		}

		position += 7
		if position >= width {
			return 0, ErrVarNumberTooBig
		}
	}
}
