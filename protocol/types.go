package protocol

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// MaxStringLength is the maximum number of bytes a VarString may hold: 32767 UTF-16 code units of
// at most three UTF-8 bytes each.
const MaxStringLength = 32767 * 3

// Source is the byte source every data type decodes from. Both a buffered connection and an
// in-memory buffer (bytes.Reader, bufio.Reader) satisfy it.
type Source interface {
	io.Reader
	io.ByteReader
}

// Sink is the byte sink every data type encodes to.
type Sink = io.Writer

// DataType is implemented by every wire-representable value. T is the natural Go value the data
// type wraps. Decoding is done through a pointer, see Decodable.
type DataType[T any] interface {
	// Value returns the natural value.
	Value() T
	// Encode writes the wire representation to w.
	Encode(w Sink) error
}

// Decodable is a pointer to a DataType that can be decoded in place.
type Decodable[T any, D any] interface {
	*D
	DataType[T]
	// Decode reads the wire representation from r.
	Decode(r Source) error
}

// Decode decodes a D from r and returns its natural value.
func Decode[T any, D any, P Decodable[T, D]](r Source) (T, error) {
	var d D
	err := P(&d).Decode(r)
	return P(&d).Value(), err
}

// VarInt is a variable length int32.
type VarInt int32

// NewVarInt ...
func NewVarInt(v int32) VarInt { return VarInt(v) }

// Value ...
func (v VarInt) Value() int32 { return int32(v) }

// Decode ...
func (v *VarInt) Decode(r Source) error {
	x, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	*v = VarInt(x)
	return nil
}

// Encode ...
func (v VarInt) Encode(w Sink) error {
	return WriteVarInt(w, int32(v))
}

// VarLong is a variable length int64.
type VarLong int64

// NewVarLong ...
func NewVarLong(v int64) VarLong { return VarLong(v) }

// Value ...
func (v VarLong) Value() int64 { return int64(v) }

// Decode ...
func (v *VarLong) Decode(r Source) error {
	x, err := ReadVarLong(r)
	if err != nil {
		return err
	}
	*v = VarLong(x)
	return nil
}

// Encode ...
func (v VarLong) Encode(w Sink) error {
	return WriteVarLong(w, int64(v))
}

// VarString is UTF-8 text prefixed with its byte length as a VarInt.
type VarString string

// NewVarString ...
func NewVarString(v string) VarString { return VarString(v) }

// Value ...
func (s VarString) Value() string { return string(s) }

// Decode reads the length prefix and exactly that many bytes. The length is checked against
// MaxStringLength and, for sources that report it, against the number of unread bytes before
// anything is allocated.
func (s *VarString) Decode(r Source) error {
	length, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if length < 0 {
		return errors.Wrapf(ErrIntConversion, "string length %d", length)
	}
	if length > MaxStringLength {
		return errors.Wrapf(ErrStringTooLong, "string length %d", length)
	}
	if l, ok := r.(interface{ Len() int }); ok && int(length) > l.Len() {
		return errors.Wrapf(ErrPrematureEnd, "string length %d with %d bytes remaining", length, l.Len())
	}

	data := make([]byte, length)
	if err := readFull(r, data); err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}
	*s = VarString(data)
	return nil
}

// Encode ...
func (s VarString) Encode(w Sink) error {
	if len(s) > math.MaxInt32 {
		return errors.Wrapf(ErrIntConversion, "string length %d", len(s))
	}
	if err := WriteVarInt(w, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, string(s))
	return err
}

// UnsignedByte is a big endian uint8.
type UnsignedByte uint8

// NewUnsignedByte ...
func NewUnsignedByte(v uint8) UnsignedByte { return UnsignedByte(v) }

// Value ...
func (b UnsignedByte) Value() uint8 { return uint8(b) }

// Decode ...
func (b *UnsignedByte) Decode(r Source) error {
	x, err := r.ReadByte()
	if err != nil {
		return fixedReadError(err)
	}
	*b = UnsignedByte(x)
	return nil
}

// Encode ...
func (b UnsignedByte) Encode(w Sink) error {
	_, err := w.Write([]byte{byte(b)})
	return err
}

// UnsignedShort is a big endian uint16.
type UnsignedShort uint16

// NewUnsignedShort ...
func NewUnsignedShort(v uint16) UnsignedShort { return UnsignedShort(v) }

// Value ...
func (s UnsignedShort) Value() uint16 { return uint16(s) }

// Decode ...
func (s *UnsignedShort) Decode(r Source) error {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*s = UnsignedShort(binary.BigEndian.Uint16(buf[:]))
	return nil
}

// Encode ...
func (s UnsignedShort) Encode(w Sink) error {
	_, err := w.Write(binary.BigEndian.AppendUint16(nil, uint16(s)))
	return err
}

// Long is a big endian int64.
type Long int64

// NewLong ...
func NewLong(v int64) Long { return Long(v) }

// Value ...
func (l Long) Value() int64 { return int64(l) }

// Decode ...
func (l *Long) Decode(r Source) error {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*l = Long(binary.BigEndian.Uint64(buf[:]))
	return nil
}

// Encode ...
func (l Long) Encode(w Sink) error {
	_, err := w.Write(binary.BigEndian.AppendUint64(nil, uint64(l)))
	return err
}

// UUID is a 128-bit value sent as 16 raw bytes, most significant first, without a length prefix.
type UUID uuid.UUID

// NewUUID ...
func NewUUID(v uuid.UUID) UUID { return UUID(v) }

// Value ...
func (u UUID) Value() uuid.UUID { return uuid.UUID(u) }

// Decode ...
func (u *UUID) Decode(r Source) error {
	return readFull(r, u[:])
}

// Encode ...
func (u UUID) Encode(w Sink) error {
	_, err := w.Write(u[:])
	return err
}

// readFull fills buf from r, reporting a short read as ErrPrematureEnd.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return fixedReadError(err)
	}
	return nil
}

func fixedReadError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrPrematureEnd
	}
	return errors.Wrap(err, "read fixed length data")
}
