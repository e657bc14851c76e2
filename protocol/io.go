package protocol

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// IO is implemented by both PacketReader and PacketWriter. A packet lists its fields once, in wire
// order, in a Marshal(io IO) method, and the same method is used to decode and to encode it.
//
// Neither implementation returns errors per field: the first error is kept and every following
// field is skipped. Err reports it once the packet has been marshalled.
type IO interface {
	Uint8(x *uint8)
	Uint16(x *uint16)
	Int64(x *int64)
	Varint32(x *int32)
	Varint64(x *int64)
	String(x *string)
	UUID(x *uuid.UUID)
	// Enum is a Varint32 restricted to the values passed. Reading any other value fails with an
	// *InvalidEnumVariantError naming enumeration.
	Enum(x *int32, enumeration string, values ...int32)
	// Err returns the first error met.
	Err() error
}

// PacketReader decodes fields from a packet payload.
type PacketReader struct {
	r   *bytes.Reader
	err error
}

// NewPacketReader returns a PacketReader reading from payload.
func NewPacketReader(payload []byte) *PacketReader {
	return &PacketReader{r: bytes.NewReader(payload)}
}

// Remaining returns the number of bytes not consumed yet.
func (r *PacketReader) Remaining() int {
	return r.r.Len()
}

// Uint8 ...
func (r *PacketReader) Uint8(x *uint8) {
	var v UnsignedByte
	if r.decode(&v) {
		*x = v.Value()
	}
}

// Uint16 ...
func (r *PacketReader) Uint16(x *uint16) {
	var v UnsignedShort
	if r.decode(&v) {
		*x = v.Value()
	}
}

// Int64 ...
func (r *PacketReader) Int64(x *int64) {
	var v Long
	if r.decode(&v) {
		*x = v.Value()
	}
}

// Varint32 ...
func (r *PacketReader) Varint32(x *int32) {
	var v VarInt
	if r.decode(&v) {
		*x = v.Value()
	}
}

// Varint64 ...
func (r *PacketReader) Varint64(x *int64) {
	var v VarLong
	if r.decode(&v) {
		*x = v.Value()
	}
}

// String ...
func (r *PacketReader) String(x *string) {
	var v VarString
	if r.decode(&v) {
		*x = v.Value()
	}
}

// UUID ...
func (r *PacketReader) UUID(x *uuid.UUID) {
	var v UUID
	if r.decode(&v) {
		*x = v.Value()
	}
}

// Enum ...
func (r *PacketReader) Enum(x *int32, enumeration string, values ...int32) {
	var v VarInt
	if !r.decode(&v) {
		return
	}
	if !slices.Contains(values, v.Value()) {
		r.err = &InvalidEnumVariantError{Variant: v.Value(), Enumeration: enumeration}
		return
	}
	*x = v.Value()
}

// Err ...
func (r *PacketReader) Err() error {
	return r.err
}

func (r *PacketReader) decode(d interface{ Decode(Source) error }) bool {
	if r.err != nil {
		return false
	}
	r.err = d.Decode(r.r)
	return r.err == nil
}

// PacketWriter encodes fields to a sink.
type PacketWriter struct {
	w   Sink
	err error
}

// NewPacketWriter returns a PacketWriter writing to w.
func NewPacketWriter(w Sink) *PacketWriter {
	return &PacketWriter{w: w}
}

// Uint8 ...
func (w *PacketWriter) Uint8(x *uint8) { w.encode(NewUnsignedByte(*x)) }

// Uint16 ...
func (w *PacketWriter) Uint16(x *uint16) { w.encode(NewUnsignedShort(*x)) }

// Int64 ...
func (w *PacketWriter) Int64(x *int64) { w.encode(NewLong(*x)) }

// Varint32 ...
func (w *PacketWriter) Varint32(x *int32) { w.encode(NewVarInt(*x)) }

// Varint64 ...
func (w *PacketWriter) Varint64(x *int64) { w.encode(NewVarLong(*x)) }

// String ...
func (w *PacketWriter) String(x *string) { w.encode(NewVarString(*x)) }

// UUID ...
func (w *PacketWriter) UUID(x *uuid.UUID) { w.encode(NewUUID(*x)) }

// Enum writes x as a Varint32. The value is not checked against values.
func (w *PacketWriter) Enum(x *int32, _ string, _ ...int32) { w.encode(NewVarInt(*x)) }

// Err ...
func (w *PacketWriter) Err() error {
	return w.err
}

func (w *PacketWriter) encode(e interface{ Encode(Sink) error }) {
	if w.err != nil {
		return
	}
	w.err = e.Encode(w.w)
}
