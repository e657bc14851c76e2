package protocol

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fields struct {
	b    uint8
	port uint16
	time int64
	n    int32
	l    int64
	s    string
	id   uuid.UUID
	kind int32
}

func (f *fields) marshal(io IO) {
	io.Uint8(&f.b)
	io.Uint16(&f.port)
	io.Int64(&f.time)
	io.Varint32(&f.n)
	io.Varint64(&f.l)
	io.String(&f.s)
	io.UUID(&f.id)
	io.Enum(&f.kind, "Kind", 1, 2)
}

func TestPacketReaderWriter(t *testing.T) {
	in := fields{
		b:    7,
		port: 25565,
		time: 42,
		n:    -1,
		l:    1 << 40,
		s:    "localhost",
		id:   uuid.MustParse("4566e69f-c907-48ee-8d71-d7ba5aa00d20"),
		kind: 2,
	}

	var buf bytes.Buffer
	w := NewPacketWriter(&buf)
	in.marshal(w)
	require.NoError(t, w.Err())

	var out fields
	r := NewPacketReader(buf.Bytes())
	out.marshal(r)
	require.NoError(t, r.Err())
	assert.Equal(t, in, out)
	assert.Zero(t, r.Remaining())
}

func TestPacketReaderInvalidEnum(t *testing.T) {
	var buf bytes.Buffer
	w := NewPacketWriter(&buf)
	kind := int32(99)
	w.Enum(&kind, "Kind", 1, 2)
	require.NoError(t, w.Err(), "the writer does not check enum values")

	var got int32
	r := NewPacketReader(buf.Bytes())
	r.Enum(&got, "Kind", 1, 2)

	var enumErr *InvalidEnumVariantError
	require.ErrorAs(t, r.Err(), &enumErr)
	assert.Equal(t, int32(99), enumErr.Variant)
	assert.Equal(t, "Kind", enumErr.Enumeration)
	assert.Equal(t, "invalid varint enum variant: 99 for Kind", enumErr.Error())
	assert.Zero(t, got)
}

func TestPacketReaderStopsAtFirstError(t *testing.T) {
	r := NewPacketReader([]byte{0x05, 'a'})

	var (
		s string
		n int32
	)
	r.String(&s)
	r.Varint32(&n)
	assert.ErrorIs(t, r.Err(), ErrPrematureEnd)
	assert.Empty(t, s)
	assert.Zero(t, n)
}
