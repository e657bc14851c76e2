package protocol

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write([]byte{0x00, 0x01, 0x02}))
	require.NoError(t, w.Write(bytes.Repeat([]byte{0xaa}, 300)))
	require.NoError(t, w.Write(nil))

	assert.Equal(t, []byte{0x03, 0x00, 0x01, 0x02}, buf.Bytes()[:4])
	assert.Equal(t, []byte{0xac, 0x02}, buf.Bytes()[4:6])

	r := NewReader(&buf, 0)
	frame, err := r.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, frame)

	frame, err = r.ReadPacket()
	require.NoError(t, err)
	assert.Len(t, frame, 300)

	frame, err = r.ReadPacket()
	require.NoError(t, err)
	assert.NotNil(t, frame)
	assert.Empty(t, frame)

	_, err = r.ReadPacket()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderRejectsLengths(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}), 0)
	_, err := r.ReadLength()
	assert.ErrorIs(t, err, ErrIntConversion)

	r = NewReader(bytes.NewReader([]byte{0x0b}), 10)
	_, err = r.ReadLength()
	assert.ErrorIs(t, err, ErrFrameTooLarge)

	r = NewReader(bytes.NewReader(AppendVarInt(nil, DefaultMaxFrameLength+1)), 0)
	_, err = r.ReadLength()
	assert.ErrorIs(t, err, ErrFrameTooLarge)

	r = NewReader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff}), 0)
	_, err = r.ReadLength()
	assert.ErrorIs(t, err, ErrVarNumberTooBig)
}

func TestReaderTruncatedFrame(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x05, 0x01, 0x02}), 0)
	_, err := r.ReadPacket()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	r = NewReader(bytes.NewReader([]byte{0x80}), 0)
	_, err = r.ReadLength()
	assert.ErrorIs(t, err, ErrPrematureEndOfVarNumber)
}
