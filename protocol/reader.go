package protocol

import (
	"bufio"
	"io"

	"github.com/go-faster/errors"
)

// DefaultMaxFrameLength is the largest length a three byte VarInt prefix can describe.
const DefaultMaxFrameLength = 1<<21 - 1

// ErrFrameTooLarge is returned when a frame length prefix exceeds the reader's limit.
var ErrFrameTooLarge = errors.New("frame length exceeds maximum")

// Reader reads VarInt length prefixed frames from a connection. The length prefix is read byte by
// byte from the buffered connection, since nothing bounds it in advance.
type Reader struct {
	r              *bufio.Reader
	maxFrameLength int32
}

// NewReader creates a Reader on top of r. A maxFrameLength of zero or less selects
// DefaultMaxFrameLength.
func NewReader(r io.Reader, maxFrameLength int32) *Reader {
	if maxFrameLength <= 0 {
		maxFrameLength = DefaultMaxFrameLength
	}
	return &Reader{
		r:              bufio.NewReader(r),
		maxFrameLength: maxFrameLength,
	}
}

// ReadLength reads the length prefix of the next frame. It returns io.EOF if the connection was
// closed before the first byte of the prefix.
func (r *Reader) ReadLength() (int32, error) {
	if _, err := r.r.Peek(1); err != nil {
		return 0, err
	}

	length, err := ReadVarInt(r.r)
	if err != nil {
		return 0, err
	}

	if length < 0 {
		return 0, errors.Wrapf(ErrIntConversion, "frame length %d", length)
	}

	if length > r.maxFrameLength {
		return 0, errors.Wrapf(ErrFrameTooLarge, "frame length %d, maximum %d", length, r.maxFrameLength)
	}
	return length, nil
}

// ReadFrame reads exactly length bytes of frame payload.
func (r *Reader) ReadFrame(length int32) ([]byte, error) {
	payload := make([]byte, length)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, errors.Wrapf(err, "read frame of %d bytes", length)
	}
	return payload, nil
}

// ReadPacket reads a length prefix followed by the frame it describes. A zero length frame is
// returned as an empty, non-nil slice.
func (r *Reader) ReadPacket() ([]byte, error) {
	length, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	return r.ReadFrame(length)
}
