package protocol

import (
	"io"
	"math"

	"github.com/Virinas-code/atmospheremc-void/internal"
	"github.com/go-faster/errors"
)

// Writer writes VarInt length prefixed frames to a connection.
type Writer struct {
	w io.Writer
}

// NewWriter ...
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write prefixes data with its length and writes the frame with a single call to the underlying
// writer.
func (w *Writer) Write(data []byte) (err error) {
	if len(data) > math.MaxInt32 {
		return errors.Wrapf(ErrIntConversion, "frame length %d", len(data))
	}

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	buf.Grow(MaxVarIntLen + len(data))
	buf.Write(AppendVarInt(buf.AvailableBuffer(), int32(len(data))))
	buf.Write(data)
	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return
}
