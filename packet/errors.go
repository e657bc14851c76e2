package packet

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrClosed is returned when a frame is parsed for a connection that reached StateClosed.
var ErrClosed = errors.New("connection is closed")

// UnknownPacketError is returned when a packet id does not belong to any packet of the state it
// was received in.
type UnknownPacketError struct {
	ID    int32
	State State
}

// Error ...
func (e *UnknownPacketError) Error() string {
	return fmt.Sprintf("unknown packet: 0x%02X in %s", e.ID, e.State)
}

// ParseError is returned when the body of a known packet fails to decode. Err is the decode error
// from the protocol package.
type ParseError struct {
	ID    int32
	State State
	Err   error
}

// Error ...
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse packet 0x%02X in %s: %v", e.ID, e.State, e.Err)
}

// Unwrap ...
func (e *ParseError) Unwrap() error {
	return e.Err
}
