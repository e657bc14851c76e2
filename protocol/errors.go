package protocol

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Decode errors. Every data type returns one of these (possibly wrapped) when the source holds
// fewer bytes than the type needs or the bytes do not form a valid value.
var (
	// ErrPrematureEndOfVarNumber is returned when the source runs out in the middle of a VarInt
	// or VarLong.
	ErrPrematureEndOfVarNumber = errors.New("var number ended prematurely")
	// ErrVarNumberTooBig is returned when a VarInt or VarLong keeps its continuation bit set past
	// the width of the value it encodes.
	ErrVarNumberTooBig = errors.New("var number too big")
	// ErrPrematureEnd is returned when the source runs out while reading a fixed length value.
	ErrPrematureEnd = errors.New("premature end of stream while reading a fixed length data type")
	// ErrInvalidUTF8 is returned when a string field does not hold valid UTF-8.
	ErrInvalidUTF8 = errors.New("string is not valid utf-8")
	// ErrStringTooLong is returned when a string length prefix exceeds MaxStringLength.
	ErrStringTooLong = errors.New("string length exceeds maximum")
	// ErrIntConversion is returned when an integer does not fit the type it is converted to, such
	// as a negative string length or a payload longer than a VarInt can describe.
	ErrIntConversion = errors.New("integer conversion failed")
)

// InvalidEnumVariantError is returned when a VarInt restricted to a set of values holds a value
// outside of that set.
type InvalidEnumVariantError struct {
	// Variant is the value that was read.
	Variant int32
	// Enumeration is the name of the enumeration the value was read for.
	Enumeration string
}

// Error ...
func (e *InvalidEnumVariantError) Error() string {
	return fmt.Sprintf("invalid varint enum variant: %d for %s", e.Variant, e.Enumeration)
}
