package protocol

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	// LegacyPingLength is the length prefix a legacy ping appears to carry: its first two bytes,
	// 0xFE 0x01, read as a VarInt.
	LegacyPingLength = 0xFE&segmentBits | 0x01<<7

	legacyPingChannel = "MC|PingHost"
	legacyKickID      = 0xFF
	legacyPluginID    = 0xFA
)

// legacyPingMagic is the 25 bytes following 0xFE 0x01 in a legacy ping: the plugin message id,
// the channel name length in UTF-16 code units and the channel name in UTF-16BE.
var legacyPingMagic = func() []byte {
	channel, err := utf16BE().Bytes([]byte(legacyPingChannel))
	if err != nil {
		panic(err)
	}
	magic := []byte{legacyPluginID}
	magic = binary.BigEndian.AppendUint16(magic, uint16(len(legacyPingChannel)))
	return append(magic, channel...)
}()

// ReadLegacyPing checks whether the bytes following a LegacyPingLength prefix form a legacy ping.
// If they do, the ping and its trailing payload are consumed and true is returned. Otherwise
// nothing is consumed.
func (r *Reader) ReadLegacyPing() (bool, error) {
	magic, err := r.r.Peek(len(legacyPingMagic))
	if err != nil {
		return false, errors.Wrap(err, "peek legacy ping")
	}

	if !bytes.Equal(magic, legacyPingMagic) {
		return false, nil
	}

	_, _ = r.r.Discard(len(legacyPingMagic))
	var length UnsignedShort
	if err := length.Decode(r.r); err != nil {
		return true, err
	}

	if _, err := r.r.Discard(int(length.Value())); err != nil {
		return true, fixedReadError(err)
	}
	return true, nil
}

// LegacyKick is the response to a legacy ping.
type LegacyKick struct {
	Protocol    int32
	Version     string
	Description string
	Online      int
	Max         int
}

// String returns the text carried by the kick: a §1 marker followed by the NUL separated fields.
func (k LegacyKick) String() string {
	return strings.Join([]string{
		"§1",
		strconv.Itoa(int(k.Protocol)),
		k.Version,
		k.Description,
		strconv.Itoa(k.Online),
		strconv.Itoa(k.Max),
	}, "\x00")
}

// WriteLegacyKick writes k to w: 0xFF, the text length in UTF-16 code units and the text in
// UTF-16BE.
func WriteLegacyKick(w io.Writer, k LegacyKick) error {
	text, err := utf16BE().Bytes([]byte(k.String()))
	if err != nil {
		return errors.Wrap(err, "encode legacy kick")
	}

	units := len(text) / 2
	if units > math.MaxUint16 {
		return errors.Wrapf(ErrIntConversion, "legacy kick of %d code units", units)
	}

	data := make([]byte, 0, 3+len(text))
	data = append(data, legacyKickID)
	data = binary.BigEndian.AppendUint16(data, uint16(units))
	data = append(data, text...)
	_, err = w.Write(data)
	return err
}

func utf16BE() *encoding.Encoder {
	return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
}
