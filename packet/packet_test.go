package packet

import (
	"bytes"
	"testing"

	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encode returns the frame payload of pk: its id followed by its body.
func encode(t *testing.T, pk Packet) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := protocol.NewPacketWriter(&buf)
	id := pk.ID()
	w.Varint32(&id)
	pk.Marshal(w)
	require.NoError(t, w.Err())
	return buf.Bytes()
}

func TestParseHandshake(t *testing.T) {
	tests := []struct {
		nextState int32
		want      State
	}{
		{IntentStatus, StateStatus},
		{IntentLogin, StateLogin},
		{IntentTransfer, StatePlay},
	}

	for _, tt := range tests {
		in := &Handshake{ProtocolVersion: 768, ServerAddress: "localhost", ServerPort: 25565, NextState: tt.nextState}
		pk, err := Parse(StateHandshake, encode(t, in))
		require.NoError(t, err)

		handshake, ok := pk.(*Handshake)
		require.True(t, ok)
		assert.Equal(t, in, handshake)
		assert.Equal(t, tt.want, handshake.State())
	}
}

func TestParseHandshakeInvalidIntent(t *testing.T) {
	in := &Handshake{ProtocolVersion: 768, ServerAddress: "localhost", ServerPort: 25565, NextState: 99}
	_, err := Parse(StateHandshake, encode(t, in))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, IDHandshake, parseErr.ID)
	assert.Equal(t, StateHandshake, parseErr.State)

	var enumErr *protocol.InvalidEnumVariantError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, int32(99), enumErr.Variant)
}

func TestParseHandshakeBytes(t *testing.T) {
	// id, protocol 768, "localhost", port 25565, status
	payload := []byte{
		0x00,
		0x80, 0x06,
		0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
		0x63, 0xdd,
		0x01,
	}
	pk, err := Parse(StateHandshake, payload)
	require.NoError(t, err)
	assert.Equal(t, &Handshake{ProtocolVersion: 768, ServerAddress: "localhost", ServerPort: 25565, NextState: IntentStatus}, pk)
}

func TestParseStatus(t *testing.T) {
	pk, err := Parse(StateStatus, []byte{0x00})
	require.NoError(t, err)
	assert.IsType(t, &StatusRequest{}, pk)

	pk, err = Parse(StateStatus, encode(t, &PingRequest{Time: 42}))
	require.NoError(t, err)
	assert.Equal(t, &PingRequest{Time: 42}, pk)

	_, err = Parse(StateStatus, []byte{0x01, 0x00, 0x00})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, protocol.ErrPrematureEnd)
}

func TestParseLoginStart(t *testing.T) {
	in := &LoginStart{Name: "thinkofdeath", UUID: uuid.MustParse("4566e69f-c907-48ee-8d71-d7ba5aa00d20")}
	pk, err := Parse(StateLogin, encode(t, in))
	require.NoError(t, err)
	assert.Equal(t, in, pk)
}

func TestParseUnknownPacket(t *testing.T) {
	tests := []struct {
		state State
		id    int32
	}{
		{StateHandshake, 0x01},
		{StateStatus, 0x05},
		{StateLogin, 0x02},
		{StatePlay, 0x00},
	}

	for _, tt := range tests {
		_, err := Parse(tt.state, protocol.AppendVarInt(nil, tt.id))

		var unknown *UnknownPacketError
		require.ErrorAs(t, err, &unknown, "%s 0x%02X", tt.state, tt.id)
		assert.Equal(t, tt.id, unknown.ID)
		assert.Equal(t, tt.state, unknown.State)
	}

	_, err := Parse(StateStatus, []byte{0x05, 0xff})
	assert.EqualError(t, err, "unknown packet: 0x05 in Status")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(StateClosed, []byte{0x00})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = Parse(StateStatus, nil)
	assert.ErrorIs(t, err, protocol.ErrPrematureEndOfVarNumber)
}

func TestClientboundEncoding(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 42}, encode(t, &PingResponse{Time: 42}))
	assert.Equal(t, []byte{0x00, 0x02, '{', '}'}, encode(t, &StatusResponse{Response: "{}"}))

	disconnect := NewLoginDisconnect("Login is not supported")
	assert.Equal(t, `{"text":"Login is not supported"}`, disconnect.Reason)

	id := uuid.MustParse("4566e69f-c907-48ee-8d71-d7ba5aa00d20")
	data := encode(t, &LoginSuccess{UUID: id, Username: "thinkofdeath"})
	assert.Equal(t, byte(IDLoginSuccess), data[0])
	assert.Equal(t, id[:], data[1:17])

	var out LoginSuccess
	r := protocol.NewPacketReader(data[1:])
	out.Marshal(r)
	require.NoError(t, r.Err())
	assert.Equal(t, "thinkofdeath", out.Username)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Handshake", StateHandshake.String())
	assert.Equal(t, "Closed", StateClosed.String())
	assert.Equal(t, "Unknown", State(42).String())
}
