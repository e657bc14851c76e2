package packet

import "github.com/Virinas-code/atmospheremc-void/protocol"

// Intents a client may announce in a Handshake.
const (
	IntentStatus   int32 = 1
	IntentLogin    int32 = 2
	IntentTransfer int32 = 3
)

// Handshake is the first packet a client sends. It announces the protocol version the client
// speaks and the state it wants the connection to move to.
type Handshake struct {
	// ProtocolVersion is the protocol version of the client.
	ProtocolVersion int32
	// ServerAddress is the host name or address the client used to connect.
	ServerAddress string
	// ServerPort is the port the client used to connect.
	ServerPort uint16
	// NextState is one of IntentStatus, IntentLogin or IntentTransfer.
	NextState int32
}

// ID ...
func (pk *Handshake) ID() int32 {
	return IDHandshake
}

// Marshal ...
func (pk *Handshake) Marshal(io protocol.IO) {
	io.Varint32(&pk.ProtocolVersion)
	io.String(&pk.ServerAddress)
	io.Uint16(&pk.ServerPort)
	io.Enum(&pk.NextState, "Intent", IntentStatus, IntentLogin, IntentTransfer)
}

// State returns the state the connection moves to once the handshake is handled. A transfer
// continues straight into the play state.
func (pk *Handshake) State() State {
	switch pk.NextState {
	case IntentStatus:
		return StateStatus
	case IntentLogin:
		return StateLogin
	case IntentTransfer:
		return StatePlay
	}
	return StateClosed
}
