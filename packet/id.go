package packet

// Serverbound packets of the handshake state.
const (
	IDHandshake int32 = 0x00
)

// Serverbound packets of the status state.
const (
	IDStatusRequest int32 = 0x00
	IDPingRequest   int32 = 0x01
)

// Clientbound packets of the status state.
const (
	IDStatusResponse int32 = 0x00
	IDPingResponse   int32 = 0x01
)

// Serverbound packets of the login state.
const (
	IDLoginStart int32 = 0x00
)

// Clientbound packets of the login state.
const (
	IDLoginDisconnect int32 = 0x00
	IDLoginSuccess    int32 = 0x02
)
