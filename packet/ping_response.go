package packet

import "github.com/Virinas-code/atmospheremc-void/protocol"

// PingResponse echoes the Time of a PingRequest.
type PingResponse struct {
	Time int64
}

// ID ...
func (pk *PingResponse) ID() int32 {
	return IDPingResponse
}

// Marshal ...
func (pk *PingResponse) Marshal(io protocol.IO) {
	io.Int64(&pk.Time)
}
