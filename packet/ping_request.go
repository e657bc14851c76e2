package packet

import "github.com/Virinas-code/atmospheremc-void/protocol"

// PingRequest is sent by a client after the status response to measure latency.
type PingRequest struct {
	// Time is an opaque value, usually a timestamp in milliseconds, echoed back by the server.
	Time int64
}

// ID ...
func (pk *PingRequest) ID() int32 {
	return IDPingRequest
}

// Marshal ...
func (pk *PingRequest) Marshal(io protocol.IO) {
	io.Int64(&pk.Time)
}
