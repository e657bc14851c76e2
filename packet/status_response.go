package packet

import "github.com/Virinas-code/atmospheremc-void/protocol"

// StatusResponse carries the server's status as a JSON document.
type StatusResponse struct {
	Response string
}

// ID ...
func (pk *StatusResponse) ID() int32 {
	return IDStatusResponse
}

// Marshal ...
func (pk *StatusResponse) Marshal(io protocol.IO) {
	io.String(&pk.Response)
}
