package packet

import "github.com/Virinas-code/atmospheremc-void/protocol"

// StatusRequest asks the server for its status document. It has no fields.
type StatusRequest struct{}

// ID ...
func (pk *StatusRequest) ID() int32 {
	return IDStatusRequest
}

// Marshal ...
func (pk *StatusRequest) Marshal(protocol.IO) {}
