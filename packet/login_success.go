package packet

import (
	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/google/uuid"
)

// LoginSuccess completes the login phase. Nothing sends it yet: authentication is left to the
// component that will own the login phase.
type LoginSuccess struct {
	UUID     uuid.UUID
	Username string
}

// ID ...
func (pk *LoginSuccess) ID() int32 {
	return IDLoginSuccess
}

// Marshal ...
func (pk *LoginSuccess) Marshal(io protocol.IO) {
	io.UUID(&pk.UUID)
	io.String(&pk.Username)
}
