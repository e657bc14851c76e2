package packet

import (
	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/google/uuid"
)

// LoginStart opens the login phase.
type LoginStart struct {
	// Name is the player's user name.
	Name string
	// UUID is the player's UUID as known to the client.
	UUID uuid.UUID
}

// ID ...
func (pk *LoginStart) ID() int32 {
	return IDLoginStart
}

// Marshal ...
func (pk *LoginStart) Marshal(io protocol.IO) {
	io.String(&pk.Name)
	io.UUID(&pk.UUID)
}
