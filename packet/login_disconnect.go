package packet

import (
	"encoding/json"

	"github.com/Virinas-code/atmospheremc-void/protocol"
)

// LoginDisconnect closes a connection during the login phase.
type LoginDisconnect struct {
	// Reason is a JSON text component shown to the player.
	Reason string
}

// NewLoginDisconnect returns a LoginDisconnect whose reason is the plain text message.
func NewLoginDisconnect(message string) *LoginDisconnect {
	reason, _ := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: message})
	return &LoginDisconnect{Reason: string(reason)}
}

// ID ...
func (pk *LoginDisconnect) ID() int32 {
	return IDLoginDisconnect
}

// Marshal ...
func (pk *LoginDisconnect) Marshal(io protocol.IO) {
	io.String(&pk.Reason)
}
