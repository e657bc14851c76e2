package packet

import (
	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/go-faster/errors"
)

// Parse decodes the packet held by a frame payload received in state. The payload starts with the
// packet id as a VarInt; an id unknown to state fails with an *UnknownPacketError before anything
// else is decoded.
func Parse(state State, payload []byte) (Packet, error) {
	if state == StateClosed {
		return nil, ErrClosed
	}

	r := protocol.NewPacketReader(payload)
	var id int32
	r.Varint32(&id)
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "decode packet id")
	}

	pk := serverbound(state, id)
	if pk == nil {
		return nil, &UnknownPacketError{ID: id, State: state}
	}

	pk.Marshal(r)
	if err := r.Err(); err != nil {
		return nil, &ParseError{ID: id, State: state, Err: err}
	}
	return pk, nil
}

// serverbound returns an empty packet for id in state, or nil if state has no such packet.
func serverbound(state State, id int32) Packet {
	switch state {
	case StateHandshake:
		switch id {
		case IDHandshake:
			return &Handshake{}
		}
	case StateStatus:
		switch id {
		case IDStatusRequest:
			return &StatusRequest{}
		case IDPingRequest:
			return &PingRequest{}
		}
	case StateLogin:
		switch id {
		case IDLoginStart:
			return &LoginStart{}
		}
	}
	return nil
}
