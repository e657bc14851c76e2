package packet

import "github.com/Virinas-code/atmospheremc-void/protocol"

// Packet is a single packet of the handshake, status or login phase. A packet lists its fields
// once, in wire order, in Marshal: the same method decodes a serverbound packet from a frame and
// encodes a clientbound packet into one.
type Packet interface {
	// ID returns the packet id, unique within the packet's state and direction.
	ID() int32
	// Marshal reads the packet's fields from, or writes them to, io.
	Marshal(io protocol.IO)
}
