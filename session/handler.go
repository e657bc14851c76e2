package session

import (
	"github.com/Virinas-code/atmospheremc-void/packet"
	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/Virinas-code/atmospheremc-void/util"
	"github.com/sandertv/gophertunnel/minecraft"
)

const loginUnsupported = "Login is not supported"

// handle acts on a packet received in state and returns the state to move to.
func (c *Conn) handle(state packet.State, pk packet.Packet) packet.State {
	switch pk := pk.(type) {
	case *packet.Handshake:
		return c.handleHandshake(pk)
	case *packet.StatusRequest:
		c.handleStatusRequest()
		return state
	case *packet.PingRequest:
		c.send(&packet.PingResponse{Time: pk.Time})
		return packet.StateClosed
	case *packet.LoginStart:
		c.logger.Info("login attempt", "username", pk.Name, "uuid", pk.UUID)
		c.send(packet.NewLoginDisconnect(loginUnsupported))
		return packet.StateClosed
	}

	c.logger.Warn("unhandled packet", "id", pk.ID(), "state", state)
	return state
}

func (c *Conn) handleHandshake(pk *packet.Handshake) packet.State {
	if !c.accepted.Has(pk.ProtocolVersion) {
		c.logger.Warn("unsupported protocol version", "protocol", pk.ProtocolVersion, "expected", c.opts.ProtocolVersion)
	}
	next := pk.State()
	c.logger.Info("handshake", "protocol", pk.ProtocolVersion, "host", pk.ServerAddress, "port", pk.ServerPort, "next", next)
	return next
}

func (c *Conn) handleStatusRequest() {
	response, err := util.NewStatus(c.opts, c.serverStatus(), c.favicon).JSON()
	if err != nil {
		c.logger.Warn("failed to build status", "err", err)
		return
	}
	c.send(&packet.StatusResponse{Response: response})
}

func (c *Conn) handleLegacyPing() {
	c.metrics.legacyPing()

	status := c.serverStatus()
	err := protocol.WriteLegacyKick(c.conn, protocol.LegacyKick{
		Protocol:    c.opts.ProtocolVersion,
		Version:     c.opts.VersionName,
		Description: status.ServerName,
		Online:      status.PlayerCount,
		Max:         status.MaxPlayers,
	})
	if err != nil {
		c.logger.Warn("failed to write legacy kick", "err", err)
		return
	}
	c.logger.Debug("answered legacy ping")
}

func (c *Conn) serverStatus() minecraft.ServerStatus {
	return c.status.ServerStatus(c.opts.OnlinePlayers, c.opts.MaxPlayers)
}
