package session

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/Virinas-code/atmospheremc-void/internal"
	"github.com/Virinas-code/atmospheremc-void/packet"
	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/Virinas-code/atmospheremc-void/util"
	"github.com/go-faster/errors"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/scylladb/go-set/i32set"
)

// Conn is a client connection. It reads frames, dispatches them to the packets of the current
// state and writes the responses.
type Conn struct {
	conn net.Conn

	reader *protocol.Reader

	writer  *protocol.Writer
	writeMu sync.Mutex

	opts     util.Opts
	accepted *i32set.Set
	status   minecraft.ServerStatusProvider
	favicon  string

	logger  *slog.Logger
	metrics *Metrics
	once    sync.Once
}

// NewConn creates a new Conn serving conn. favicon is the data URI placed in status responses and
// may be empty. metrics may be nil.
func NewConn(conn net.Conn, logger *slog.Logger, opts util.Opts, status minecraft.ServerStatusProvider, favicon string, metrics *Metrics) *Conn {
	return &Conn{
		conn: conn,

		reader: protocol.NewReader(conn, opts.MaxFrameLength),
		writer: protocol.NewWriter(conn),

		opts:     opts,
		accepted: opts.Accepted(),
		status:   status,
		favicon:  favicon,

		logger:  logger.With("addr", conn.RemoteAddr().String()),
		metrics: metrics,
	}
}

// Serve reads frames until the connection reaches packet.StateClosed, the client disconnects or a
// read fails. The connection is closed once Serve returns.
func (c *Conn) Serve() {
	c.metrics.opened()
	defer c.Close()

	state := packet.StateHandshake
	for state != packet.StateClosed {
		next, err := c.readNext(state)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
				c.logger.Debug("connection closed by client", "state", state)
			case isTimeout(err):
				c.logger.Debug("connection timed out", "state", state)
			default:
				c.metrics.frameError(state, err)
				c.logger.Error("failed to read frame", "state", state, "err", err)
			}
			return
		}

		if next != state {
			c.logger.Debug("state changed", "from", state, "to", next)
		}
		state = next
	}
}

// readNext reads one frame and returns the state the connection is in once it has been handled.
// Only failures to read the frame itself are returned.
func (c *Conn) readNext(state packet.State) (packet.State, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(time.Duration(c.opts.ReadTimeout) * time.Millisecond)); err != nil {
		return state, errors.Wrap(err, "set read deadline")
	}

	length, err := c.reader.ReadLength()
	if err != nil {
		return state, err
	}

	if length == 0 {
		c.logger.Debug("received empty frame, closing")
		return packet.StateClosed, nil
	}

	if length == protocol.LegacyPingLength {
		legacy, err := c.reader.ReadLegacyPing()
		if legacy {
			if err != nil {
				c.logger.Warn("malformed legacy ping", "err", err)
			} else {
				c.handleLegacyPing()
			}
			return packet.StateClosed, nil
		}
		if err != nil {
			return state, err
		}
	}

	payload, err := c.reader.ReadFrame(length)
	if err != nil {
		return state, err
	}

	c.metrics.frame(state)
	c.logger.Log(context.Background(), util.LevelTrace, "received frame", "state", state, "length", length)

	pk, err := packet.Parse(state, payload)
	if err != nil {
		c.metrics.frameError(state, err)
		c.logger.Warn("failed to parse packet", "state", state, "err", err)
		return state, nil
	}
	return c.handle(state, pk), nil
}

// WritePacket writes pk as a frame holding its id followed by its body.
func (c *Conn) WritePacket(pk packet.Packet) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	id := pk.ID()
	w := protocol.NewPacketWriter(buf)
	w.Varint32(&id)
	pk.Marshal(w)
	if err := w.Err(); err != nil {
		return errors.Wrapf(err, "encode packet 0x%02X", id)
	}
	return c.writer.Write(buf.Bytes())
}

// send writes pk and logs a failure instead of returning it.
func (c *Conn) send(pk packet.Packet) {
	if err := c.WritePacket(pk); err != nil {
		c.logger.Warn("failed to write packet", "id", pk.ID(), "err", err)
	}
}

// RemoteAddr ...
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the underlying connection. It may be called more than once.
func (c *Conn) Close() (err error) {
	c.once.Do(func() {
		c.metrics.closed()
		err = c.conn.Close()
	})
	return
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
