package void

import (
	"context"
	"log/slog"
	"net"

	"github.com/Virinas-code/atmospheremc-void/session"
	"github.com/Virinas-code/atmospheremc-void/util"
	"github.com/go-faster/errors"
	"github.com/sandertv/gophertunnel/minecraft"
)

// Void accepts client connections and serves each of them on its own goroutine.
type Void struct {
	listener net.Listener

	status  minecraft.ServerStatusProvider
	metrics *session.Metrics
	favicon string

	logger *slog.Logger
	opts   util.Opts
}

// New creates a Void. A nil opts selects util.DefaultOpts, a nil status reports opts.Description
// and metrics may be nil.
func New(logger *slog.Logger, opts *util.Opts, status minecraft.ServerStatusProvider, metrics *session.Metrics) *Void {
	if opts == nil {
		opts = util.DefaultOpts()
	}

	if status == nil {
		status = util.NewStatusProvider(opts.Description)
	}
	return &Void{
		status:  status,
		metrics: metrics,

		logger: logger,
		opts:   *opts,
	}
}

// Listen loads the favicon and starts listening on the configured address.
func (v *Void) Listen() error {
	favicon, err := util.LoadFavicon(v.opts.FaviconPath)
	if err != nil {
		v.logger.Error("failed to load favicon", "err", err)
		return err
	}

	listener, err := net.Listen("tcp", v.opts.Addr)
	if err != nil {
		v.logger.Error("failed to listen", "err", err)
		return err
	}

	v.favicon = favicon
	v.listener = listener
	v.logger.Info("started listening", "addr", listener.Addr())
	return nil
}

// Accept waits for the next client. The returned connection is not served until Serve is called
// on it.
func (v *Void) Accept() (*session.Conn, error) {
	c, err := v.listener.Accept()
	if err != nil {
		return nil, err
	}

	if tcpConn, ok := c.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}

	conn := session.NewConn(c, v.logger, v.opts, v.status, v.favicon, v.metrics)
	v.logger.Debug("accepted connection", "addr", c.RemoteAddr().String())
	return conn, nil
}

// Serve accepts connections until ctx is cancelled or the listener is closed, serving each on a
// new goroutine. It returns nil once stopped through ctx or Close.
func (v *Void) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = v.listener.Close()
	})
	defer stop()

	for {
		conn, err := v.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			v.logger.Error("failed to accept connection", "err", err)
			return err
		}
		go conn.Serve()
	}
}

// Addr returns the address the server listens on, or nil before Listen.
func (v *Void) Addr() net.Addr {
	if v.listener == nil {
		return nil
	}
	return v.listener.Addr()
}

func (v *Void) Opts() util.Opts {
	return v.opts
}

func (v *Void) Close() error {
	return v.listener.Close()
}
