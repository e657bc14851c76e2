package session

import (
	"github.com/Virinas-code/atmospheremc-void/packet"
	"github.com/Virinas-code/atmospheremc-void/protocol"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts connections and frames. A nil *Metrics records nothing.
type Metrics struct {
	connections prometheus.Counter
	active      prometheus.Gauge
	frames      *prometheus.CounterVec
	frameErrors *prometheus.CounterVec
	legacyPings prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. The collectors are not registered
// when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		connections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "void",
			Name:      "connections_total",
			Help:      "Total accepted connections.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "void",
			Name:      "connections_active",
			Help:      "Connections currently served.",
		}),
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "void",
				Name:      "frames_total",
				Help:      "Frames received, by connection state.",
			},
			[]string{"state"},
		),
		frameErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "void",
				Name:      "frame_errors_total",
				Help:      "Frames that failed to be read or parsed, by connection state and reason.",
			},
			[]string{"state", "reason"},
		),
		legacyPings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "void",
			Name:      "legacy_pings_total",
			Help:      "Legacy pings answered.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.connections, m.active, m.frames, m.frameErrors, m.legacyPings)
	}
	return m
}

func (m *Metrics) opened() {
	if m == nil {
		return
	}
	m.connections.Inc()
	m.active.Inc()
}

func (m *Metrics) closed() {
	if m == nil {
		return
	}
	m.active.Dec()
}

func (m *Metrics) frame(state packet.State) {
	if m == nil {
		return
	}
	m.frames.WithLabelValues(state.String()).Inc()
}

func (m *Metrics) frameError(state packet.State, err error) {
	if m == nil {
		return
	}
	m.frameErrors.WithLabelValues(state.String(), reason(err)).Inc()
}

func (m *Metrics) legacyPing() {
	if m == nil {
		return
	}
	m.legacyPings.Inc()
}

// reason maps err to a low cardinality label value.
func reason(err error) string {
	var (
		unknown *packet.UnknownPacketError
		parse   *packet.ParseError
	)
	switch {
	case errors.As(err, &unknown):
		return "unknown_packet"
	case errors.As(err, &parse):
		return "decode"
	case errors.Is(err, protocol.ErrFrameTooLarge):
		return "too_large"
	case errors.Is(err, protocol.ErrVarNumberTooBig), errors.Is(err, protocol.ErrIntConversion):
		return "bad_length"
	}
	return "read"
}
