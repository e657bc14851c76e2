package util

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/scylladb/go-set/i32set"
)

// Opts holds the configuration of a Void server. It is decoded from YAML or TOML, see LoadOpts.
type Opts struct {
	// Addr is the address to listen on.
	Addr string `yaml:"addr" toml:"addr"`
	// ReadTimeout is the time in milliseconds a connection may stay silent before it is closed.
	ReadTimeout int64 `yaml:"read_timeout" toml:"read_timeout"`
	// MaxFrameLength is the largest frame length prefix accepted from a client.
	MaxFrameLength int32 `yaml:"max_frame_length" toml:"max_frame_length"`

	// ProtocolVersion is the protocol version the server advertises.
	ProtocolVersion int32 `yaml:"protocol_version" toml:"protocol_version"`
	// VersionName is the game version name the server advertises.
	VersionName string `yaml:"version_name" toml:"version_name"`
	// AcceptedProtocols lists the protocol versions a handshake may carry without a warning being
	// logged. When empty, only ProtocolVersion is accepted.
	AcceptedProtocols []int32 `yaml:"accepted_protocols" toml:"accepted_protocols"`

	Description        string         `yaml:"description" toml:"description"`
	MaxPlayers         int            `yaml:"max_players" toml:"max_players"`
	OnlinePlayers      int            `yaml:"online_players" toml:"online_players"`
	Sample             []SamplePlayer `yaml:"sample" toml:"sample"`
	FaviconPath        string         `yaml:"favicon_path" toml:"favicon_path"`
	EnforcesSecureChat bool           `yaml:"enforces_secure_chat" toml:"enforces_secure_chat"`

	// LogLevel is one of trace, debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// MetricsAddr is the address the Prometheus endpoint listens on. Metrics are not served when
	// it is empty.
	MetricsAddr string `yaml:"metrics_addr" toml:"metrics_addr"`
}

// SamplePlayer is a player listed in the status document.
type SamplePlayer struct {
	Name string    `yaml:"name" toml:"name" json:"name"`
	ID   uuid.UUID `yaml:"id" toml:"id" json:"id"`
}

func DefaultOpts() *Opts {
	return &Opts{
		Addr:              ":25565",
		ReadTimeout:       30000,
		MaxFrameLength:    1<<21 - 1,
		ProtocolVersion:   768,
		VersionName:       "1.21.2",
		AcceptedProtocols: []int32{768},
		Description:       "AtmosphereMC - Void",
		MaxPlayers:        100,
		LogLevel:          "info",
	}
}

// Validate reports the first invalid field of o.
func (o *Opts) Validate() error {
	if strings.TrimSpace(o.Addr) == "" {
		return errors.New("addr is required")
	}
	if o.ReadTimeout <= 0 {
		return errors.Errorf("read_timeout must be positive, got %d", o.ReadTimeout)
	}
	if o.MaxFrameLength <= 0 {
		return errors.Errorf("max_frame_length must be positive, got %d", o.MaxFrameLength)
	}
	if o.MaxPlayers < 0 || o.OnlinePlayers < 0 {
		return errors.Errorf("player counts must not be negative, got %d/%d", o.OnlinePlayers, o.MaxPlayers)
	}
	if _, ok := ParseLevel(o.LogLevel); !ok {
		return errors.Errorf("unknown log_level %q", o.LogLevel)
	}
	return nil
}

// Accepted returns the set of protocol versions a handshake may carry.
func (o *Opts) Accepted() *i32set.Set {
	if len(o.AcceptedProtocols) == 0 {
		return i32set.New(o.ProtocolVersion)
	}
	return i32set.New(o.AcceptedProtocols...)
}
