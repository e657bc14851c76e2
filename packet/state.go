package packet

import "log/slog"

// State is the protocol phase a connection is in. It decides which packets a frame may hold.
type State uint8

const (
	// StateHandshake is the state every connection starts in.
	StateHandshake State = iota
	StateStatus
	StateLogin
	StatePlay
	// StateClosed is terminal: no frame is processed once a connection reaches it.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateStatus:
		return "Status"
	case StateLogin:
		return "Login"
	case StatePlay:
		return "Play"
	case StateClosed:
		return "Closed"
	}
	return "Unknown"
}

// LogValue logs s by name.
func (s State) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
