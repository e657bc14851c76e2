package util

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"github.com/go-faster/errors"
	"github.com/sandertv/gophertunnel/minecraft"
)

// StatusProvider reports a fixed description and the player counts it is asked for.
type StatusProvider struct {
	description string
}

func NewStatusProvider(description string) *StatusProvider {
	return &StatusProvider{description: description}
}

func (s *StatusProvider) ServerStatus(playerCount int, maxPlayers int) minecraft.ServerStatus {
	return minecraft.ServerStatus{
		ServerName:  s.description,
		PlayerCount: playerCount,
		MaxPlayers:  maxPlayers,
	}
}

// Status is the JSON document sent in response to a status request.
type Status struct {
	Version            StatusVersion     `json:"version"`
	Players            StatusPlayers     `json:"players"`
	Description        StatusDescription `json:"description"`
	Favicon            string            `json:"favicon,omitempty"`
	EnforcesSecureChat bool              `json:"enforcesSecureChat"`
}

type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type StatusPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []SamplePlayer `json:"sample"`
}

type StatusDescription struct {
	Text string `json:"text"`
}

// NewStatus builds the status document from the server options and the status reported by a
// provider. favicon is a data URI as returned by LoadFavicon.
func NewStatus(opts Opts, status minecraft.ServerStatus, favicon string) Status {
	sample := opts.Sample
	if sample == nil {
		sample = []SamplePlayer{}
	}
	return Status{
		Version: StatusVersion{
			Name:     opts.VersionName,
			Protocol: opts.ProtocolVersion,
		},
		Players: StatusPlayers{
			Max:    status.MaxPlayers,
			Online: status.PlayerCount,
			Sample: sample,
		},
		Description:        StatusDescription{Text: status.ServerName},
		Favicon:            favicon,
		EnforcesSecureChat: opts.EnforcesSecureChat,
	}
}

// JSON ...
func (s Status) JSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "marshal status")
	}
	return string(data), nil
}

// LoadFavicon reads the PNG image at path and returns it as a data URI. An empty path returns an
// empty string.
func LoadFavicon(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read favicon %s", path)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
