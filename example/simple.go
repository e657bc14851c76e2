package main

import (
	"os"
	"sync/atomic"

	void "github.com/Virinas-code/atmospheremc-void"
	"github.com/Virinas-code/atmospheremc-void/util"
	"github.com/sandertv/gophertunnel/minecraft"
)

// visitors reports how many connections were accepted as the online player count.
type visitors struct {
	count atomic.Int64
}

func (v *visitors) ServerStatus(_ int, maxPlayers int) minecraft.ServerStatus {
	return minecraft.ServerStatus{
		ServerName:  "Void Example",
		PlayerCount: int(v.count.Load()),
		MaxPlayers:  maxPlayers,
	}
}

func main() {
	logger := util.NewLogger(os.Stderr, "debug")
	status := &visitors{}
	server := void.New(logger, nil, status, nil)
	if err := server.Listen(); err != nil {
		logger.Error("failed to listen", "err", err)
		return
	}

	for {
		conn, err := server.Accept()
		if err != nil {
			logger.Error("failed to accept connection", "err", err)
			return
		}

		status.count.Add(1)
		go conn.Serve()
	}
}
