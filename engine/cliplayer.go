package engine

import (
	"io"

	"github.com/minaorangina/deal/protocol"
)

// CLIPlayer renders updates to a terminal. In a hot-seat game every seat
// shares one screen, so only the view of whoever is about to act is drawn.
type CLIPlayer struct {
	id   string
	seat int
	out  io.Writer
}

func NewCLIPlayer(seat int, out io.Writer) *CLIPlayer {
	return &CLIPlayer{id: NewID(), seat: seat, out: out}
}

func (p *CLIPlayer) ID() string {
	return p.id
}

func (p *CLIPlayer) Seat() int {
	return p.seat
}

func (p *CLIPlayer) Send(msg protocol.OutboundMessage) error {
	if msg.Winner != nil {
		if *msg.Winner == p.seat {
			RenderView(p.out, msg)
		}
		return nil
	}
	if msg.CurrentPlayer == p.seat {
		RenderView(p.out, msg)
	}
	return nil
}
