package engine

import (
	"github.com/minaorangina/deal/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a connection ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is a connection to someone sitting at the table. Several
// connections may share a seat, e.g. a spectator view of player 1.
type Player interface {
	ID() string
	Seat() int
	Send(msg protocol.OutboundMessage) error
}

// Players represents everyone connected to a game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// AddPlayer adds a player to a set of Players
func AddPlayer(ps Players, p Player) Players {
	if _, ok := ps.Find(p.ID()); !ok {
		return append(ps, p)
	}
	return ps
}

// RemovePlayer removes the player with id from a set of Players
func RemovePlayer(ps Players, id string) Players {
	out := Players{}
	for _, p := range ps {
		if p.ID() != id {
			out = append(out, p)
		}
	}
	return out
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}
