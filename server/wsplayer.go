package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/deal/engine"
	"github.com/minaorangina/deal/protocol"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	sendBufferSize = 16
)

var (
	errPlayerGone = errors.New("player connection closed")
	errPlayerSlow = errors.New("player is not keeping up")
)

// WSPlayer is a websocket connection sitting at one seat
type WSPlayer struct {
	id     string
	seat   int
	conn   *websocket.Conn
	game   engine.GameEngine
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	logger logrus.FieldLogger
}

// NewWSPlayer constructs a new player
func NewWSPlayer(id string, seat int, conn *websocket.Conn, game engine.GameEngine, logger logrus.FieldLogger) *WSPlayer {
	return &WSPlayer{
		id:     id,
		seat:   seat,
		conn:   conn,
		game:   game,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger.WithFields(logrus.Fields{"player": id, "seat": seat}),
	}
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Seat() int {
	return p.seat
}

// Send queues msg for the write pump
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case <-p.done:
		return errPlayerGone
	default:
	}

	select {
	case p.send <- data:
		return nil
	case <-p.done:
		return errPlayerGone
	default:
		return errPlayerSlow
	}
}

// Close disconnects the player. It is safe to call more than once.
func (p *WSPlayer) Close() {
	p.once.Do(func() {
		close(p.done)
		p.game.RemovePlayer(p.id)
	})
}

// readPump turns websocket frames into commands for the seat
func (p *WSPlayer) readPump() {
	defer func() {
		p.Close()
		p.conn.Close()
	}()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.logger.WithError(err).Warn("websocket closed unexpectedly")
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			p.reply(protocol.OutboundMessage{PlayerID: p.seat, Command: protocol.Error, Error: err.Error()})
			continue
		}
		msg.PlayerID = p.seat

		// successful commands reach this player through the broadcast
		if res, err := p.game.Receive(msg); err != nil {
			p.reply(res)
		}
	}
}

// reply sends msg to this connection only
func (p *WSPlayer) reply(msg protocol.OutboundMessage) {
	if err := p.Send(msg); err != nil {
		p.logger.WithError(err).Debug("could not send reply")
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				p.Close()
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				p.Close()
				return
			}

		case <-p.done:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			p.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
