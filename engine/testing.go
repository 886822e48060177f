package engine

import (
	"errors"
	"sync"

	"github.com/minaorangina/deal/protocol"
)

var errTestPlayerClosed = errors.New("test player closed")

// TestPlayer records every message sent to it
type TestPlayer struct {
	id       string
	seat     int
	mu       sync.Mutex
	received []protocol.OutboundMessage
	closed   bool
}

func NewTestPlayer(seat int) *TestPlayer {
	return &TestPlayer{id: NewID(), seat: seat}
}

func (tp *TestPlayer) ID() string {
	return tp.id
}

func (tp *TestPlayer) Seat() int {
	return tp.seat
}

func (tp *TestPlayer) Send(msg protocol.OutboundMessage) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.closed {
		return errTestPlayerClosed
	}
	tp.received = append(tp.received, msg)
	return nil
}

// Close makes later sends fail
func (tp *TestPlayer) Close() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.closed = true
}

// Received returns a copy of what the player has been sent so far
func (tp *TestPlayer) Received() []protocol.OutboundMessage {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return append([]protocol.OutboundMessage{}, tp.received...)
}

// Last returns the most recent message, if any
func (tp *TestPlayer) Last() (protocol.OutboundMessage, bool) {
	msgs := tp.Received()
	if len(msgs) == 0 {
		return protocol.OutboundMessage{}, false
	}
	return msgs[len(msgs)-1], true
}
