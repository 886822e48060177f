package engine

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/game"
	"github.com/minaorangina/deal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestSendText(t *testing.T) {
	buffer := &bytes.Buffer{}
	SendText(buffer, "Hello %s", "there")

	assert.Equal(t, "Hello there", buffer.String())
}

func TestRenderView(t *testing.T) {
	s, err := game.New(deck.DefaultCatalog(), 2, deck.NewShuffler(5))
	require.NoError(t, err)

	t.Run("shows the table and the addressee's hand", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		msg := game.BuildMessage(s, 0, protocol.Start, "Let's play")

		RenderView(buffer, msg)

		out := buffer.String()
		assert.Contains(t, out, "Let's play")
		assert.Contains(t, out, "Player 1's turn")
		assert.Contains(t, out, "AwaitingDraw")
		assert.Contains(t, out, "Player 2: 0M banked")
		assert.Contains(t, out, "Your hand")
		assert.Contains(t, out, s.Players[0].Hand[0].Name)
	})

	t.Run("errors are shown", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		RenderView(buffer, protocol.OutboundMessage{Error: "not your turn", PlayerID: -1})

		assert.Contains(t, buffer.String(), "not your turn")
	})

	t.Run("pending forced deal", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		target := 1
		RenderView(buffer, protocol.OutboundMessage{
			PlayerID: -1,
			Pending: &protocol.Pending{
				Step:   "AwaitingOwnProperty",
				Card:   protocol.Card{Name: "Forced Deal"},
				Target: &target,
				Chosen: &protocol.Chosen{PlayerID: 1, Colour: "red", Card: protocol.Card{Name: "Strand"}},
			},
		})

		out := buffer.String()
		assert.Contains(t, out, "Waiting on Forced Deal")
		assert.Contains(t, out, "against Player 2")
		assert.Contains(t, out, "taking Strand from their red set")
	})

	t.Run("winner", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		winner := 1
		RenderView(buffer, protocol.OutboundMessage{Winner: &winner})

		assert.Contains(t, buffer.String(), "Player 2 wins")
	})
}

func TestCLIPlayer(t *testing.T) {
	buffer := &bytes.Buffer{}
	p := NewCLIPlayer(1, buffer)

	assert.NoError(t, p.Send(protocol.OutboundMessage{CurrentPlayer: 0, Message: "not for me"}))
	assert.Empty(t, buffer.String())

	assert.NoError(t, p.Send(protocol.OutboundMessage{CurrentPlayer: 1, Message: "my turn"}))
	assert.Contains(t, buffer.String(), "my turn")
}
