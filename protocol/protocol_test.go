package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboundMessageJSON(t *testing.T) {
	raw := `{"playerID": 1, "command": "PlayCard", "cardIndex": 2,
		"destination": {"area": "property", "grouping": -1, "colour": "green"}}`

	var msg InboundMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))

	assert.Equal(t, PlayCard, msg.Command)
	assert.Equal(t, PropertyArea, msg.Destination.Area)
	assert.Equal(t, NewGrouping, msg.Destination.Grouping)
	assert.Equal(t, "green", msg.Destination.Colour)
	assert.Nil(t, msg.Target)

	t.Run("unknown command names are rejected", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"command": "Reorg"}`), &msg)
		assert.Error(t, err)
	})

	t.Run("commands are written by name", func(t *testing.T) {
		data, err := json.Marshal(OutboundMessage{Command: SelectProperty})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"command":"SelectProperty"`)
	})
}

func TestCmdNamesComplete(t *testing.T) {
	for cmd, name := range CmdNames {
		assert.Equal(t, cmd, NameToCmd[name])
	}
	assert.Equal(t, len(CmdNames), len(NameToCmd))
}
