package engine

import (
	"errors"
	"testing"

	"github.com/minaorangina/deal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	two := 1

	tt := []struct {
		line string
		want protocol.InboundMessage
	}{
		{"draw", protocol.InboundMessage{PlayerID: 2, Command: protocol.Draw}},
		{"  END ", protocol.InboundMessage{PlayerID: 2, Command: protocol.EndTurn}},
		{"cancel", protocol.InboundMessage{PlayerID: 2, Command: protocol.Cancel}},
		{"bank 3", protocol.InboundMessage{
			PlayerID: 2, Command: protocol.PlayCard, CardIndex: 2,
			Destination: protocol.Destination{Area: protocol.Bank},
		}},
		{"prop 1", protocol.InboundMessage{
			PlayerID: 2, Command: protocol.PlayCard, CardIndex: 0,
			Destination: protocol.Destination{Area: protocol.PropertyArea, Grouping: protocol.NewGrouping},
		}},
		{"prop 2 3", protocol.InboundMessage{
			PlayerID: 2, Command: protocol.PlayCard, CardIndex: 1,
			Destination: protocol.Destination{Area: protocol.PropertyArea, Grouping: 2},
		}},
		{"prop 4 new Dark Blue", protocol.InboundMessage{
			PlayerID: 2, Command: protocol.PlayCard, CardIndex: 3,
			Destination: protocol.Destination{Area: protocol.PropertyArea, Grouping: protocol.NewGrouping, Colour: "dark blue"},
		}},
		{"action 5", protocol.InboundMessage{PlayerID: 2, Command: protocol.PlayActionCard, CardIndex: 4}},
		{"target 2", protocol.InboundMessage{PlayerID: 2, Command: protocol.ResolveAction, Target: &two}},
		{"select 1", protocol.InboundMessage{PlayerID: 2, Command: protocol.SelectProperty, Grouping: 0}},
		{"select 2 3", protocol.InboundMessage{PlayerID: 2, Command: protocol.SelectProperty, Grouping: 1, CardIndex: 2}},
		{"discard 1 8", protocol.InboundMessage{PlayerID: 2, Command: protocol.Discard, Decision: []int{0, 7}}},
	}

	for _, tc := range tt {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ParseCommand(tc.line, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("bad input", func(t *testing.T) {
		for _, line := range []string{"bank", "bank 0", "bank two", "action 1 2", "select", "discard", "prop", "prop x"} {
			_, err := ParseCommand(line, 0)
			assert.True(t, errors.Is(err, ErrBadArguments), line)
		}

		for _, line := range []string{"", "fly"} {
			_, err := ParseCommand(line, 0)
			assert.True(t, errors.Is(err, ErrUnknownCommand), line)
		}
	})
}
