package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/deal/protocol"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

const CommandHelp = `Commands (cards, sets and players are numbered from 1):
  draw                        draw cards to start your turn
  bank <card>                 put a card in your bank
  prop <card> [set] [colour]  put a property in a set, or start a new one
  action <card>               play an action card
  target <player>             choose who the action is against
  select <set> [card]         choose a property set (and card) for the action
  cancel                      give up on the current action
  discard <card> ...          discard down to 7 cards
  end                         end your turn
  help                        show this help
  quit                        leave the game`

// ParseCommand turns a line typed at the prompt into a command for seat.
// Numbers are one-based on the way in.
func ParseCommand(line string, seat int) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	msg := protocol.InboundMessage{PlayerID: seat}
	if len(fields) == 0 {
		return msg, fmt.Errorf("%w: nothing entered", ErrUnknownCommand)
	}

	verb, args := fields[0], fields[1:]
	nums, err := parseIndices(args)

	switch verb {
	case "draw", "d":
		msg.Command = protocol.Draw

	case "end", "e":
		msg.Command = protocol.EndTurn

	case "cancel":
		msg.Command = protocol.Cancel

	case "bank", "b":
		if err != nil || len(nums) != 1 {
			return msg, fmt.Errorf("%w: bank <card>", ErrBadArguments)
		}
		msg.Command = protocol.PlayCard
		msg.CardIndex = nums[0]
		msg.Destination = protocol.Destination{Area: protocol.Bank}

	case "prop", "p":
		return parseProperty(msg, args)

	case "action", "a":
		if err != nil || len(nums) != 1 {
			return msg, fmt.Errorf("%w: action <card>", ErrBadArguments)
		}
		msg.Command = protocol.PlayActionCard
		msg.CardIndex = nums[0]

	case "target", "t":
		if err != nil || len(nums) != 1 {
			return msg, fmt.Errorf("%w: target <player>", ErrBadArguments)
		}
		msg.Command = protocol.ResolveAction
		msg.Target = &nums[0]

	case "select", "s":
		if err != nil || len(nums) < 1 || len(nums) > 2 {
			return msg, fmt.Errorf("%w: select <set> [card]", ErrBadArguments)
		}
		msg.Command = protocol.SelectProperty
		msg.Grouping = nums[0]
		if len(nums) == 2 {
			msg.CardIndex = nums[1]
		}

	case "discard":
		if err != nil || len(nums) == 0 {
			return msg, fmt.Errorf("%w: discard <card> ...", ErrBadArguments)
		}
		msg.Command = protocol.Discard
		msg.Decision = nums

	default:
		return msg, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}

	return msg, nil
}

func parseProperty(msg protocol.InboundMessage, args []string) (protocol.InboundMessage, error) {
	usage := fmt.Errorf("%w: prop <card> [set|new] [colour]", ErrBadArguments)
	if len(args) == 0 {
		return msg, usage
	}

	cards, err := parseIndices(args[:1])
	if err != nil {
		return msg, usage
	}

	msg.Command = protocol.PlayCard
	msg.CardIndex = cards[0]
	msg.Destination = protocol.Destination{Area: protocol.PropertyArea, Grouping: protocol.NewGrouping}

	rest := args[1:]
	if len(rest) > 0 {
		if rest[0] != "new" {
			set, err := parseIndices(rest[:1])
			if err != nil {
				return msg, usage
			}
			msg.Destination.Grouping = set[0]
		}
		rest = rest[1:]
	}

	msg.Destination.Colour = strings.Join(rest, " ")
	return msg, nil
}

func parseIndices(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q is not a number from 1 up", ErrBadArguments, a)
		}
		nums = append(nums, n-1)
	}
	return nums, nil
}
