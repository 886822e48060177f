package game

import (
	"fmt"

	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/protocol"
)

// BuildMessage renders s for playerID. Only that player's hand is included.
func BuildMessage(s *State, playerID int, cmd protocol.Cmd, message string) protocol.OutboundMessage {
	msg := protocol.OutboundMessage{
		PlayerID:      playerID,
		Command:       cmd,
		Message:       message,
		Stage:         s.Stage.String(),
		CurrentPlayer: s.Current,
		CardsPlayed:   s.CardsPlayed,
		HasDrawn:      s.HasDrawn,
		PileCount:     len(s.Pile),
		ActionArea:    buildCards(s.ActionArea),
		Players:       make([]protocol.Player, 0, len(s.Players)),
		Pending:       buildPending(s.Pending),
	}

	for _, p := range s.Players {
		msg.Players = append(msg.Players, buildPlayer(p, p.ID == playerID))
	}

	if s.Winner != nil {
		w := *s.Winner
		msg.Winner = &w
		msg.Command = protocol.GameOver
	}

	return msg
}

// BuildMessages renders s once per player
func BuildMessages(s *State, cmd protocol.Cmd, message string) []protocol.OutboundMessage {
	msgs := []protocol.OutboundMessage{}
	for _, p := range s.Players {
		msgs = append(msgs, BuildMessage(s, p.ID, cmd, message))
	}
	return msgs
}

// BuildErrorMessage renders s for playerID along with a rejected command
func BuildErrorMessage(s *State, playerID int, err error) protocol.OutboundMessage {
	msg := BuildMessage(s, playerID, protocol.Error, fmt.Sprintf("game error: %q", err.Error()))
	msg.Error = err.Error()
	return msg
}

func buildPlayer(p *Player, withHand bool) protocol.Player {
	view := protocol.Player{
		PlayerID:      p.ID,
		HandCount:     len(p.Hand),
		Bank:          buildCards(p.Bank),
		BankTotal:     BankTotal(p.Bank),
		Groupings:     make([]protocol.Grouping, 0, len(p.Groupings)),
		CompleteCount: p.CompleteSets(),
	}
	if withHand {
		view.Hand = buildCards(p.Hand)
	}

	for _, g := range p.Groupings {
		view.Groupings = append(view.Groupings, protocol.Grouping{
			Colour:        string(g.Colour),
			Cards:         buildCards(g.Cards),
			Complete:      g.Complete,
			RequiredCards: g.Required,
			Houses:        g.Houses,
			Hotels:        g.Hotels,
			Rent:          CalculateRent(g),
		})
	}

	return view
}

func buildPending(p *Pending) *protocol.Pending {
	if p == nil {
		return nil
	}

	view := &protocol.Pending{
		Step: p.Step.String(),
		Card: buildCard(p.Card),
	}
	if p.Target != noTarget {
		t := p.Target
		view.Target = &t
	}
	if p.Chosen != nil {
		view.Chosen = &protocol.Chosen{
			PlayerID: p.Chosen.Player,
			Colour:   string(p.Chosen.Colour),
			Card:     buildCard(p.Chosen.Card),
		}
	}
	return view
}

func buildCards(cards []deck.Card) []protocol.Card {
	views := make([]protocol.Card, 0, len(cards))
	for _, c := range cards {
		views = append(views, buildCard(c))
	}
	return views
}

func buildCard(c deck.Card) protocol.Card {
	view := protocol.Card{
		ID:       c.ID,
		Name:     c.Name,
		Category: c.Category.String(),
		Value:    c.Value,
		Colour:   string(c.Colour),
		Action:   string(c.Action),
	}
	if c.IsPropertyLike() {
		view.Secondary = string(c.Secondary)
		view.Mode = c.Mode.String()
	}
	for _, colour := range c.RentColours {
		view.RentColours = append(view.RentColours, string(colour))
	}
	return view
}
