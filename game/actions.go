package game

import (
	"fmt"

	"github.com/minaorangina/deal/deck"
)

const (
	debtCollectorAmount = 5
	birthdayAmount      = 2
	passGoDraw          = 2
)

// playActionCard spends the card and starts its effect. The card counts
// against the turn's plays even if the effect later comes to nothing.
func (s *State) playActionCard(cardIdx int) (string, error) {
	if err := s.checkCanPlay(cardIdx); err != nil {
		return "", err
	}

	p := s.CurrentPlayer()
	card := p.Hand[cardIdx]
	if card.Category != deck.Action {
		return "", fmt.Errorf("%w: %s is not an action card", ErrIllegalPlacement, card)
	}

	p.Hand = removeCard(p.Hand, cardIdx)
	s.ActionArea = append(s.ActionArea, card)
	s.CardsPlayed++

	switch card.Action {
	case deck.Birthday:
		return s.resolveBirthday(), nil

	case deck.PassGo:
		drawn := s.drawInto(p, passGoDraw)
		return fmt.Sprintf("Drew %d more cards", drawn), nil

	case deck.House, deck.Hotel:
		if len(buildable(p, card.Action)) == 0 {
			return fmt.Sprintf("Played %s, but you have nowhere to put it", card), nil
		}
		s.Pending = &Pending{Step: AwaitingOwnProperty, Card: card, Target: noTarget}
		return fmt.Sprintf("Select a property set for %s", card), nil
	}

	s.Pending = &Pending{Step: AwaitingTarget, Card: card, Target: noTarget}
	return fmt.Sprintf("Select a player for %s", card), nil
}

// resolveAction applies the target choice for the pending action
func (s *State) resolveAction(target *int) (string, error) {
	if s.Pending == nil || s.Pending.Step != AwaitingTarget {
		return "", fmt.Errorf("%w: no action is waiting for a target", ErrIllegalCommand)
	}
	if target == nil {
		return "", fmt.Errorf("%w: %s needs a target player", ErrIllegalCommand, s.Pending.Card)
	}
	t := *target
	if t < 0 || t >= len(s.Players) || t == s.Current {
		return "", fmt.Errorf("%w: player %d is not an opponent", ErrIllegalCommand, t+1)
	}

	card := s.Pending.Card
	p, opponent := s.CurrentPlayer(), s.Players[t]

	switch card.Action {
	case deck.DebtCollector:
		s.Pending = nil
		paid := Settle(opponent, p, debtCollectorAmount)
		if paid == 0 {
			return fmt.Sprintf("Player %d has no money to pay", t+1), nil
		}
		return fmt.Sprintf("Collected %dM from Player %d", paid, t+1), nil

	case deck.Rent:
		s.Pending = nil
		return s.resolveRent(card, t), nil

	case deck.DealBreaker:
		if len(stealableSets(opponent)) == 0 {
			s.Pending = nil
			return fmt.Sprintf("Player %d has no complete property sets to steal", t+1), nil
		}

	case deck.SlyDeal:
		if len(looseCards(opponent)) == 0 {
			s.Pending = nil
			return fmt.Sprintf("Player %d has no properties outside complete sets", t+1), nil
		}

	case deck.ForcedDeal:
		if len(looseCards(opponent)) == 0 {
			s.Pending = nil
			return fmt.Sprintf("Player %d has no properties outside complete sets", t+1), nil
		}
		if len(looseCards(p)) == 0 {
			s.Pending = nil
			return "You have no properties outside complete sets to swap", nil
		}

	default:
		return "", fmt.Errorf("%w: %s does not take a target", ErrIllegalCommand, card)
	}

	s.Pending.Target = t
	s.Pending.Step = AwaitingOpponentProperty
	return fmt.Sprintf("Select a property for %s", card), nil
}

// selectProperty applies a grouping/card choice for the pending action
func (s *State) selectProperty(groupingIdx, cardIdx int) (string, error) {
	if s.Pending == nil || (s.Pending.Step != AwaitingOpponentProperty && s.Pending.Step != AwaitingOwnProperty) {
		return "", fmt.Errorf("%w: no action is waiting for a property", ErrIllegalCommand)
	}

	pending := s.Pending
	p := s.CurrentPlayer()

	if pending.Step == AwaitingOwnProperty {
		switch pending.Card.Action {
		case deck.ForcedDeal:
			return s.completeForcedDeal(groupingIdx, cardIdx)
		case deck.House, deck.Hotel:
			return s.build(groupingIdx)
		}
		return "", fmt.Errorf("%w: %s does not take your own property", ErrIllegalCommand, pending.Card)
	}

	opponent := s.Players[pending.Target]
	if groupingIdx < 0 || groupingIdx >= len(opponent.Groupings) {
		return "", fmt.Errorf("%w: Player %d has no property set %d", ErrIllegalCommand, pending.Target+1, groupingIdx)
	}
	g := opponent.Groupings[groupingIdx]

	switch pending.Card.Action {
	case deck.DealBreaker:
		if !g.Complete {
			return "", fmt.Errorf("%w: Deal Breaker needs a complete set", ErrIllegalCommand)
		}
		if _, err := StealGrouping(opponent, p, g.Colour); err != nil {
			return "", err
		}
		s.Pending = nil
		return fmt.Sprintf("Stole %s property set from Player %d", g.Colour, pending.Target+1), nil

	case deck.SlyDeal:
		if g.Complete {
			return "", fmt.Errorf("%w: cards in complete sets cannot be stolen", ErrIllegalCommand)
		}
		card, err := TransferCard(opponent, p, g.Colour, cardIdx)
		if err != nil {
			return "", err
		}
		s.Pending = nil
		return fmt.Sprintf("Stole %s from Player %d", card, pending.Target+1), nil

	case deck.ForcedDeal:
		if g.Complete {
			return "", fmt.Errorf("%w: cards in complete sets cannot be swapped", ErrIllegalCommand)
		}
		if cardIdx < 0 || cardIdx >= len(g.Cards) {
			return "", fmt.Errorf("%w: no card %d in %s set", ErrIllegalCommand, cardIdx, g.Colour)
		}
		card := g.Cards[cardIdx]
		pending.Chosen = &Selection{Player: pending.Target, Colour: g.Colour, CardID: card.ID, Card: card}
		pending.Step = AwaitingOwnProperty
		return fmt.Sprintf("Selected %s. Now select one of your properties to swap.", card), nil
	}

	return "", fmt.Errorf("%w: %s does not take a property", ErrIllegalCommand, pending.Card)
}

// completeForcedDeal swaps the recorded opponent card with one of the
// current player's cards. Both halves land together or not at all.
func (s *State) completeForcedDeal(groupingIdx, cardIdx int) (string, error) {
	pending := s.Pending
	chosen := pending.Chosen
	if chosen == nil {
		return "", fmt.Errorf("%w: forced deal has no opponent card selected", ErrInvariant)
	}

	p, opponent := s.CurrentPlayer(), s.Players[chosen.Player]
	if groupingIdx < 0 || groupingIdx >= len(p.Groupings) {
		return "", fmt.Errorf("%w: you have no property set %d", ErrIllegalCommand, groupingIdx)
	}
	own := p.Groupings[groupingIdx]
	if own.Complete {
		return "", fmt.Errorf("%w: cards in complete sets cannot be swapped", ErrIllegalCommand)
	}
	if cardIdx < 0 || cardIdx >= len(own.Cards) {
		return "", fmt.Errorf("%w: no card %d in %s set", ErrIllegalCommand, cardIdx, own.Colour)
	}
	ownCard := own.Cards[cardIdx]

	theirs, ok := opponent.Grouping(chosen.Colour)
	if !ok {
		return "", fmt.Errorf("%w: selected %s set has gone", ErrInvariant, chosen.Colour)
	}
	theirIdx := cardIndexByID(theirs.Cards, chosen.CardID)
	if theirIdx < 0 {
		return "", fmt.Errorf("%w: selected card %s has gone", ErrInvariant, chosen.CardID)
	}

	taken, err := TransferCard(opponent, p, chosen.Colour, theirIdx)
	if err != nil {
		return "", err
	}

	mine, _ := p.Grouping(own.Colour)
	ownIdx := cardIndexByID(mine.Cards, ownCard.ID)
	given, err := TransferCard(p, opponent, own.Colour, ownIdx)
	if err != nil {
		return "", err
	}

	s.Pending = nil
	return fmt.Sprintf("Swapped %s for %s with Player %d", given, taken, chosen.Player+1), nil
}

// build puts the pending house or hotel on one of the current player's sets
func (s *State) build(groupingIdx int) (string, error) {
	p := s.CurrentPlayer()
	kind := s.Pending.Card.Action

	if !containsInt(buildable(p, kind), groupingIdx) {
		return "", fmt.Errorf("%w: cannot put a %s on that set", ErrIllegalCommand, kind)
	}

	g := &p.Groupings[groupingIdx]
	if kind == deck.House {
		g.Houses++
	} else {
		g.Hotels++
	}

	s.Pending = nil
	return fmt.Sprintf("Added a %s to your %s set", kind, g.Colour), nil
}

func (s *State) resolveBirthday() string {
	p := s.CurrentPlayer()
	total := 0
	for i, opponent := range s.Players {
		if i == s.Current {
			continue
		}
		total += Settle(opponent, p, birthdayAmount)
	}
	return fmt.Sprintf("Collected %dM for your birthday", total)
}

func (s *State) resolveRent(card deck.Card, target int) string {
	p := s.CurrentPlayer()

	due := 0
	for _, g := range p.Groupings {
		if containsColour(card.RentColours, g.Colour) {
			due += CalculateRent(g)
		}
	}
	if due == 0 {
		return "No properties of the specified colours to collect rent for"
	}

	paid := Settle(s.Players[target], p, due)
	if paid == 0 {
		return fmt.Sprintf("Player %d has no money to pay rent", target+1)
	}
	return fmt.Sprintf("Collected %dM rent from Player %d", paid, target+1)
}

// stealableSets lists the indices of p's complete groupings
func stealableSets(p *Player) []int {
	idx := []int{}
	for i, g := range p.Groupings {
		if g.Complete {
			idx = append(idx, i)
		}
	}
	return idx
}

// looseCards returns the cards p holds outside complete groupings
func looseCards(p *Player) []deck.Card {
	cards := []deck.Card{}
	for _, g := range p.Groupings {
		if !g.Complete {
			cards = append(cards, g.Cards...)
		}
	}
	return cards
}

// buildable lists the groupings of p that can take a house or hotel
func buildable(p *Player, kind deck.ActionKind) []int {
	idx := []int{}
	for i, g := range p.Groupings {
		if !g.Complete {
			continue
		}
		if kind == deck.House && g.Houses == 0 && g.Hotels == 0 {
			idx = append(idx, i)
		}
		if kind == deck.Hotel && g.Houses > 0 && g.Hotels == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
