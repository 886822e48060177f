package game

import (
	"fmt"

	"github.com/minaorangina/deal/deck"
)

// GroupingIndex returns the position of the player's grouping of colour, or -1
func (p *Player) GroupingIndex(colour deck.Colour) int {
	for i, g := range p.Groupings {
		if g.Colour == colour {
			return i
		}
	}
	return -1
}

// Grouping returns the player's grouping of colour
func (p *Player) Grouping(colour deck.Colour) (*Grouping, bool) {
	idx := p.GroupingIndex(colour)
	if idx < 0 {
		return nil, false
	}
	return &p.Groupings[idx], true
}

// Place puts card into the grouping at index idx. An idx of NewGrouping or
// len(Groupings) founds a new grouping in colour.
func (p *Player) Place(card deck.Card, idx int, colour deck.Colour) error {
	if idx >= 0 && idx < len(p.Groupings) {
		g := &p.Groupings[idx]
		g.Cards = append(g.Cards, card)
		g.recompute()
		return nil
	}

	if !card.CanFound() {
		return fmt.Errorf("%w: %s cannot start a property set", ErrIllegalPlacement, card)
	}
	if p.GroupingIndex(colour) >= 0 {
		return fmt.Errorf("%w: already have a %s set", ErrIllegalPlacement, colour)
	}

	p.Groupings = append(p.Groupings, newGrouping(colour, card))
	return nil
}

// Remove takes one card out of the grouping of colour. A grouping left
// with no cards is dropped.
func (p *Player) Remove(colour deck.Colour, cardIdx int) (deck.Card, error) {
	idx := p.GroupingIndex(colour)
	if idx < 0 {
		return deck.Card{}, fmt.Errorf("%w: no %s set", ErrIllegalCommand, colour)
	}

	g := &p.Groupings[idx]
	if cardIdx < 0 || cardIdx >= len(g.Cards) {
		return deck.Card{}, fmt.Errorf("%w: no card %d in %s set", ErrIllegalCommand, cardIdx, colour)
	}

	card := g.Cards[cardIdx]
	g.Cards = removeCard(g.Cards, cardIdx)

	if len(g.Cards) == 0 {
		p.Groupings = append(p.Groupings[:idx], p.Groupings[idx+1:]...)
	} else {
		g.recompute()
	}

	return card, nil
}

// receive adds a card that arrived from another player to the grouping of
// colour, founding one if needed.
func (p *Player) receive(card deck.Card, colour deck.Colour) {
	if g, ok := p.Grouping(colour); ok {
		g.Cards = append(g.Cards, card)
		g.recompute()
		return
	}
	p.Groupings = append(p.Groupings, newGrouping(colour, card))
}

// TransferCard moves one card from a grouping of from to to. The card keeps
// the colour it was standing in for.
func TransferCard(from, to *Player, colour deck.Colour, cardIdx int) (deck.Card, error) {
	card, err := from.Remove(colour, cardIdx)
	if err != nil {
		return deck.Card{}, err
	}

	to.receive(card, colour)
	return card, nil
}

// StealGrouping moves a whole grouping, buildings included, from one player
// to another. If the thief already has that colour the two are merged.
func StealGrouping(from, to *Player, colour deck.Colour) (Grouping, error) {
	idx := from.GroupingIndex(colour)
	if idx < 0 {
		return Grouping{}, fmt.Errorf("%w: no %s set to steal", ErrIllegalCommand, colour)
	}

	stolen := from.Groupings[idx]
	from.Groupings = append(from.Groupings[:idx], from.Groupings[idx+1:]...)

	if g, ok := to.Grouping(colour); ok {
		g.Cards = append(g.Cards, stolen.Cards...)
		g.Houses += stolen.Houses
		g.Hotels += stolen.Hotels
		g.recompute()
		return stolen, nil
	}

	to.Groupings = append(to.Groupings, stolen)
	return stolen, nil
}

func cardIndexByID(cards []deck.Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// checkGroupings verifies the grouping invariants for every player
func (s *State) checkGroupings() error {
	for _, p := range s.Players {
		seen := map[deck.Colour]struct{}{}
		for _, g := range p.Groupings {
			if _, dup := seen[g.Colour]; dup {
				return fmt.Errorf("%w: player %d has two %s sets", ErrInvariant, p.ID+1, g.Colour)
			}
			seen[g.Colour] = struct{}{}

			switch {
			case len(g.Cards) == 0:
				return fmt.Errorf("%w: player %d has an empty %s set", ErrInvariant, p.ID+1, g.Colour)
			case g.Required != deck.RequiredCards(g.Colour):
				return fmt.Errorf("%w: %s set requires %d cards, not %d", ErrInvariant, g.Colour, deck.RequiredCards(g.Colour), g.Required)
			case g.Complete != (len(g.Cards) >= g.Required):
				return fmt.Errorf("%w: stale completeness on %s set", ErrInvariant, g.Colour)
			}
		}
	}
	return nil
}
