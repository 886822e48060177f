package game

import (
	"fmt"

	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/protocol"
)

// CanPlace reports whether card may go to dest for player p.
// It has no side effects.
func CanPlace(p *Player, card deck.Card, dest protocol.Destination) error {
	switch dest.Area {
	case protocol.Bank:
		return canBank(card)
	case protocol.PropertyArea:
		_, err := groupingColour(p, card, dest)
		return err
	case protocol.ActionArea:
		if card.Category != deck.Action {
			return fmt.Errorf("%w: only action cards can be played as actions", ErrIllegalPlacement)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown destination %d", ErrIllegalPlacement, dest.Area)
}

func canBank(card deck.Card) error {
	switch card.Category {
	case deck.Money, deck.Action:
		return nil
	case deck.Wildcard:
		if card.Value == 0 {
			return fmt.Errorf("%w: %s has no value to bank", ErrIllegalPlacement, card)
		}
	}
	return fmt.Errorf("%w: %s cards cannot be banked", ErrIllegalPlacement, card.Category)
}

func isNewGrouping(p *Player, idx int) bool {
	return idx == protocol.NewGrouping || idx == len(p.Groupings)
}

// groupingColour works out which colour card would join at dest
func groupingColour(p *Player, card deck.Card, dest protocol.Destination) (deck.Colour, error) {
	if !card.IsPropertyLike() {
		return "", fmt.Errorf("%w: only properties and wildcards go in property sets", ErrIllegalPlacement)
	}

	if !isNewGrouping(p, dest.Grouping) {
		if dest.Grouping < 0 || dest.Grouping >= len(p.Groupings) {
			return "", fmt.Errorf("%w: no property set %d", ErrIllegalPlacement, dest.Grouping)
		}
		g := p.Groupings[dest.Grouping]
		if !card.Matches(g.Colour) {
			return "", fmt.Errorf("%w: %s does not fit a %s set", ErrIllegalPlacement, card, g.Colour)
		}
		return g.Colour, nil
	}

	if !card.CanFound() {
		return "", fmt.Errorf("%w: %s must be added to an existing property set", ErrIllegalPlacement, card)
	}

	colour := card.Colour
	if dest.Colour != "" {
		colour = deck.Colour(dest.Colour)
	}
	if !containsColour(card.Colours(), colour) {
		return "", fmt.Errorf("%w: %s cannot start a %s set", ErrIllegalPlacement, card, colour)
	}
	if p.GroupingIndex(colour) >= 0 {
		return "", fmt.Errorf("%w: already have a %s set", ErrIllegalPlacement, colour)
	}

	return colour, nil
}

func containsColour(colours []deck.Colour, c deck.Colour) bool {
	for _, colour := range colours {
		if colour == c {
			return true
		}
	}
	return false
}
