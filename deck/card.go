package deck

import "fmt"

// Category is the broad kind of a card
type Category int

const (
	Money Category = iota
	Property
	Action
	Wildcard
)

var categoryNames = []string{"money", "property", "action", "wildcard"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ColourMode says how a property or wildcard relates to colours
type ColourMode int

const (
	Single ColourMode = iota
	Dual
	Universal
)

var colourModeNames = []string{"single", "dual", "universal"}

func (m ColourMode) String() string {
	if m < 0 || int(m) >= len(colourModeNames) {
		return "unknown"
	}
	return colourModeNames[m]
}

// ActionKind identifies what an action card does when played as an action
type ActionKind string

const (
	NoAction      ActionKind = ""
	DebtCollector ActionKind = "debt-collector"
	Birthday      ActionKind = "birthday"
	PassGo        ActionKind = "pass-go"
	Rent          ActionKind = "rent"
	DealBreaker   ActionKind = "deal-breaker"
	SlyDeal       ActionKind = "sly-deal"
	ForcedDeal    ActionKind = "forced-deal"
	House         ActionKind = "house"
	Hotel         ActionKind = "hotel"
)

var actionKinds = map[ActionKind]struct{}{
	DebtCollector: {},
	Birthday:      {},
	PassGo:        {},
	Rent:          {},
	DealBreaker:   {},
	SlyDeal:       {},
	ForcedDeal:    {},
	House:         {},
	Hotel:         {},
}

// Card is an entry in the catalog. Cards are values and are never
// mutated once loaded; they only move between containers.
type Card struct {
	ID          string
	Name        string
	Category    Category
	Value       int
	Colour      Colour
	Secondary   Colour
	Mode        ColourMode
	Action      ActionKind
	RentColours []Colour
	Rent        RentTable
}

// IsPropertyLike reports whether the card can sit in a property grouping
func (c Card) IsPropertyLike() bool {
	return c.Category == Property || c.Category == Wildcard
}

// CanFound reports whether the card may start a new grouping
func (c Card) CanFound() bool {
	return c.IsPropertyLike() && c.Mode != Universal
}

// Matches reports whether the card may belong to a grouping of colour.
func (c Card) Matches(colour Colour) bool {
	if !c.IsPropertyLike() {
		return false
	}
	switch c.Mode {
	case Universal:
		return true
	case Dual:
		return c.Colour == colour || c.Secondary == colour
	}
	return c.Colour == colour
}

// Colours lists the colours the card can found a grouping under
func (c Card) Colours() []Colour {
	switch {
	case !c.CanFound():
		return nil
	case c.Mode == Dual:
		return []Colour{c.Colour, c.Secondary}
	}
	return []Colour{c.Colour}
}

func (c Card) String() string {
	if c.Name != "" {
		return c.Name
	}
	switch c.Category {
	case Money:
		return fmt.Sprintf("%dM", c.Value)
	case Action:
		return string(c.Action)
	}
	return fmt.Sprintf("%s %s", c.Colour, c.Category)
}
