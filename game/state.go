package game

import "github.com/minaorangina/deal/deck"

// Stage represents where the current turn is up to
type Stage int

const (
	AwaitingDraw Stage = iota
	Acting
	DiscardRequired
	GameOver
)

var stageNames = []string{"AwaitingDraw", "Acting", "DiscardRequired", "GameOver"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}

// Step is the selection an action in progress is waiting for
type Step int

const (
	AwaitingTarget Step = iota + 1
	AwaitingOpponentProperty
	AwaitingOwnProperty
)

var stepNames = map[Step]string{
	AwaitingTarget:           "AwaitingTarget",
	AwaitingOpponentProperty: "AwaitingOpponentProperty",
	AwaitingOwnProperty:      "AwaitingOwnProperty",
}

func (s Step) String() string {
	return stepNames[s]
}

const (
	MaxCardsPlayed = 3
	MaxHandSize    = 7
	SetsToWin      = 3
	noTarget       = -1
	houseRentBonus = 3
	hotelRentBonus = 5
)

// Grouping is one player's cards of a single colour
type Grouping struct {
	Colour   deck.Colour
	Cards    []deck.Card
	Complete bool
	Houses   int
	Hotels   int
	Required int
}

func newGrouping(colour deck.Colour, cards ...deck.Card) Grouping {
	g := Grouping{
		Colour:   colour,
		Cards:    append([]deck.Card{}, cards...),
		Required: deck.RequiredCards(colour),
	}
	g.recompute()
	return g
}

func (g *Grouping) recompute() {
	g.Complete = len(g.Cards) >= g.Required
}

// Player holds everything a player owns
type Player struct {
	ID        int
	Hand      []deck.Card
	Bank      []deck.Card
	Groupings []Grouping
}

// CompleteSets counts the player's complete groupings
func (p *Player) CompleteSets() int {
	n := 0
	for _, g := range p.Groupings {
		if g.Complete {
			n++
		}
	}
	return n
}

// Selection records a card chosen during a multi-step action
type Selection struct {
	Player int
	Colour deck.Colour
	CardID string
	Card   deck.Card
}

// Pending is the action card whose effect is waiting on player choices.
// The card itself has already been spent.
type Pending struct {
	Step   Step
	Card   deck.Card
	Target int
	Chosen *Selection
}

// State is a complete game snapshot. Apply never modifies the State it is
// given, so a snapshot can be handed to renderers as-is.
type State struct {
	Players     []*Player
	Pile        deck.Deck
	Current     int
	CardsPlayed int
	HasDrawn    bool
	Stage       Stage
	ActionArea  []deck.Card
	Pending     *Pending
	Winner      *int
}

// GameOver reports whether a winner has been found
func (s *State) GameOver() bool {
	return s.Stage == GameOver
}

// CurrentPlayer returns the player whose turn it is
func (s *State) CurrentPlayer() *Player {
	return s.Players[s.Current]
}

// Clone returns a deep copy of the snapshot. Cards are shared values.
func (s *State) Clone() *State {
	c := &State{
		Players:     make([]*Player, len(s.Players)),
		Pile:        append(deck.Deck{}, s.Pile...),
		Current:     s.Current,
		CardsPlayed: s.CardsPlayed,
		HasDrawn:    s.HasDrawn,
		Stage:       s.Stage,
		ActionArea:  append([]deck.Card{}, s.ActionArea...),
	}

	for i, p := range s.Players {
		cp := &Player{
			ID:        p.ID,
			Hand:      append([]deck.Card{}, p.Hand...),
			Bank:      append([]deck.Card{}, p.Bank...),
			Groupings: make([]Grouping, len(p.Groupings)),
		}
		for j, g := range p.Groupings {
			g.Cards = append([]deck.Card{}, g.Cards...)
			cp.Groupings[j] = g
		}
		c.Players[i] = cp
	}

	if s.Pending != nil {
		pending := *s.Pending
		if s.Pending.Chosen != nil {
			chosen := *s.Pending.Chosen
			pending.Chosen = &chosen
		}
		c.Pending = &pending
	}

	if s.Winner != nil {
		w := *s.Winner
		c.Winner = &w
	}

	return c
}
