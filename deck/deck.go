package deck

import (
	"errors"
	"math/rand"
	"time"
)

const (
	MinPlayers    = 2
	MaxPlayers    = 4
	HandSize      = 5
	DrawPerTurn   = 2
	EmptyHandDraw = 5
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 4 players allowed")
)

// Shuffler is the source of randomness used for shuffling.
// *rand.Rand satisfies it.
type Shuffler interface {
	Intn(n int) int
}

// NewShuffler returns a Shuffler seeded from seed, or from the clock when seed is 0
func NewShuffler(seed int64) Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Deck is the draw pile. The top of the pile is the end of the slice.
type Deck []Card

// New creates an unshuffled pile holding every card in the catalog
func New(catalog Catalog) Deck {
	d := make(Deck, len(catalog))
	copy(d, catalog)
	return d
}

// Shuffle shuffles the pile in place (Fisher-Yates)
func (d Deck) Shuffle(s Shuffler) {
	for i := len(d) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes up to n cards from the top of the pile.
// It stops quietly when the pile runs out.
func (d *Deck) Draw(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}

	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		last := len(*d) - 1
		drawn = append(drawn, (*d)[last])
		*d = (*d)[:last]
	}
	return drawn
}

// ReturnToBottom puts cards underneath the pile. The first card in the
// batch ends up lowest, so the batch keeps its order.
func (d *Deck) ReturnToBottom(cards []Card) {
	if len(cards) == 0 {
		return
	}
	pile := make(Deck, 0, len(cards)+len(*d))
	pile = append(pile, cards...)
	pile = append(pile, (*d)...)
	*d = pile
}

// DrawCount is the number of cards a draw actually takes: a player with an
// empty hand draws EmptyHandDraw instead of the nominal count.
func DrawCount(handSize, nominal int) int {
	if handSize == 0 {
		return EmptyHandDraw
	}
	return nominal
}

// Deal shuffles the catalog and deals HandSize cards to each player,
// returning the hands and the remaining pile.
func Deal(catalog Catalog, numPlayers int, s Shuffler) ([][]Card, Deck, error) {
	if numPlayers < MinPlayers {
		return nil, nil, ErrTooFewPlayers
	}
	if numPlayers > MaxPlayers {
		return nil, nil, ErrTooManyPlayers
	}

	pile := New(catalog)
	pile.Shuffle(s)

	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = pile.Draw(HandSize)
	}

	return hands, pile, nil
}
