package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityShuffler never swaps, leaving the pile in catalog order
type identityShuffler struct{}

func (identityShuffler) Intn(n int) int { return n - 1 }

// recordingShuffler returns zeros and remembers the bounds it was asked for
type recordingShuffler struct {
	bounds []int
}

func (r *recordingShuffler) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	return 0
}

func moneyCards(values ...int) []Card {
	cards := []Card{}
	for i, v := range values {
		cards = append(cards, Card{ID: string(rune('a' + i)), Category: Money, Value: v})
	}
	return cards
}

func TestDeal(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("deals five cards to each player", func(t *testing.T) {
		for numPlayers := MinPlayers; numPlayers <= MaxPlayers; numPlayers++ {
			hands, pile, err := Deal(catalog, numPlayers, NewShuffler(7))
			require.NoError(t, err)
			require.Len(t, hands, numPlayers)

			for _, h := range hands {
				assert.Len(t, h, HandSize)
			}
			assert.Len(t, pile, len(catalog)-numPlayers*HandSize)
		}
	})

	t.Run("every catalog card is dealt or left in the pile exactly once", func(t *testing.T) {
		hands, pile, err := Deal(catalog, 3, NewShuffler(99))
		require.NoError(t, err)

		seen := map[string]int{}
		for _, h := range hands {
			for _, c := range h {
				seen[c.ID]++
			}
		}
		for _, c := range pile {
			seen[c.ID]++
		}

		assert.Len(t, seen, len(catalog))
		for id, n := range seen {
			assert.Equal(t, 1, n, id)
		}
	})

	t.Run("rejects player counts outside 2-4", func(t *testing.T) {
		_, _, err := Deal(catalog, 1, identityShuffler{})
		assert.ErrorIs(t, err, ErrTooFewPlayers)

		_, _, err = Deal(catalog, 5, identityShuffler{})
		assert.ErrorIs(t, err, ErrTooManyPlayers)
	})

	t.Run("same seed deals the same game", func(t *testing.T) {
		h1, p1, err := Deal(catalog, 2, NewShuffler(42))
		require.NoError(t, err)
		h2, p2, err := Deal(catalog, 2, NewShuffler(42))
		require.NoError(t, err)

		assert.Equal(t, h1, h2)
		assert.Equal(t, p1, p2)
	})
}

func TestShuffle(t *testing.T) {
	t.Run("asks for indices in [0, i]", func(t *testing.T) {
		d := Deck(moneyCards(1, 2, 3, 4, 5))
		s := &recordingShuffler{}
		d.Shuffle(s)

		assert.Equal(t, []int{5, 4, 3, 2}, s.bounds)
	})

	t.Run("identity shuffler leaves the pile alone", func(t *testing.T) {
		cards := moneyCards(1, 2, 3)
		d := Deck(append([]Card{}, cards...))
		d.Shuffle(identityShuffler{})

		assert.Equal(t, Deck(cards), d)
	})
}

func TestDraw(t *testing.T) {
	t.Run("draws from the top", func(t *testing.T) {
		d := Deck(moneyCards(1, 2, 3, 4))
		drawn := d.Draw(2)

		assert.Equal(t, []int{4, 3}, []int{drawn[0].Value, drawn[1].Value})
		assert.Len(t, d, 2)
	})

	t.Run("stops when the pile is exhausted", func(t *testing.T) {
		d := Deck(moneyCards(1))
		drawn := d.Draw(5)

		assert.Len(t, drawn, 1)
		assert.Empty(t, d)
		assert.Empty(t, d.Draw(2))
	})

	t.Run("empty hand draws five", func(t *testing.T) {
		assert.Equal(t, EmptyHandDraw, DrawCount(0, DrawPerTurn))
		assert.Equal(t, DrawPerTurn, DrawCount(1, DrawPerTurn))
	})
}

func TestReturnToBottom(t *testing.T) {
	d := Deck(moneyCards(1, 2, 3))
	before := append(Deck{}, d...)

	drawn := d.Draw(2)
	d.ReturnToBottom(drawn)

	t.Log("the pile holds the same cards again")
	assert.ElementsMatch(t, before, d)

	t.Log("and the returned batch sits underneath in discard order")
	assert.Equal(t, drawn, []Card(d[:2]))
	assert.Equal(t, before[0], d[2])
}
