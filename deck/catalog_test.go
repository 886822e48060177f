package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	counts := map[Category]int{}
	for _, c := range catalog {
		counts[c.Category]++
	}

	assert.Equal(t, 20, counts[Money])
	assert.Equal(t, 28, counts[Property])
	assert.Equal(t, 11, counts[Wildcard])
	assert.Equal(t, 39, counts[Action])

	t.Run("universal wildcards cannot be banked or found groupings", func(t *testing.T) {
		card, ok := findCard(catalog, "wild-any-1")
		require.True(t, ok)

		assert.Equal(t, Universal, card.Mode)
		assert.Equal(t, 0, card.Value)
		assert.False(t, card.CanFound())
		assert.True(t, card.Matches(Green))
	})

	t.Run("dual wildcards carry a rent table per colour", func(t *testing.T) {
		card, ok := findCard(catalog, "wild-darkblue-green")
		require.True(t, ok)

		rent, ok := card.Rent.Lookup(DarkBlue, 2)
		assert.True(t, ok)
		assert.Equal(t, 8, rent)

		rent, ok = card.Rent.Lookup(Green, 3)
		assert.True(t, ok)
		assert.Equal(t, 7, rent)

		_, ok = card.Rent.Lookup(Red, 1)
		assert.False(t, ok)
	})

	t.Run("rent cards name their colours", func(t *testing.T) {
		card, ok := findCard(catalog, "rent-red-yellow-2")
		require.True(t, ok)
		assert.Equal(t, []Colour{Red, Yellow}, card.RentColours)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("expands counts into numbered ids", func(t *testing.T) {
		c, err := LoadCatalog(strings.NewReader(`
cards:
  - {id: m, category: money, value: 2, count: 3}
  - {id: p, category: property, value: 1, colour: brown, rent: {1: 1, 2: 2}}
`))
		require.NoError(t, err)
		require.Len(t, c, 4)
		assert.Equal(t, "m-1", c[0].ID)
		assert.Equal(t, "m-3", c[2].ID)
		assert.Equal(t, map[int]int{1: 1, 2: 2}, c[3].Rent.Flat)
	})

	cases := []struct {
		name string
		yaml string
	}{
		{"no cards", `cards: []`},
		{"unknown category", `cards: [{id: x, category: joker}]`},
		{"duplicate ids", `cards: [{id: x, category: money, value: 1}, {id: x, category: money, value: 1}]`},
		{"property without colour", `cards: [{id: x, category: property, value: 1}]`},
		{"dual wildcard with one colour", `cards: [{id: x, category: wildcard, mode: dual, colour: red}]`},
		{"unknown action", `cards: [{id: x, category: action, action: just-say-no}]`},
		{"rent card without colours", `cards: [{id: x, category: action, action: rent}]`},
		{"not yaml", `cards: [`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestRequiredCards(t *testing.T) {
	cases := map[Colour]int{
		Brown: 2, DarkBlue: 2, Mint: 2,
		LightBlue: 3, Pink: 3, Orange: 3, Red: 3, Yellow: 3, Green: 3,
		Black: 4,
		"purple": 1,
	}

	for colour, want := range cases {
		assert.Equal(t, want, RequiredCards(colour), colour)
		assert.Equal(t, RequiredCards(colour), RequiredCards(colour))
	}
}

func TestRentLookup(t *testing.T) {
	table := RentTable{Flat: map[int]int{1: 1, 2: 3, 4: 9}}

	cases := []struct {
		count, want int
		ok          bool
	}{
		{1, 1, true},
		{2, 3, true},
		{3, 3, true},
		{4, 9, true},
		{6, 9, true},
		{0, 0, false},
	}

	for _, tc := range cases {
		got, ok := table.Lookup(Red, tc.count)
		assert.Equal(t, tc.ok, ok, "count %d", tc.count)
		assert.Equal(t, tc.want, got, "count %d", tc.count)
	}
}

func findCard(catalog Catalog, id string) (Card, bool) {
	for _, card := range catalog {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}
