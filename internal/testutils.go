package internal

import (
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/minaorangina/deal/deck"
)

var fixtureID int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-test-%d", prefix, atomic.AddInt64(&fixtureID, 1))
}

// Money returns a money card worth value
func Money(value int) deck.Card {
	return deck.Card{
		ID:       nextID("money"),
		Name:     fmt.Sprintf("%dM", value),
		Category: deck.Money,
		Value:    value,
	}
}

// Property returns a plain property card of colour, carrying the rent table
// the built-in catalog uses for that colour
func Property(colour deck.Colour) deck.Card {
	card := deck.Card{
		Category: deck.Property,
		Value:    1,
		Colour:   colour,
		Mode:     deck.Single,
	}
	for _, c := range deck.DefaultCatalog() {
		if c.Category == deck.Property && c.Colour == colour {
			card = c
			break
		}
	}
	card.ID = nextID(string(colour))
	return card
}

// BareProperty returns a property of colour with no rent data
func BareProperty(colour deck.Colour) deck.Card {
	return deck.Card{
		ID:       nextID(string(colour)),
		Category: deck.Property,
		Value:    1,
		Colour:   colour,
		Mode:     deck.Single,
	}
}

// DualWild returns a two-colour wildcard from the built-in catalog, or a bare
// one if the catalog has no such pairing
func DualWild(a, b deck.Colour) deck.Card {
	card := deck.Card{
		Category:  deck.Wildcard,
		Value:     2,
		Colour:    a,
		Secondary: b,
		Mode:      deck.Dual,
	}
	for _, c := range deck.DefaultCatalog() {
		if c.Mode == deck.Dual && c.Colour == a && c.Secondary == b {
			card = c
			break
		}
	}
	card.ID = nextID("wild")
	return card
}

// AnyWild returns a universal wildcard
func AnyWild() deck.Card {
	return deck.Card{
		ID:       nextID("wild-any"),
		Name:     "Any Colour Wildcard",
		Category: deck.Wildcard,
		Colour:   deck.AnyColour,
		Mode:     deck.Universal,
	}
}

// ActionCard returns an action card of kind
func ActionCard(kind deck.ActionKind) deck.Card {
	return deck.Card{
		ID:       nextID(string(kind)),
		Name:     string(kind),
		Category: deck.Action,
		Value:    2,
		Action:   kind,
	}
}

// RentCard returns a rent action card for colours
func RentCard(colours ...deck.Colour) deck.Card {
	card := ActionCard(deck.Rent)
	card.Value = 1
	card.RentColours = colours
	return card
}

// Cards builds n money cards, handy for filling hands and piles
func Cards(n int) []deck.Card {
	cards := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, Money(1))
	}
	return cards
}

// IDs returns the ids of cards, in order
func IDs(cards []deck.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// FailureMessage returns a failure message for a failed test
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()

	t.Errorf("\nGot: %+v\nwant: %+v", got, want)
}

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrored checks for the existence of an error
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, but got nil")
	}
}

// AssertDeepEqual checks that the values are equal
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}
