package game

import (
	"sort"

	"github.com/minaorangina/deal/deck"
)

// BankTotal is the face value of a pile of cards
func BankTotal(cards []deck.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value
	}
	return total
}

// Settle moves money from payer's bank to payee's bank to cover due.
// Cards are taken cheapest first until the target is reached, so the payer
// may overpay; no change is given. A payer who cannot cover the debt hands
// over everything they have. The value actually handed over is returned.
func Settle(payer, payee *Player, due int) int {
	target := due
	if total := BankTotal(payer.Bank); total < target {
		target = total
	}
	if target <= 0 {
		return 0
	}

	order := make([]int, len(payer.Bank))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return payer.Bank[order[a]].Value < payer.Bank[order[b]].Value
	})

	paying := map[int]struct{}{}
	paid := 0
	for _, i := range order {
		if paid >= target {
			break
		}
		paying[i] = struct{}{}
		paid += payer.Bank[i].Value
	}

	kept := []deck.Card{}
	moved := []deck.Card{}
	for _, i := range order {
		if _, ok := paying[i]; ok {
			moved = append(moved, payer.Bank[i])
		}
	}
	for i, c := range payer.Bank {
		if _, ok := paying[i]; !ok {
			kept = append(kept, c)
		}
	}

	payer.Bank = kept
	payee.Bank = append(payee.Bank, moved...)

	return paid
}

// CalculateRent is the rent a grouping charges. Plain property rent tables
// are preferred over wildcard tables; a grouping with no rent data at all
// charges one per card. Houses and hotels add a flat bonus.
func CalculateRent(g Grouping) int {
	count := len(g.Cards)
	if count == 0 {
		return 0
	}

	rent, found := rentFrom(g, deck.Property)
	if !found {
		rent, found = rentFrom(g, deck.Wildcard)
	}
	if !found {
		rent = count
	}

	return rent + g.Houses*houseRentBonus + g.Hotels*hotelRentBonus
}

func rentFrom(g Grouping, category deck.Category) (int, bool) {
	for _, c := range g.Cards {
		if c.Category != category {
			continue
		}
		if rent, ok := c.Rent.Lookup(g.Colour, len(g.Cards)); ok {
			return rent, true
		}
	}
	return 0, false
}
