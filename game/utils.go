package game

import (
	"sort"

	"github.com/minaorangina/deal/deck"
)

func removeCard(cards []deck.Card, idx int) []deck.Card {
	out := make([]deck.Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	return append(out, cards[idx+1:]...)
}

func removeCards(cards []deck.Card, indices []int) []deck.Card {
	drop := intSliceToSet(indices)
	out := []deck.Card{}
	for i, c := range cards {
		if _, ok := drop[i]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func intSliceToSet(s []int) map[int]struct{} {
	set := map[int]struct{}{}
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

func setToIntSlice(set map[int]struct{}) []int {
	s := []int{}
	for key := range set {
		s = append(s, key)
	}
	sort.Ints(s)
	return s
}

func uniqueInRange(indices []int, n int) bool {
	set := intSliceToSet(indices)
	if len(set) != len(indices) {
		return false
	}
	for _, i := range setToIntSlice(set) {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}

func containsInt(s []int, target int) bool {
	for _, v := range s {
		if v == target {
			return true
		}
	}
	return false
}
