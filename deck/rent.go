package deck

import "sort"

// RentTable maps the number of cards in a grouping to the rent owed.
// Plain properties carry a Flat table, wildcards carry one table per colour.
type RentTable struct {
	Flat     map[int]int
	ByColour map[Colour]map[int]int
}

// Empty reports whether the table carries no rent data at all
func (t RentTable) Empty() bool {
	return len(t.Flat) == 0 && len(t.ByColour) == 0
}

// ForColour returns the table that applies to colour, if any.
func (t RentTable) ForColour(colour Colour) (map[int]int, bool) {
	if len(t.ByColour) > 0 {
		table, ok := t.ByColour[colour]
		return table, ok && len(table) > 0
	}
	return t.Flat, len(t.Flat) > 0
}

// Lookup returns the rent for count cards of colour. When count is not a
// key, the highest key below it is used.
func (t RentTable) Lookup(colour Colour, count int) (int, bool) {
	table, ok := t.ForColour(colour)
	if !ok {
		return 0, false
	}
	if rent, ok := table[count]; ok {
		return rent, true
	}
	return closestLower(table, count)
}

func closestLower(table map[int]int, count int) (int, bool) {
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] <= count {
			return table[keys[i]], true
		}
	}
	return 0, false
}
