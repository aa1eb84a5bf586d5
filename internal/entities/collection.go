package entities

import "sort"

// OwnedSet is the set of card numbers owned within one expansion
type OwnedSet map[int]struct{}

// NewOwnedSet builds a set from card numbers; duplicates collapse
func NewOwnedSet(numbers ...int) OwnedSet {
	s := make(OwnedSet, len(numbers))
	for _, n := range numbers {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether the card number is owned
func (s OwnedSet) Has(number int) bool {
	_, ok := s[number]
	return ok
}

// Numbers returns the owned card numbers in ascending order
func (s OwnedSet) Numbers() []int {
	numbers := make([]int, 0, len(s))
	for n := range s {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Collection maps expansion IDs to the card numbers owned in them.
// Numbers with no matching catalog card are kept but never counted.
type Collection map[string]OwnedSet

// Owned returns the owned set for the expansion, empty when absent
func (c Collection) Owned(expansionID string) OwnedSet {
	if s, ok := c[expansionID]; ok {
		return s
	}
	return OwnedSet{}
}

// ExpansionIDs returns the expansions present in the collection, sorted
func (c Collection) ExpansionIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
