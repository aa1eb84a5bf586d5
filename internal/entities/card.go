package entities

import (
	"sort"
	"strings"
)

// PackSeparator joins pack names in a card's packs column
const PackSeparator = "|"

// Card is a single catalog entry. Number is unique within its expansion.
// A card with no packs belongs to no named pack of its expansion.
type Card struct {
	Name   string
	Number int
	Rarity Rarity
	Packs  map[string]struct{}
}

// NewCard builds a card belonging to the given packs
func NewCard(name string, number int, rarity Rarity, packs ...string) *Card {
	set := make(map[string]struct{}, len(packs))
	for _, p := range packs {
		set[p] = struct{}{}
	}
	return &Card{
		Name:   name,
		Number: number,
		Rarity: rarity,
		Packs:  set,
	}
}

// ParsePacks splits a packs column into pack names. An empty column means
// the card is in no pack.
func ParsePacks(literal string) []string {
	if literal == "" {
		return nil
	}
	return strings.Split(literal, PackSeparator)
}

// InPack reports whether the card can be pulled from the named pack
func (c *Card) InPack(pack string) bool {
	_, ok := c.Packs[pack]
	return ok
}

// PackNames returns the card's packs sorted by name
func (c *Card) PackNames() []string {
	names := make([]string, 0, len(c.Packs))
	for p := range c.Packs {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}
