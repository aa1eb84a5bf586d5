package entities

import (
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

// Rarity is a card rarity tier. Tiers are declared from most common to
// rarest, so comparing two values orders them by rarity.
type Rarity int

// Rarity tiers
const (
	OneDiamond Rarity = iota
	TwoDiamonds
	ThreeDiamonds
	FourDiamonds
	OneStar
	TwoStars
	ThreeStars
	OneShiny
	TwoShinies
	Crown
)

// rarityLiterals is the glyph encoding used by catalog and offering rate files
var rarityLiterals = [...]string{
	OneDiamond:    "♢",
	TwoDiamonds:   "♢♢",
	ThreeDiamonds: "♢♢♢",
	FourDiamonds:  "♢♢♢♢",
	OneStar:       "☆",
	TwoStars:      "☆☆",
	ThreeStars:    "☆☆☆",
	OneShiny:      "✵",
	TwoShinies:    "✵✵",
	Crown:         "♕",
}

var rarityNames = [...]string{
	OneDiamond:    "OneDiamond",
	TwoDiamonds:   "TwoDiamonds",
	ThreeDiamonds: "ThreeDiamonds",
	FourDiamonds:  "FourDiamonds",
	OneStar:       "OneStar",
	TwoStars:      "TwoStars",
	ThreeStars:    "ThreeStars",
	OneShiny:      "OneShiny",
	TwoShinies:    "TwoShinies",
	Crown:         "Crown",
}

var raritiesByLiteral = func() map[string]Rarity {
	m := make(map[string]Rarity, len(rarityLiterals))
	for r, literal := range rarityLiterals {
		m[literal] = Rarity(r)
	}
	return m
}()

// AllRarities returns every tier from most common to rarest
func AllRarities() []Rarity {
	all := make([]Rarity, len(rarityLiterals))
	for i := range rarityLiterals {
		all[i] = Rarity(i)
	}
	return all
}

// RarityLiterals returns the accepted literal encodings in tier order
func RarityLiterals() []string {
	literals := make([]string, len(rarityLiterals))
	copy(literals, rarityLiterals[:])
	return literals
}

// ParseRarity converts a literal such as "♢♢" into its tier.
// Unknown literals return an UnknownRarity error listing the accepted set.
func ParseRarity(literal string) (Rarity, error) {
	r, ok := raritiesByLiteral[literal]
	if !ok {
		return 0, errors.UnknownRarity(literal, RarityLiterals())
	}
	return r, nil
}

// Valid reports whether r is one of the declared tiers
func (r Rarity) Valid() bool {
	return r >= OneDiamond && int(r) < len(rarityLiterals)
}

// String returns the literal encoding
func (r Rarity) String() string {
	if !r.Valid() {
		return "Rarity(?)"
	}
	return rarityLiterals[r]
}

// Name returns the tier name, e.g. "TwoStars"
func (r Rarity) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rarityNames[r]
}
