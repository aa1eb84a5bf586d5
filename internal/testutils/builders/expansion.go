// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// ExpansionBuilder provides a fluent interface for building test Expansion instances
type ExpansionBuilder struct {
	expansion *entities.Expansion
}

// NewExpansionBuilder creates a new builder with minimal defaults: no packs,
// no cards, and the "standard" offering rate table
func NewExpansionBuilder(id string) *ExpansionBuilder {
	return &ExpansionBuilder{
		expansion: &entities.Expansion{
			ID:                id,
			Name:              id,
			OfferingRateTable: "standard",
			Cards:             make(map[int]*entities.Card),
		},
	}
}

// WithName sets the display name
func (b *ExpansionBuilder) WithName(name string) *ExpansionBuilder {
	b.expansion.Name = name
	return b
}

// WithPacks declares named packs in order
func (b *ExpansionBuilder) WithPacks(packs ...string) *ExpansionBuilder {
	b.expansion.PackNames = append(b.expansion.PackNames, packs...)
	return b
}

// WithTable sets the offering rate table name
func (b *ExpansionBuilder) WithTable(table string) *ExpansionBuilder {
	b.expansion.OfferingRateTable = table
	return b
}

// WithCard adds a card; the name is derived from the number
func (b *ExpansionBuilder) WithCard(number int, rarity entities.Rarity, packs ...string) *ExpansionBuilder {
	b.expansion.Cards[number] = entities.NewCard(cardName(number), number, rarity, packs...)
	return b
}

// Build returns the built expansion
func (b *ExpansionBuilder) Build() *entities.Expansion {
	return b.expansion
}

// Catalog keys expansions by ID the way the catalog repository returns them
func Catalog(expansions ...*entities.Expansion) map[string]*entities.Expansion {
	catalog := make(map[string]*entities.Expansion, len(expansions))
	for _, e := range expansions {
		catalog[e.ID] = e
	}
	return catalog
}

func cardName(number int) string {
	names := []string{"Bulbasaur", "Charmander", "Squirtle", "Pikachu", "Mewtwo", "Eevee"}
	return names[(number-1+len(names))%len(names)]
}
