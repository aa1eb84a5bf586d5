package entities

import "sort"

// Expansion groups the cards of one release. When PackNames is empty the
// whole expansion behaves as a single implicit pack.
type Expansion struct {
	ID                string
	Name              string
	PackNames         []string
	OfferingRateTable string
	Cards             map[int]*Card
}

// Pool is the set of cards one pack can yield
type Pool struct {
	ExpansionID string
	// Pack is empty for the implicit whole-expansion pool
	Pack  string
	Cards []*Card
}

// Label names the pool for display: the pack name, or the expansion name for
// the implicit pool.
func (p Pool) Label(expansion *Expansion) string {
	if p.Pack != "" {
		return p.Pack
	}
	return expansion.Name
}

// HasPacks reports whether the expansion is split into named packs
func (e *Expansion) HasPacks() bool {
	return len(e.PackNames) > 0
}

// CardsIn returns the cards of the named pack ordered by card number.
// An empty pack name selects every card of the expansion.
func (e *Expansion) CardsIn(pack string) []*Card {
	cards := make([]*Card, 0, len(e.Cards))
	for _, c := range e.Cards {
		if pack == "" || c.InPack(pack) {
			cards = append(cards, c)
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Number < cards[j].Number
	})
	return cards
}

// Pools returns one pool per declared pack in declaration order, or the
// implicit whole-expansion pool when no packs are declared.
func (e *Expansion) Pools() []Pool {
	if !e.HasPacks() {
		return []Pool{{ExpansionID: e.ID, Cards: e.CardsIn("")}}
	}

	pools := make([]Pool, 0, len(e.PackNames))
	for _, pack := range e.PackNames {
		pools = append(pools, Pool{
			ExpansionID: e.ID,
			Pack:        pack,
			Cards:       e.CardsIn(pack),
		})
	}
	return pools
}
