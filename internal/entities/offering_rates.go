package entities

// OfferingRateTable holds, for the two rare draw slots of a pack, the
// probability that each rarity is offered. Rarities missing from a slot have
// a rate of zero. Tables are not mutated after construction.
type OfferingRateTable struct {
	Name       string
	fourthCard map[Rarity]float64
	fifthCard  map[Rarity]float64
}

// NewOfferingRateTable builds a table from per-slot rate maps. The maps are
// copied; nil maps are treated as empty.
func NewOfferingRateTable(name string, fourthCard, fifthCard map[Rarity]float64) *OfferingRateTable {
	return &OfferingRateTable{
		Name:       name,
		fourthCard: copyRates(fourthCard),
		fifthCard:  copyRates(fifthCard),
	}
}

func copyRates(src map[Rarity]float64) map[Rarity]float64 {
	dst := make(map[Rarity]float64, len(src))
	for r, rate := range src {
		dst[r] = rate
	}
	return dst
}

// FourthCardRate returns the probability that slot 4 offers the rarity
func (t *OfferingRateTable) FourthCardRate(r Rarity) float64 {
	return t.fourthCard[r]
}

// FifthCardRate returns the probability that slot 5 offers the rarity
func (t *OfferingRateTable) FifthCardRate(r Rarity) float64 {
	return t.fifthCard[r]
}

// FourthCardTotal sums every configured slot 4 rate
func (t *OfferingRateTable) FourthCardTotal() float64 {
	return sumRates(t.fourthCard)
}

// FifthCardTotal sums every configured slot 5 rate
func (t *OfferingRateTable) FifthCardTotal() float64 {
	return sumRates(t.fifthCard)
}

// sumRates adds rates in tier order so totals are reproducible
func sumRates(rates map[Rarity]float64) float64 {
	var total float64
	for _, r := range AllRarities() {
		total += rates[r]
	}
	return total
}
