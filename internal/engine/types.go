package engine

import (
	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// CommonSlotPolicy decides how the three common slots are modeled when the
// pool has no OneDiamond cards
type CommonSlotPolicy string

const (
	// CommonSlotLowestTier draws the common slots from the lowest rarity
	// tier present in the pool
	CommonSlotLowestTier CommonSlotPolicy = "lowest-tier"

	// CommonSlotZero treats the common slots as never all duplicates
	CommonSlotZero CommonSlotPolicy = "zero"
)

// CommonSlotPolicies lists the accepted policy values
func CommonSlotPolicies() []string {
	return []string{string(CommonSlotLowestTier), string(CommonSlotZero)}
}

// NewCardProbabilityInput is one pool to evaluate. Ownership is given
// either as Owned or as Missing, never both; with neither, nothing is owned.
type NewCardProbabilityInput struct {
	Pool  []*entities.Card
	Rates *entities.OfferingRateTable
	Owned entities.OwnedSet

	// Missing lists the pool's card numbers not yet owned; every other
	// pool card counts as owned
	Missing entities.OwnedSet
}

// RarityTally counts the pool's cards of one rarity
type RarityTally struct {
	Rarity entities.Rarity
	Owned  int
	Total  int
}

// OwnedFraction is Owned/Total; Total is never zero for a tally in an output
func (t RarityTally) OwnedFraction() float64 {
	return float64(t.Owned) / float64(t.Total)
}

// NewCardProbabilityOutput holds the probability and the intermediate terms
// that produced it
type NewCardProbabilityOutput struct {
	Probability float64

	// Probabilities that each group of slots yields only duplicates
	DupCommon float64
	DupFourth float64
	DupFifth  float64

	// Tallies has one entry per rarity present in the pool, in tier order
	Tallies []RarityTally
	Owned   int
	Total   int
}
