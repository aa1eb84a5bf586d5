package engine

import (
	"context"
	"math"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

// commonSlots is the number of slots drawn from the common tier
const commonSlots = 3

type engine struct {
	commonSlotPolicy CommonSlotPolicy
	rescaleSlotRates bool
}

// Config holds the modeling choices of the engine
type Config struct {
	// CommonSlotPolicy defaults to CommonSlotZero
	CommonSlotPolicy CommonSlotPolicy

	// RescaleSlotRates divides the slot 4/5 sums by the offering mass that
	// lands on rarities present in the pool, so a fully owned pool scores
	// zero even when the table offers rarities the pool lacks. A pool with
	// no offering mass at all falls back to its overall owned fraction.
	RescaleSlotRates bool
}

// Validate validates the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return nil
	}
	vb := errors.NewValidationBuilder()
	if cfg.CommonSlotPolicy != "" {
		errors.ValidateEnum("CommonSlotPolicy", string(cfg.CommonSlotPolicy), CommonSlotPolicies(), vb)
	}
	return vb.Build()
}

// New creates an engine. A nil config uses the defaults.
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	policy := cfg.CommonSlotPolicy
	if policy == "" {
		policy = CommonSlotZero
	}

	return &engine{
		commonSlotPolicy: policy,
		rescaleSlotRates: cfg.RescaleSlotRates,
	}, nil
}

// NewCardProbability models a pack as five independent slots. Slots 1-3
// draw from the common tier, slots 4 and 5 pick a rarity from the offering
// rate table. Each slot is a duplicate with the owned fraction of the rarity
// it draws; the pack is all duplicates only when every slot is.
func (e *engine) NewCardProbability(_ context.Context, input *NewCardProbabilityInput) (*NewCardProbabilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Pool) == 0 {
		return nil, errors.EmptyCardPool("card pool is empty")
	}
	if input.Rates == nil {
		return nil, errors.InvalidArgument("offering rate table is required")
	}

	if input.Owned != nil && input.Missing != nil {
		return nil, errors.InvalidArgument("give either owned or missing cards, not both")
	}
	owns := input.Owned.Has
	if input.Missing != nil {
		owns = func(number int) bool { return !input.Missing.Has(number) }
	}

	tallies, err := tallyPool(input.Pool, owns)
	if err != nil {
		return nil, err
	}

	out := &NewCardProbabilityOutput{Tallies: tallies}
	for _, t := range tallies {
		out.Owned += t.Owned
		out.Total += t.Total
	}
	poolFraction := float64(out.Owned) / float64(out.Total)

	out.DupCommon = e.commonDuplicate(tallies)
	out.DupFourth = e.slotDuplicate(tallies, input.Rates.FourthCardRate, poolFraction)
	out.DupFifth = e.slotDuplicate(tallies, input.Rates.FifthCardRate, poolFraction)

	out.Probability = clamp01(1 - out.DupCommon*out.DupFourth*out.DupFifth)
	return out, nil
}

// tallyPool counts owned and total cards per rarity. Only rarities with at
// least one card get a tally, so no fraction ever divides by zero.
func tallyPool(pool []*entities.Card, owns func(number int) bool) ([]RarityTally, error) {
	counts := make(map[entities.Rarity]*RarityTally)
	for _, c := range pool {
		if c == nil {
			return nil, errors.InvalidArgument("card pool contains a nil card")
		}
		if !c.Rarity.Valid() {
			return nil, errors.InvalidArgumentf("card %d has invalid rarity %d", c.Number, int(c.Rarity))
		}
		t, ok := counts[c.Rarity]
		if !ok {
			t = &RarityTally{Rarity: c.Rarity}
			counts[c.Rarity] = t
		}
		t.Total++
		if owns(c.Number) {
			t.Owned++
		}
	}

	tallies := make([]RarityTally, 0, len(counts))
	for _, r := range entities.AllRarities() {
		if t, ok := counts[r]; ok {
			tallies = append(tallies, *t)
		}
	}
	return tallies, nil
}

func (e *engine) commonDuplicate(tallies []RarityTally) float64 {
	// tallies are in tier order, so the first entry is the lowest tier present
	common := tallies[0]
	if common.Rarity != entities.OneDiamond && e.commonSlotPolicy == CommonSlotZero {
		return 0
	}
	return math.Pow(common.OwnedFraction(), commonSlots)
}

func (e *engine) slotDuplicate(tallies []RarityTally, rate func(entities.Rarity) float64, poolFraction float64) float64 {
	var mass, dup float64
	for _, t := range tallies {
		r := rate(t.Rarity)
		mass += r
		dup += r * t.OwnedFraction()
	}

	if !e.rescaleSlotRates {
		return dup
	}
	if mass <= 0 {
		return poolFraction
	}
	return dup / mass
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
