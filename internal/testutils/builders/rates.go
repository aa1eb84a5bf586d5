package builders

import (
	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// TwoTierRates builds a table over OneDiamond and TwoDiamonds only
func TwoTierRates(name string, fourthCommon, fifthCommon float64) *entities.OfferingRateTable {
	return entities.NewOfferingRateTable(name,
		map[entities.Rarity]float64{
			entities.OneDiamond:  fourthCommon,
			entities.TwoDiamonds: 1 - fourthCommon,
		},
		map[entities.Rarity]float64{
			entities.OneDiamond:  fifthCommon,
			entities.TwoDiamonds: 1 - fifthCommon,
		},
	)
}

// Tables keys rate tables by name the way the offering rates repository returns them
func Tables(tables ...*entities.OfferingRateTable) map[string]*entities.OfferingRateTable {
	byName := make(map[string]*entities.OfferingRateTable, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}
	return byName
}
