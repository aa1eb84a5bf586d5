package ranking

import (
	"github.com/KirkDiggler/pack-odds/internal/engine"
	"github.com/KirkDiggler/pack-odds/internal/entities"
	rankingrepo "github.com/KirkDiggler/pack-odds/internal/repositories/ranking"
)

// DefaultTolerance is how far a slot's total rate may drift from 1
const DefaultTolerance = 1e-6

// RankInput defines the request for ranking packs against a collection
type RankInput struct {
	Collection entities.Collection
	// Publish stores the ranking as a snapshot; requires a ranking store
	Publish bool
}

// PackOdds is the result for one pack
type PackOdds struct {
	ExpansionID   string
	ExpansionName string
	// Pack is empty for an expansion without named packs
	Pack   string
	Label  string
	Result *engine.NewCardProbabilityOutput
}

// Entry converts the result into its published form
func (p *PackOdds) Entry() entities.RankingEntry {
	return entities.RankingEntry{
		ExpansionID:   p.ExpansionID,
		ExpansionName: p.ExpansionName,
		Pack:          p.Pack,
		Probability:   p.Result.Probability,
		Owned:         p.Result.Owned,
		Total:         p.Result.Total,
	}
}

// RankOutput defines the response for ranking packs
type RankOutput struct {
	// Packs ordered by descending probability, then expansion ID, then pack
	Packs []*PackOdds
	// SnapshotID is set when the ranking was published
	SnapshotID string
}

// ValidateOfferingRatesInput defines the request for checking rate tables
type ValidateOfferingRatesInput struct {
	// Tolerance defaults to DefaultTolerance when zero
	Tolerance float64
}

// TableCheck reports the slot totals of one table
type TableCheck struct {
	Name        string
	FourthTotal float64
	FifthTotal  float64
	FourthOK    bool
	FifthOK     bool
	// UsedBy lists the expansions referencing the table, sorted
	UsedBy []string
}

// OK reports whether both slots sum to one
func (c TableCheck) OK() bool {
	return c.FourthOK && c.FifthOK
}

// UnresolvedReference is an expansion naming a table that does not exist
type UnresolvedReference struct {
	ExpansionID string
	Table       string
}

// ValidateOfferingRatesOutput defines the response for checking rate tables
type ValidateOfferingRatesOutput struct {
	Tolerance  float64
	Tables     []TableCheck
	Unresolved []UnresolvedReference
}

// Valid reports whether every table sums to one and every reference resolves
func (o *ValidateOfferingRatesOutput) Valid() bool {
	if len(o.Unresolved) > 0 {
		return false
	}
	for _, t := range o.Tables {
		if !t.OK() {
			return false
		}
	}
	return true
}

// ListPacksInput defines the request for listing packs
type ListPacksInput struct{}

// PoolSummary describes one pack of an expansion
type PoolSummary struct {
	Pack  string
	Label string
	Cards int
}

// ExpansionSummary describes one expansion and its packs
type ExpansionSummary struct {
	ID                string
	Name              string
	OfferingRateTable string
	Cards             int
	Pools             []PoolSummary
}

// ListPacksOutput defines the response for listing packs
type ListPacksOutput struct {
	// Expansions sorted by ID
	Expansions []ExpansionSummary
}

// ListSnapshotsInput defines the request for listing published rankings
type ListSnapshotsInput struct {
	Limit int
}

// ListSnapshotsOutput defines the response for listing published rankings
type ListSnapshotsOutput struct {
	Snapshots []*entities.RankingSnapshot
}

// GetSnapshotInput defines the request for reading one published ranking
type GetSnapshotInput struct {
	ID string
	// Top limits Packs to the best N; zero returns all
	Top int
}

// GetSnapshotOutput defines the response for reading one published ranking
type GetSnapshotOutput struct {
	Snapshot *entities.RankingSnapshot
	Packs    []rankingrepo.ScoredPack
}
