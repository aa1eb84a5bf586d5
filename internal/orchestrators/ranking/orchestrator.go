// Package ranking implements the orchestrator that ranks packs by the
// chance of pulling a card the player does not own yet
package ranking

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pack-odds/internal/engine"
	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/pkg/clock"
	"github.com/KirkDiggler/pack-odds/internal/pkg/idgen"
	"github.com/KirkDiggler/pack-odds/internal/repositories/catalog"
	offeringrates "github.com/KirkDiggler/pack-odds/internal/repositories/offering_rates"
	rankingrepo "github.com/KirkDiggler/pack-odds/internal/repositories/ranking"
)

// Service defines the interface for ranking operations
type Service interface {
	// Rank computes the new-card probability of every pack of every
	// expansion present in the collection
	Rank(ctx context.Context, input *RankInput) (*RankOutput, error)

	// ValidateOfferingRates checks that every table's slots sum to one and
	// that every expansion's table reference resolves
	ValidateOfferingRates(ctx context.Context, input *ValidateOfferingRatesInput) (*ValidateOfferingRatesOutput, error)

	// ListPacks describes the catalog
	ListPacks(ctx context.Context, input *ListPacksInput) (*ListPacksOutput, error)

	// Published rankings
	ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error)
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)
}

// Config holds the dependencies for the ranking orchestrator
type Config struct {
	CatalogRepo       catalog.Repository
	OfferingRatesRepo offeringrates.Repository
	Engine            engine.Engine

	// RankingRepo is optional; without it rankings cannot be published
	RankingRepo rankingrepo.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// Workers bounds parallel pack computations; zero uses every CPU
	Workers int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.OfferingRatesRepo == nil {
		vb.RequiredField("OfferingRatesRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.RankingRepo != nil {
		if c.Clock == nil {
			vb.Field("Clock", "is required when RankingRepo is set")
		}
		if c.IDGenerator == nil {
			vb.Field("IDGenerator", "is required when RankingRepo is set")
		}
	}
	if c.Workers < 0 {
		vb.InvalidField("Workers", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo       catalog.Repository
	offeringRatesRepo offeringrates.Repository
	engine            engine.Engine
	rankingRepo       rankingrepo.Repository
	clock             clock.Clock
	idGen             idgen.Generator
	workers           int
}

// NewOrchestrator creates a new ranking orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return &orchestrator{
		catalogRepo:       cfg.CatalogRepo,
		offeringRatesRepo: cfg.OfferingRatesRepo,
		engine:            cfg.Engine,
		rankingRepo:       cfg.RankingRepo,
		clock:             cfg.Clock,
		idGen:             cfg.IDGenerator,
		workers:           workers,
	}, nil
}

// poolJob is one engine invocation
type poolJob struct {
	expansion *entities.Expansion
	pool      entities.Pool
	table     *entities.OfferingRateTable
	owned     entities.OwnedSet
}

func (o *orchestrator) Rank(ctx context.Context, input *RankInput) (*RankOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Publish && o.rankingRepo == nil {
		return nil, errors.InvalidArgument("publishing requires a ranking store")
	}

	expansions, tables, err := o.loadStatic(ctx)
	if err != nil {
		return nil, err
	}

	var jobs []poolJob
	for _, id := range input.Collection.ExpansionIDs() {
		expansion, ok := expansions[id]
		if !ok {
			return nil, errors.NotFoundf("expansion %s is not in the catalog", id).
				WithMeta("expansion_id", id)
		}

		table, ok := tables[expansion.OfferingRateTable]
		if !ok {
			return nil, errors.UnresolvedOfferingTable(id, expansion.OfferingRateTable)
		}

		for _, pool := range expansion.Pools() {
			jobs = append(jobs, poolJob{
				expansion: expansion,
				pool:      pool,
				table:     table,
				owned:     input.Collection.Owned(id),
			})
		}
	}

	packs, err := o.computePools(ctx, jobs)
	if err != nil {
		return nil, err
	}
	sortPacks(packs)

	slog.InfoContext(ctx, "ranked packs",
		"expansions", len(input.Collection),
		"packs", len(packs))

	output := &RankOutput{Packs: packs}
	if input.Publish {
		id, err := o.publish(ctx, packs)
		if err != nil {
			return nil, err
		}
		output.SnapshotID = id
	}

	return output, nil
}

// loadStatic reads the catalog and the rate tables concurrently
func (o *orchestrator) loadStatic(ctx context.Context) (map[string]*entities.Expansion, map[string]*entities.OfferingRateTable, error) {
	var (
		expansions map[string]*entities.Expansion
		tables     map[string]*entities.OfferingRateTable
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.catalogRepo.ListExpansions(gctx, catalog.ListExpansionsInput{})
		if err != nil {
			return errors.Wrap(err, "failed to load catalog")
		}
		expansions = out.Expansions
		return nil
	})
	g.Go(func() error {
		out, err := o.offeringRatesRepo.ListTables(gctx, offeringrates.ListTablesInput{})
		if err != nil {
			return errors.Wrap(err, "failed to load offering rates")
		}
		tables = out.Tables
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	slog.DebugContext(ctx, "loaded static data",
		"expansions", len(expansions),
		"tables", len(tables))

	return expansions, tables, nil
}

// computePools runs the engine over every job. Results land at the job's
// index so the output does not depend on scheduling.
func (o *orchestrator) computePools(ctx context.Context, jobs []poolJob) ([]*PackOdds, error) {
	packs := make([]*PackOdds, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, job := range jobs {
		g.Go(func() error {
			result, err := o.engine.NewCardProbability(gctx, &engine.NewCardProbabilityInput{
				Pool:  job.pool.Cards,
				Rates: job.table,
				Owned: job.owned,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to compute %s", job.pool.Label(job.expansion)).
					WithMeta("expansion_id", job.expansion.ID).
					WithMeta("pack", job.pool.Pack)
			}

			packs[i] = &PackOdds{
				ExpansionID:   job.expansion.ID,
				ExpansionName: job.expansion.Name,
				Pack:          job.pool.Pack,
				Label:         job.pool.Label(job.expansion),
				Result:        result,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return packs, nil
}

// sortPacks orders by descending probability; ties fall back to expansion
// ID and then pack name so equal inputs always rank the same way
func sortPacks(packs []*PackOdds) {
	sort.SliceStable(packs, func(i, j int) bool {
		a, b := packs[i], packs[j]
		if a.Result.Probability != b.Result.Probability {
			return a.Result.Probability > b.Result.Probability
		}
		if a.ExpansionID != b.ExpansionID {
			return a.ExpansionID < b.ExpansionID
		}
		return a.Pack < b.Pack
	})
}

func (o *orchestrator) publish(ctx context.Context, packs []*PackOdds) (string, error) {
	snapshot := &entities.RankingSnapshot{
		ID:        o.idGen.Generate(),
		CreatedAt: o.clock.Now(),
		Entries:   make([]entities.RankingEntry, 0, len(packs)),
	}
	for _, p := range packs {
		snapshot.Entries = append(snapshot.Entries, p.Entry())
	}

	out, err := o.rankingRepo.Save(ctx, rankingrepo.SaveInput{Snapshot: snapshot})
	if err != nil {
		return "", errors.Wrap(err, "failed to publish ranking")
	}

	slog.InfoContext(ctx, "published ranking", "snapshot_id", out.ID)
	return out.ID, nil
}

func (o *orchestrator) ValidateOfferingRates(ctx context.Context, input *ValidateOfferingRatesInput) (*ValidateOfferingRatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Tolerance < 0 {
		return nil, errors.InvalidArgumentf("tolerance cannot be negative: %g", input.Tolerance)
	}
	tolerance := input.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	expansions, tables, err := o.loadStatic(ctx)
	if err != nil {
		return nil, err
	}

	usedBy := make(map[string][]string)
	var unresolved []UnresolvedReference
	for _, id := range sortedKeys(expansions) {
		name := expansions[id].OfferingRateTable
		if _, ok := tables[name]; !ok {
			unresolved = append(unresolved, UnresolvedReference{ExpansionID: id, Table: name})
			continue
		}
		usedBy[name] = append(usedBy[name], id)
	}

	checks := make([]TableCheck, 0, len(tables))
	for _, name := range sortedKeys(tables) {
		table := tables[name]
		check := TableCheck{
			Name:        name,
			FourthTotal: table.FourthCardTotal(),
			FifthTotal:  table.FifthCardTotal(),
			UsedBy:      usedBy[name],
		}
		check.FourthOK = math.Abs(check.FourthTotal-1) <= tolerance
		check.FifthOK = math.Abs(check.FifthTotal-1) <= tolerance
		if !check.OK() {
			slog.WarnContext(ctx, "offering rate table does not sum to one",
				"table", name,
				"fourth_total", check.FourthTotal,
				"fifth_total", check.FifthTotal)
		}
		checks = append(checks, check)
	}

	return &ValidateOfferingRatesOutput{
		Tolerance:  tolerance,
		Tables:     checks,
		Unresolved: unresolved,
	}, nil
}

func (o *orchestrator) ListPacks(ctx context.Context, input *ListPacksInput) (*ListPacksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.catalogRepo.ListExpansions(ctx, catalog.ListExpansionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	summaries := make([]ExpansionSummary, 0, len(out.Expansions))
	for _, id := range sortedKeys(out.Expansions) {
		expansion := out.Expansions[id]
		summary := ExpansionSummary{
			ID:                expansion.ID,
			Name:              expansion.Name,
			OfferingRateTable: expansion.OfferingRateTable,
			Cards:             len(expansion.Cards),
		}
		for _, pool := range expansion.Pools() {
			summary.Pools = append(summary.Pools, PoolSummary{
				Pack:  pool.Pack,
				Label: pool.Label(expansion),
				Cards: len(pool.Cards),
			})
		}
		summaries = append(summaries, summary)
	}

	return &ListPacksOutput{Expansions: summaries}, nil
}

func (o *orchestrator) ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.rankingRepo == nil {
		return nil, errors.Unavailable("no ranking store configured")
	}

	out, err := o.rankingRepo.List(ctx, rankingrepo.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rankings")
	}

	return &ListSnapshotsOutput{Snapshots: out.Snapshots}, nil
}

func (o *orchestrator) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}
	if o.rankingRepo == nil {
		return nil, errors.Unavailable("no ranking store configured")
	}

	got, err := o.rankingRepo.Get(ctx, rankingrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ranking %s", input.ID)
	}

	top, err := o.rankingRepo.GetTop(ctx, rankingrepo.GetTopInput{ID: input.ID, Limit: input.Top})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scores of ranking %s", input.ID)
	}

	return &GetSnapshotOutput{
		Snapshot: got.Snapshot,
		Packs:    top.Packs,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
