package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pack-odds/internal/engine"
	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/orchestrators/ranking"
	"github.com/KirkDiggler/pack-odds/internal/repositories/collection"
)

type rankFlags struct {
	collectionPath string
	verbose        bool
	publish        bool
	rescaleRates   bool
}

func newRankCmd(a *app) *cobra.Command {
	flags := &rankFlags{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank packs by the chance of pulling a new card",
		Long: `Rank every pack of every expansion listed in the collection file.
The collection is a TOML file with one key per expansion ID, each holding the
owned card numbers or "first-last" ranges:

  genetic_apex = [1, 2, "10-14", 33]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, a, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.collectionPath, "collection", "c", "", "Path to the collection TOML file")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show the per-rarity breakdown of every pack")
	cmd.Flags().BoolVar(&flags.publish, "publish", false, "Store the ranking in Redis")
	cmd.Flags().BoolVar(&flags.rescaleRates, "rescale-rates", false, "Rescale slot 4/5 rates to the rarities present in each pack")
	cmd.Flags().IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "Parallel pack computations (0 uses every CPU)")
	cmd.Flags().StringVar(&a.cfg.Policy, "policy", a.cfg.Policy, "Common slot policy when a pack has no ♢ cards: zero or lowest-tier")
	_ = cmd.MarkFlagRequired("collection") // nolint:errcheck // flag is defined above

	return cmd
}

func runRank(cmd *cobra.Command, a *app, flags *rankFlags) error {
	ctx := cmd.Context()

	if flags.publish && !a.cfg.PublishEnabled() {
		return errors.InvalidArgument("--publish requires --redis-addr or PACK_ODDS_REDIS_ADDR")
	}

	collectionRepo, err := collection.NewFile(nil)
	if err != nil {
		return err
	}
	owned, err := collectionRepo.Get(ctx, collection.GetInput{Path: flags.collectionPath})
	if err != nil {
		return err
	}

	svc, cleanup, err := a.orchestrator(ctx, &engine.Config{
		CommonSlotPolicy: engine.CommonSlotPolicy(a.cfg.Policy),
		RescaleSlotRates: flags.rescaleRates,
	}, flags.publish)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Rank(ctx, &ranking.RankInput{
		Collection: owned.Collection,
		Publish:    flags.publish,
	})
	if err != nil {
		return err
	}

	renderer, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Ranking(out, flags.verbose)
}
