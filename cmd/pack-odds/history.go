package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/orchestrators/ranking"
)

type historyFlags struct {
	limit int
	id    string
	top   int
}

func newHistoryCmd(a *app) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show rankings published with rank --publish",
		Long: `Without --id, list published rankings newest first.
With --id, show the best packs of that ranking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, a, flags)
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 10, "Number of rankings to list (0 lists all)")
	cmd.Flags().StringVar(&flags.id, "id", "", "Ranking to show")
	cmd.Flags().IntVar(&flags.top, "top", 10, "Number of packs to show with --id (0 shows all)")

	return cmd
}

func runHistory(cmd *cobra.Command, a *app, flags *historyFlags) error {
	ctx := cmd.Context()

	if !a.cfg.PublishEnabled() {
		return errors.Unavailable("history requires --redis-addr or PACK_ODDS_REDIS_ADDR")
	}
	if flags.limit < 0 || flags.top < 0 {
		return errors.InvalidArgument("--limit and --top cannot be negative")
	}

	svc, cleanup, err := a.orchestrator(ctx, nil, true)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	if flags.id != "" {
		out, err := svc.GetSnapshot(ctx, &ranking.GetSnapshotInput{ID: flags.id, Top: flags.top})
		if err != nil {
			return err
		}
		return renderer.Snapshot(out)
	}

	out, err := svc.ListSnapshots(ctx, &ranking.ListSnapshotsInput{Limit: flags.limit})
	if err != nil {
		return err
	}
	return renderer.Snapshots(out)
}
