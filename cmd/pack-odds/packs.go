package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pack-odds/internal/orchestrators/ranking"
)

func newPacksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "packs",
		Short: "List expansions and their packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := a.orchestrator(cmd.Context(), nil, false)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.ListPacks(cmd.Context(), &ranking.ListPacksInput{})
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.Packs(out)
		},
	}
}
