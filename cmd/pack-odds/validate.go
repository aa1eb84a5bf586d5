package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/orchestrators/ranking"
	offeringrates "github.com/KirkDiggler/pack-odds/internal/repositories/offering_rates"
)

func newValidateCmd(a *app) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that offering rate tables sum to one",
		Long: `Check every offering rate table: the 4th and 5th card rates must each sum
to one, and every expansion must reference a table that exists.
Exits non-zero when a problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := a.orchestrator(cmd.Context(), nil, false)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.ValidateOfferingRates(cmd.Context(), &ranking.ValidateOfferingRatesInput{
				Tolerance: tolerance,
			})
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := renderer.Validation(out); err != nil {
				return err
			}

			if !out.Valid() {
				return errors.ConfigParsef(offeringrates.RatesFile, "offering rate data failed validation")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", ranking.DefaultTolerance, "Allowed distance of a slot total from 1")

	return cmd
}
