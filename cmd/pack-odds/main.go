// Package main is the entry point for the pack-odds CLI
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pack-odds/internal/config"
	"github.com/KirkDiggler/pack-odds/internal/engine"
	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/orchestrators/ranking"
	"github.com/KirkDiggler/pack-odds/internal/pkg/clock"
	"github.com/KirkDiggler/pack-odds/internal/pkg/idgen"
	"github.com/KirkDiggler/pack-odds/internal/redis"
	"github.com/KirkDiggler/pack-odds/internal/repositories/catalog"
	offeringrates "github.com/KirkDiggler/pack-odds/internal/repositories/offering_rates"
	rankingrepo "github.com/KirkDiggler/pack-odds/internal/repositories/ranking"
	"github.com/KirkDiggler/pack-odds/internal/report"
)

// snapshotIDPrefix prefixes published ranking IDs
const snapshotIDPrefix = "rank"

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse()
	if err == nil {
		rootCmd := newRootCmd(&app{cfg: cfg, stderr: stderr})
		rootCmd.SetArgs(args)
		rootCmd.SetOut(stdout)
		rootCmd.SetErr(stderr)
		err = rootCmd.ExecuteContext(ctx)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errors.GetCode(err).ExitCode()
	}
	return 0
}

// app carries the configuration shared by every subcommand
type app struct {
	cfg     *config.Config
	stderr  io.Writer
	noColor bool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pack-odds",
		Short: "Rank card packs by the chance of pulling a new card",
		Long: `pack-odds reads a card catalog, the offering rates of each pack slot and
your collection, then ranks every pack by the probability that opening it
yields at least one card you do not own yet.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.DataDir, "data-dir", a.cfg.DataDir, "Directory holding expansions.toml, offering_rates.toml and cards/")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.cfg.RedisAddr, "redis-addr", a.cfg.RedisAddr, "Redis address for published rankings")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	rootCmd.AddCommand(newRankCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newPacksCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))

	return rootCmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: a.cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return nil
}

func (a *app) renderer(cmd *cobra.Command) (*report.Renderer, error) {
	return report.New(&report.Config{
		Out:   cmd.OutOrStdout(),
		Color: !a.noColor && isTerminal(cmd.OutOrStdout()),
	})
}

// orchestrator wires the file repositories, the engine and, when a Redis
// address is configured and withStore is set, the ranking store. The
// returned cleanup closes the Redis client.
func (a *app) orchestrator(ctx context.Context, engineCfg *engine.Config, withStore bool) (ranking.Service, func(), error) {
	cleanup := func() {}

	fsys := os.DirFS(a.cfg.DataDir)
	catalogRepo, err := catalog.NewFile(&catalog.FileConfig{FS: fsys})
	if err != nil {
		return nil, cleanup, err
	}
	ratesRepo, err := offeringrates.NewFile(&offeringrates.FileConfig{FS: fsys})
	if err != nil {
		return nil, cleanup, err
	}

	eng, err := engine.New(engineCfg)
	if err != nil {
		return nil, cleanup, err
	}

	cfg := &ranking.Config{
		CatalogRepo:       catalogRepo,
		OfferingRatesRepo: ratesRepo,
		Engine:            eng,
		Workers:           a.cfg.Workers,
	}

	if withStore && a.cfg.PublishEnabled() {
		client, err := redis.NewClient(a.cfg.RedisAddr, &redis.Options{})
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}
		if err := redis.Ping(ctx, client); err != nil {
			cleanup()
			return nil, func() {}, err
		}

		rankingRepo, err := rankingrepo.NewRedis(&rankingrepo.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		cfg.RankingRepo = rankingRepo
		cfg.Clock = clock.New()
		cfg.IDGenerator = idgen.NewUUID(snapshotIDPrefix)
	}

	svc, err := ranking.NewOrchestrator(cfg)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return svc, cleanup, nil
}

// isTerminal reports whether w is a TTY
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
