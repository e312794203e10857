package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimstats/internal/claims"
	"github.com/gyeh/claimstats/internal/exitcode"
	"github.com/gyeh/claimstats/internal/logging"
	"github.com/gyeh/claimstats/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Ingest a claims CSV file and print the top providers",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to claims CSV file (required)")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateFile(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("read claims file failed")
		os.Exit(exitcode.InputError)
	}

	pool, err := store.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	if err := store.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.DBConnError)
	}

	proc := claims.NewProcessor(store.New(pool), log)
	report := proc.IngestCSV(ctx, string(data))

	fmt.Printf("Successfully processed %d claims (%d rows skipped).\n",
		len(report.Accepted), len(report.Skipped))
	for _, skip := range report.Skipped {
		fmt.Printf("  skipped %s\n", skip)
	}

	totals, err := proc.TopProviders(ctx, 10)
	if err != nil {
		log.Error().Err(err).Msg("top providers query failed")
		os.Exit(exitcode.IngestError)
	}

	fmt.Println("\nTop providers by net fee:")
	for i, pt := range totals {
		fmt.Printf("%d. Provider NPI: %s, Net Fee: %s\n", i+1, pt.ProviderNPI, pt.TotalNetFee)
	}
	return nil
}
