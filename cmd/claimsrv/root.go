package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/claimstats/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "claimsrv",
	Short: "Dental claim ingestion and reporting service",
	Long:  "Ingests dental insurance claims from JSON or CSV, persists them to Postgres, and serves a top-providers-by-net-fee aggregate.",
}

func init() {
	// Optional .env in the working directory, same contract as the hosted
	// deployments.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
}
