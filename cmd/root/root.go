// Package root contains the root command for the application.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"spendsight/statement-csv/internal/categorizer"
	"spendsight/statement-csv/internal/config"
	"spendsight/statement-csv/internal/logging"
	"spendsight/statement-csv/internal/store"
)

var (
	// Cfg is the loaded application configuration, available to subcommands.
	Cfg *config.Config

	// Logger is the shared logger instance for commands.
	Logger logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-csv",
		Short: "Normalize UK bank statement exports and categorise spending.",
		Long: `statement-csv ingests bank and card statement exports in the CSV and
spreadsheet dialects used by UK banks (Amex, Monzo, Starling, Revolut,
Lloyds/Halifax, HSBC, plus a generic fallback), normalizes them into one
canonical transaction table and classifies each transaction into a spending
category using keyword rules with persistent per-merchant overrides.`,
		Run: func(cmd *cobra.Command, args []string) {
			Logger.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			Cfg = cfg
			Logger = cfg.NewLogger()
			return nil
		},
	}
)

// NewCategoriser wires a Categoriser from the loaded configuration. It is
// shared by every subcommand that classifies transactions.
func NewCategoriser() (*categorizer.Categoriser, error) {
	categories, err := store.LoadCategories(Cfg.Categories.File, Logger)
	if err != nil {
		return nil, fmt.Errorf("loading category rules: %w", err)
	}
	overrides := store.NewOverrideStore(Cfg.Overrides.File, Logger)
	return categorizer.New(categories, overrides, Logger), nil
}
