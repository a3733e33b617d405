// Package ingest implements the command that converts statement exports into
// the canonical categorised CSV table.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spendsight/statement-csv/cmd/root"
	"spendsight/statement-csv/internal/export"
	"spendsight/statement-csv/internal/ingest"
	"spendsight/statement-csv/internal/logging"
)

var outputFile string

// Cmd is the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Parse statement files into one canonical categorised CSV table",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (defaults to transactions.csv in the export directory)")
}

func run(cmd *cobra.Command, args []string) error {
	files := make([]ingest.File, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided files
		if err != nil {
			root.Logger.WithError(err).WithField("file", path).Warn("Cannot read file, skipping")
			continue
		}
		files = append(files, ingest.File{Name: filepath.Base(path), Data: data})
	}
	if len(files) == 0 {
		return fmt.Errorf("none of the given files could be read")
	}

	pipeline := ingest.New(root.Logger)
	transactions, errs := pipeline.ParseAll(files)
	for _, err := range errs {
		root.Logger.WithError(err).Warn("Statement file skipped")
	}

	categoriser, err := root.NewCategoriser()
	if err != nil {
		return err
	}

	out := outputFile
	if out == "" {
		out = filepath.Join(root.Cfg.Export.Directory, "transactions.csv")
	}
	if err := export.WriteFile(out, transactions, categoriser.Categorise); err != nil {
		return err
	}

	root.Logger.Info("Wrote canonical transaction table",
		logging.Field{Key: "file", Value: out},
		logging.Field{Key: "count", Value: len(transactions)},
		logging.Field{Key: "skipped_files", Value: len(errs)})
	return nil
}
