// Package categorize implements the command that classifies a single
// merchant description and records overrides.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"spendsight/statement-csv/cmd/root"
)

var (
	setCategory    string
	removeOverride bool
	listCategories bool
	listOverrides  bool
)

// Cmd is the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize [description]",
	Short: "Classify a merchant description, or record a category override",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVar(&setCategory, "set", "", "Record an override assigning the description to this category")
	Cmd.Flags().BoolVar(&removeOverride, "remove", false, "Remove any override for the description")
	Cmd.Flags().BoolVar(&listCategories, "list", false, "List all configured categories")
	Cmd.Flags().BoolVar(&listOverrides, "overrides", false, "List all recorded merchant overrides")
}

func run(cmd *cobra.Command, args []string) error {
	categoriser, err := root.NewCategoriser()
	if err != nil {
		return err
	}

	if listCategories {
		for _, name := range categoriser.AllCategories() {
			fmt.Printf("%s %s\n", categoriser.Icon(name), name)
		}
		return nil
	}

	if listOverrides {
		for merchant, category := range categoriser.Overrides() {
			fmt.Printf("%s -> %s\n", merchant, category)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a merchant description is required unless --list or --overrides is given")
	}
	description := args[0]

	if removeOverride {
		if err := categoriser.ClearOverride(description); err != nil {
			return fmt.Errorf("removing override: %w", err)
		}
	}
	if setCategory != "" {
		if err := categoriser.Recategorise(description, setCategory); err != nil {
			return fmt.Errorf("recording override: %w", err)
		}
	}

	category := categoriser.Categorise(description)
	fmt.Printf("%s %s\n", categoriser.Icon(category), category)
	return nil
}
