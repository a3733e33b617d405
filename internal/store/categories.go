package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"spendsight/statement-csv/internal/logging"
	"spendsight/statement-csv/internal/models"
)

// defaultItemisedThreshold applies when the config file does not set one.
var defaultItemisedThreshold = decimal.NewFromInt(30)

// categoriesFile is the on-disk YAML shape of the category rule set.
type categoriesFile struct {
	Categories        []models.CategoryConfig `yaml:"categories"`
	Uncategorised     models.Uncategorised    `yaml:"uncategorised"`
	ItemisedThreshold float64                 `yaml:"itemised_threshold"`
}

// LoadCategories reads the category rule configuration from a YAML file.
// Keywords are lowercased on load so matching stays case-insensitive. The
// order of entries in the file is the keyword match priority and is
// preserved. A missing file yields an empty rule set with defaults, not an
// error - the categoriser then classifies everything as uncategorised.
func LoadCategories(path string, logger logging.Logger) (models.Categories, error) {
	categories := models.Categories{
		Uncategorised: models.Uncategorised{
			Label: models.DefaultUncategorisedLabel,
			Icon:  models.DefaultUncategorisedIcon,
		},
		ItemisedThreshold: defaultItemisedThreshold,
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		if os.IsNotExist(err) {
			logger.WithField("file", path).Warn("Categories file not found, using empty rule set")
			return categories, nil
		}
		return categories, fmt.Errorf("error reading categories file: %w", err)
	}

	var loaded categoriesFile
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return categories, fmt.Errorf("error parsing categories file: %w", err)
	}

	categories.Categories = loaded.Categories
	for i, c := range categories.Categories {
		for j, kw := range c.Keywords {
			categories.Categories[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	if loaded.Uncategorised.Label != "" {
		categories.Uncategorised.Label = loaded.Uncategorised.Label
	}
	if loaded.Uncategorised.Icon != "" {
		categories.Uncategorised.Icon = loaded.Uncategorised.Icon
	}
	if loaded.ItemisedThreshold > 0 {
		categories.ItemisedThreshold = decimal.NewFromFloat(loaded.ItemisedThreshold)
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(categories.Categories)},
	).Debug("Loaded category rules")
	return categories, nil
}
