// Package categorizer classifies merchant descriptions into spending
// categories. An override recorded for a merchant always wins; otherwise the
// configured categories are scanned in order and the first category whose any
// keyword is a case-insensitive substring of the description is returned.
package categorizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"spendsight/statement-csv/internal/logging"
	"spendsight/statement-csv/internal/models"
	"spendsight/statement-csv/internal/store"
)

// Categoriser composes the override store and the keyword rule set. There is
// no result caching: rule sets are small and a just-recorded override must
// take effect on the very next call.
type Categoriser struct {
	categories models.Categories
	overrides  *store.OverrideStore
	logger     logging.Logger
}

// New creates a Categoriser over a loaded rule set and override store.
func New(categories models.Categories, overrides *store.OverrideStore, logger logging.Logger) *Categoriser {
	return &Categoriser{
		categories: categories,
		overrides:  overrides,
		logger:     logger,
	}
}

// Categorise returns the category for a merchant description. Precedence:
// override, then first keyword match in configured order, then the
// uncategorised label.
func (c *Categoriser) Categorise(description string) string {
	if category, ok := c.overrides.Get(description); ok {
		return category
	}

	lower := strings.ToLower(description)
	for _, category := range c.categories.Categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				return category.Name
			}
		}
	}
	return c.categories.Uncategorised.Label
}

// Recategorise records a merchant override, visible to all subsequent
// Categorise calls for that merchant. The write is persisted immediately and
// a persistence failure surfaces to the caller.
func (c *Categoriser) Recategorise(description, category string) error {
	c.logger.WithFields(
		logging.Field{Key: "merchant", Value: description},
		logging.Field{Key: "category", Value: category},
	).Debug("Recording category override")
	return c.overrides.Set(description, category)
}

// ClearOverride removes a merchant override so keyword rules apply again.
func (c *Categoriser) ClearOverride(description string) error {
	return c.overrides.Remove(description)
}

// Icon resolves the display glyph for a category name.
func (c *Categoriser) Icon(category string) string {
	if category == c.categories.Uncategorised.Label {
		return c.categories.Uncategorised.Icon
	}
	for _, cfg := range c.categories.Categories {
		if cfg.Name == category {
			return cfg.Icon
		}
	}
	return ""
}

// AllCategories returns the configured category names in priority order,
// followed by the uncategorised label.
func (c *Categoriser) AllCategories() []string {
	names := make([]string, 0, len(c.categories.Categories)+1)
	for _, cfg := range c.categories.Categories {
		names = append(names, cfg.Name)
	}
	return append(names, c.categories.Uncategorised.Label)
}

// Overrides exposes a read-only snapshot of the recorded overrides.
func (c *Categoriser) Overrides() map[string]string {
	return c.overrides.All()
}

// ItemisedThreshold returns the configured amount above which a transaction
// should be highlighted for individual review.
func (c *Categoriser) ItemisedThreshold() decimal.Decimal {
	return c.categories.ItemisedThreshold
}
