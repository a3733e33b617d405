package models

import "github.com/shopspring/decimal"

// CategoryConfig is one configured spending category: a display name, an icon
// glyph and the lowercase keywords that map a merchant description to it.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Icon     string   `yaml:"icon"`
	Keywords []string `yaml:"keywords"`
}

// Categories is the full category rule set loaded from YAML. Categories is a
// slice, not a map: its order is the keyword match priority and the first
// category containing a matching keyword wins.
type Categories struct {
	Categories    []CategoryConfig
	Uncategorised Uncategorised

	// ItemisedThreshold is the amount above which the presentation layer
	// flags a transaction for individual review.
	ItemisedThreshold decimal.Decimal
}

// Uncategorised holds the label and icon used when no rule or override matches.
type Uncategorised struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// DefaultUncategorisedLabel is used when the config file does not set one.
const DefaultUncategorisedLabel = "Other / Uncategorised"

// DefaultUncategorisedIcon is used when the config file does not set one.
const DefaultUncategorisedIcon = "❓"
