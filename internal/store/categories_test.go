package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsight/statement-csv/internal/logging"
)

const sampleCategoriesYAML = `categories:
  - name: "Groceries"
    icon: "🛒"
    keywords:
      - "TESCO"
      - "sainsbury"
  - name: "Transport"
    icon: "🚆"
    keywords:
      - "tfl"
uncategorised:
  label: "Misc"
  icon: "🤷"
itemised_threshold: 50
`

func TestLoadCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCategoriesYAML), 0600))

	categories, err := LoadCategories(path, &logging.MockLogger{})
	require.NoError(t, err)

	require.Len(t, categories.Categories, 2)
	assert.Equal(t, "Groceries", categories.Categories[0].Name)
	assert.Equal(t, "Transport", categories.Categories[1].Name)

	// Keywords are lowercased on load
	assert.Equal(t, []string{"tesco", "sainsbury"}, categories.Categories[0].Keywords)

	assert.Equal(t, "Misc", categories.Uncategorised.Label)
	assert.Equal(t, "🤷", categories.Uncategorised.Icon)
	assert.True(t, categories.ItemisedThreshold.Equal(decimal.NewFromInt(50)))
}

func TestLoadCategoriesMissingFileUsesDefaults(t *testing.T) {
	categories, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"), &logging.MockLogger{})
	require.NoError(t, err)

	assert.Empty(t, categories.Categories)
	assert.NotEmpty(t, categories.Uncategorised.Label)
	assert.NotEmpty(t, categories.Uncategorised.Icon)
	assert.True(t, categories.ItemisedThreshold.Equal(decimal.NewFromInt(30)))
}

func TestLoadCategoriesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [broken"), 0600))

	_, err := LoadCategories(path, &logging.MockLogger{})
	assert.Error(t, err)
}

func TestLoadCategoriesPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: A\n    keywords: [\"x\"]\n"), 0600))

	categories, err := LoadCategories(path, &logging.MockLogger{})
	require.NoError(t, err)

	assert.Len(t, categories.Categories, 1)
	assert.NotEmpty(t, categories.Uncategorised.Label)
	assert.True(t, categories.ItemisedThreshold.Equal(decimal.NewFromInt(30)))
}
