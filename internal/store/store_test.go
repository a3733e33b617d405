package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsight/statement-csv/internal/logging"
)

func TestOverrideStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	logger := &logging.MockLogger{}

	s := NewOverrideStore(path, logger)
	_, ok := s.Get("UBER *TRIP")
	assert.False(t, ok)

	require.NoError(t, s.Set("UBER *TRIP", "Business"))

	// Lookup is case-insensitive on the merchant key
	category, ok := s.Get("uber *trip")
	assert.True(t, ok)
	assert.Equal(t, "Business", category)

	// Every mutation persists immediately: a fresh store sees the override
	reloaded := NewOverrideStore(path, logger)
	category, ok = reloaded.Get("UBER *TRIP")
	assert.True(t, ok)
	assert.Equal(t, "Business", category)
}

func TestOverrideStoreRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	logger := &logging.MockLogger{}

	s := NewOverrideStore(path, logger)
	require.NoError(t, s.Set("TESCO", "Groceries"))
	require.NoError(t, s.Remove("tesco"))

	_, ok := s.Get("TESCO")
	assert.False(t, ok)

	// Removing an absent key is a no-op
	require.NoError(t, s.Remove("never existed"))

	reloaded := NewOverrideStore(path, logger)
	_, ok = reloaded.Get("TESCO")
	assert.False(t, ok)
}

func TestOverrideStoreMissingFileStartsEmpty(t *testing.T) {
	s := NewOverrideStore(filepath.Join(t.TempDir(), "nope.yaml"), &logging.MockLogger{})
	assert.Empty(t, s.All())
}

func TestOverrideStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid: yaml"), 0600))

	logger := &logging.MockLogger{}
	s := NewOverrideStore(path, logger)

	assert.Empty(t, s.All())

	// Corruption is logged, not fatal
	found := false
	for _, e := range logger.Entries {
		if e.Level == "WARN" {
			found = true
		}
	}
	assert.True(t, found, "corrupt file should log a warning")

	// The store stays usable and overwrites the corrupt file on first write
	require.NoError(t, s.Set("TESCO", "Groceries"))
	reloaded := NewOverrideStore(path, &logging.MockLogger{})
	category, ok := reloaded.Get("TESCO")
	assert.True(t, ok)
	assert.Equal(t, "Groceries", category)
}

func TestOverrideStoreCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "overrides.yaml")
	s := NewOverrideStore(path, &logging.MockLogger{})
	require.NoError(t, s.Set("TESCO", "Groceries"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOverrideStoreAllIsSnapshot(t *testing.T) {
	s := NewOverrideStore(filepath.Join(t.TempDir(), "overrides.yaml"), &logging.MockLogger{})
	require.NoError(t, s.Set("TESCO", "Groceries"))

	snapshot := s.All()
	snapshot["tesco"] = "Tampered"

	category, _ := s.Get("TESCO")
	assert.Equal(t, "Groceries", category)
}
