// Package store persists the category rule configuration and the per-merchant
// category overrides as human-editable YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"spendsight/statement-csv/internal/logging"
	"spendsight/statement-csv/internal/models"
)

// OverrideStore is a durable mapping from normalized merchant key to category
// name. It is loaded eagerly on construction and every mutation is persisted
// immediately - there is no explicit save step. A corrupt or missing backing
// file degrades to an empty mapping; overrides are a convenience layer and
// must never stop the application from starting.
//
// Concurrent writer sessions race the file contents last-write-wins. That is
// an accepted limitation.
type OverrideStore struct {
	path   string
	data   map[string]string
	logger logging.Logger
}

// NewOverrideStore loads the override file at path. Read or parse failures
// are logged at warning level and yield an empty store.
func NewOverrideStore(path string, logger logging.Logger) *OverrideStore {
	s := &OverrideStore{
		path:   path,
		data:   map[string]string{},
		logger: logger,
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).WithField("file", path).Warn("Cannot read override file, starting empty")
		}
		return s
	}

	var data map[string]string
	if err := yaml.Unmarshal(raw, &data); err != nil {
		logger.WithError(err).WithField("file", path).Warn("Override file is corrupt, starting empty")
		return s
	}
	if data != nil {
		s.data = data
	}

	logger.WithField("count", len(s.data)).Debug("Loaded merchant overrides")
	return s
}

// Get looks up the override for a merchant description. The second return
// value is false when no override exists and keyword rules should apply.
func (s *OverrideStore) Get(description string) (string, bool) {
	category, ok := s.data[models.NormalizeMerchantKey(description)]
	return category, ok
}

// Set records an override and persists immediately. A persist failure is
// returned to the caller: silently dropping a requested override would be
// worse than failing loudly.
func (s *OverrideStore) Set(description, category string) error {
	s.data[models.NormalizeMerchantKey(description)] = category
	return s.persist()
}

// Remove deletes an override if present and persists. Removing an absent key
// is a no-op, not an error.
func (s *OverrideStore) Remove(description string) error {
	key := models.NormalizeMerchantKey(description)
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.persist()
}

// All returns a snapshot of the current overrides for display purposes.
func (s *OverrideStore) All() map[string]string {
	snapshot := make(map[string]string, len(s.data))
	for k, v := range s.data {
		snapshot[k] = v
	}
	return snapshot
}

func (s *OverrideStore) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating override directory: %w", err)
	}

	data, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("error marshaling overrides: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("error writing override file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: s.path},
		logging.Field{Key: "count", Value: len(s.data)},
	).Debug("Saved merchant overrides")
	return nil
}
