package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	m := &MockLogger{}

	m.Info("hello", Field{Key: "file", Value: "a.csv"})
	m.Warn("careful")

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "INFO", m.Entries[0].Level)
	assert.Equal(t, "hello", m.Entries[0].Message)
	assert.Equal(t, Field{Key: "file", Value: "a.csv"}, m.Entries[0].Fields[0])
	assert.Equal(t, "WARN", m.Entries[1].Level)
}

func TestDerivedLoggerEntriesReachOriginalMock(t *testing.T) {
	m := &MockLogger{}
	err := errors.New("boom")

	m.WithError(err).WithField("file", "a.csv").Warn("failed")

	require.Len(t, m.Entries, 1)
	assert.Equal(t, "WARN", m.Entries[0].Level)
	assert.Equal(t, "failed", m.Entries[0].Message)
	assert.Equal(t, err, m.Entries[0].Error)
	assert.Equal(t, Field{Key: "file", Value: "a.csv"}, m.Entries[0].Fields[0])
}

func TestDerivedLoggersDoNotLeakContextToSiblings(t *testing.T) {
	m := &MockLogger{}

	withErr := m.WithError(errors.New("boom"))
	m.Info("plain")
	withErr.Error("tagged")

	require.Len(t, m.Entries, 2)
	assert.Nil(t, m.Entries[0].Error)
	assert.Error(t, m.Entries[1].Error)
}

func TestNewLogrusAdapter(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapter("debug", "json"))
	// Unknown level falls back to info rather than failing
	assert.NotNil(t, NewLogrusAdapter("nonsense", "text"))
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}
