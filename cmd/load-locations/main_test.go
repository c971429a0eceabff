package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "province_city.json")
	data := `[{"province-fa":"Tehran","cities":[{"city-fa":"Tehran"},{"city-fa":"Rey"}]},{"province-fa":"Gilan","cities":[]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	entries, err := readEntries(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tehran", entries[0].Province)
	assert.Equal(t, "Rey", entries[0].Cities[1].City)
	assert.Empty(t, entries[1].Cities)
}

func TestReadEntriesRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"province-fa":`), 0o600))

	_, err := readEntries(path)
	assert.Error(t, err)

	_, err = readEntries(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
