package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	var count int
	require.NoError(t, d.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count))
	assert.Zero(t, count)
	assert.Equal(t, ":memory:", d.Path())
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	// Running migrate again should not fail.
	assert.NoError(t, d.migrate())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	d, err := Open(path)
	require.NoError(t, err)
	defer d.Close()

	_, err = d.Exec(`INSERT INTO sessions (id, theme) VALUES ('s1', 'dark')`)
	require.NoError(t, err)

	_, err = d.Exec(`INSERT INTO sessions (id, theme) VALUES ('s2', 'sepia')`)
	assert.Error(t, err, "theme check constraint")
}
