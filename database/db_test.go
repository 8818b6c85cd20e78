package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "nested", "test.duckdb"))
	assert.NoError(t, err)
	defer db.Close()

	names, err := db.Tables()
	assert.NoError(t, err)
	assert.Empty(t, names)

	_, err = db.Exec("CREATE TABLE item(i INTEGER);")
	assert.NoError(t, err)
	_, err = db.Exec("CREATE TABLE store(i INTEGER);")
	assert.NoError(t, err)

	names, err = db.Tables()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"item", "store"}, names)
}

func TestNewReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.duckdb")
	db, err := New(path)
	assert.NoError(t, err)
	_, err = db.Exec("CREATE TABLE item(i INTEGER);")
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	ro, err := NewReadOnly(path)
	assert.NoError(t, err)
	defer ro.Close()
	_, err = ro.Exec("CREATE TABLE store(i INTEGER);")
	assert.Error(t, err)
}
