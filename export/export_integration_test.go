package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benchkit/tpcds-pipeline/database"
	"github.com/stretchr/testify/assert"
)

func newTestDB(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.duckdb")
	db, err := database.New(path)
	assert.NoError(t, err)
	_, err = db.Exec("CREATE TABLE item(i INTEGER);")
	assert.NoError(t, err)
	_, err = db.Exec("INSERT INTO item VALUES (1), (2), (3);")
	assert.NoError(t, err)
	assert.NoError(t, db.Close())
	return path
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := newTestDB(t, dir)
	out := filepath.Join(dir, "parquet")

	tables, err := Export(dbPath, out, "ZSTD", false)
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Equal(t, "item", tables[0].Name)

	data, err := os.ReadFile(tables[0].Parquet)
	assert.NoError(t, err)
	assert.Equal(t, "PAR1", string(data[:4]))
}

func TestExportSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	dbPath := newTestDB(t, dir)
	out := filepath.Join(dir, "parquet")
	sentinel := []byte("sentinel")
	assert.NoError(t, os.MkdirAll(out, 0766))
	assert.NoError(t, os.WriteFile(filepath.Join(out, "item.parquet"), sentinel, 0666))

	_, err := Export(dbPath, out, "ZSTD", false)
	assert.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(out, "item.parquet"))
	assert.NoError(t, err)
	assert.Equal(t, sentinel, data)

	_, err = Export(dbPath, out, "ZSTD", true)
	assert.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(out, "item.parquet"))
	assert.NoError(t, err)
	assert.Equal(t, "PAR1", string(data[:4]))
}

func TestExportEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.duckdb")
	db, err := database.New(path)
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	_, err = Export(path, filepath.Join(dir, "parquet"), "ZSTD", false)
	assert.Error(t, err)
}
