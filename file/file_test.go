package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.parquet")
	assert.False(t, Exists(path))
	f, err := New(path, os.O_CREATE|os.O_RDWR)
	assert.NoError(t, err)
	assert.True(t, Exists(path))
	_, err = f.Write([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), f.Size())
	assert.NoError(t, f.Delete())
	assert.False(t, Exists(path))
}
