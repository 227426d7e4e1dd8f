package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedJSON = `[
  {"id": 1, "title": "Dune", "author": {"name": "Herbert", "email": "h@x.com"}, "price": 9.5},
  {"id": 2, "title": "Emma", "author": {"name": "Jane", "email": "j@x.com"}, "in_stock": true}
]`

func TestDecodeSeed(t *testing.T) {
	books, err := DecodeSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 9.5, *books[0].Price)
	assert.True(t, *books[1].InStock)
	assert.Nil(t, books[1].Price)
}

func TestDecodeSeed_UnknownField(t *testing.T) {
	_, err := DecodeSeed(strings.NewReader(`[{"id":1,"isbn":"x"}]`))
	assert.Error(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o600))

	books, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(books))

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
