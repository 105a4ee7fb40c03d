package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())

	p, ok := r.Get("ring-2")
	require.True(t, ok)
	assert.Equal(t, "Кольцо «Волна»", p.Name)
	assert.Equal(t, int64(320000), p.Price)
	assert.NotEmpty(t, p.Description)
	assert.NotEmpty(t, p.PhotoURL)
}

func TestListKeepsFileOrder(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)

	var ids []string
	for _, p := range r.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"ring-1", "ring-2", "ring-3"}, ids)
}

func TestGetUnknownID(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)

	_, ok := r.Get("ring-999")
	assert.False(t, ok)

	_, _, ok = r.NamePrice("ring-999")
	assert.False(t, ok)
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"missing file":  filepath.Join(t.TempDir(), "nope.json"),
		"broken json":   writeCatalog(t, `{"id": "ring-1"`),
		"empty catalog": writeCatalog(t, `[]`),
		"product without id": writeCatalog(t,
			`[{"name": "Кольцо", "price": 1000}]`),
		"duplicate id": writeCatalog(t,
			`[{"id": "r", "name": "А", "price": 1}, {"id": "r", "name": "Б", "price": 2}]`),
	}
	for name, path := range cases {
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}
