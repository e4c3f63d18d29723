package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, fileName, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "index.html", FileName(Home))
	assert.Equal(t, "terms.html", FileName(Terms))
	assert.Equal(t, "privacy.html", FileName(Privacy))
	assert.Equal(t, "", FileName(Name("about")))
}

func TestStoreRead(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "terms.html", "<h1>Terms</h1>")

	store := NewStore(dir)
	content, err := store.Read(Terms)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Terms</h1>", string(content))
}

func TestStoreReadSeesEdits(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "privacy.html", "v1")
	store := NewStore(dir)

	first, err := store.Read(Privacy)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(first))

	writePage(t, dir, "privacy.html", "v2")
	second, err := store.Read(Privacy)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(second))
}

func TestStoreReadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	content, err := store.Read(Home)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, content)
}

func TestStoreReadUnknownPage(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Read(Name("../secrets"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreMissing(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", "home")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "terms.html"), 0o755))

	store := NewStore(dir)
	assert.Equal(t, dir, store.Dir())
	assert.Equal(t, []string{"terms.html", "privacy.html"}, store.Missing())
}
