package cookies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInlineContent(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "cookies.txt"))

	path, cleanup, err := p.Resolve("# Netscape HTTP Cookie File\nsession=abc")
	require.NoError(t, err)
	require.NotEmpty(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Netscape HTTP Cookie File\nsession=abc", string(data))

	cleanup()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "ephemeral cookie file should be removed by cleanup")
}

func TestResolveInlineTakesPrecedenceOverPersisted(t *testing.T) {
	persisted := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(persisted, []byte("persisted"), 0644))

	p := NewProvider(persisted)

	path, cleanup, err := p.Resolve("inline")
	require.NoError(t, err)
	defer cleanup()

	assert.NotEqual(t, persisted, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "inline", string(data))
}

func TestResolvePersistedFile(t *testing.T) {
	persisted := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(persisted, []byte("persisted"), 0644))

	p := NewProvider(persisted)

	path, cleanup, err := p.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, persisted, path)

	// cleanup must never delete the persisted file
	cleanup()
	_, err = os.Stat(persisted)
	assert.NoError(t, err)
}

func TestResolveNoCredential(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "missing.txt"))

	path, cleanup, err := p.Resolve("")
	require.NoError(t, err)
	assert.Empty(t, path)
	cleanup()
}

func TestSaveOverwrites(t *testing.T) {
	persisted := filepath.Join(t.TempDir(), "cookies.txt")
	p := NewProvider(persisted)

	require.NoError(t, p.Save("first"))
	require.NoError(t, p.Save("second"))

	data, err := os.ReadFile(persisted)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	persisted := filepath.Join(t.TempDir(), "nested", "dir", "cookies.txt")
	p := NewProvider(persisted)

	require.NoError(t, p.Save("content"))

	data, err := os.ReadFile(persisted)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	p := NewProvider(filepath.Join(dir, "cookies.txt"))

	require.NoError(t, p.Save("content"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cookies.txt", entries[0].Name())
}
