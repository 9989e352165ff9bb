package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/maebert/bragmaster/internal/bragfile"
	"github.com/maebert/bragmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "brag.md")

	doc := testutil.NewTestDocument(
		testutil.NewTestUser("Manuel",
			testutil.WithEmail("manuel@1450.me"),
			testutil.WithSession("2016-02-22", testutil.OpenTask("Run 5k")),
		),
	)

	s := NewFileStore()
	require.NoError(t, s.Save(ctx, path, doc))

	loaded, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, bragfile.Serialize(doc), bragfile.Serialize(loaded))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.md")

	_, err := NewFileStore().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path, "I/O errors include the offending path")
}

func TestFileStoreLoadUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brag.md")
	require.NoError(t, os.WriteFile(path, []byte("not a bragfile\n"), 0o644))

	_, err := NewFileStore().Load(context.Background(), path)
	require.Error(t, err)

	var perr *bragfile.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestFileStoreSaveReplacesAtomically(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "brag.md")
	require.NoError(t, os.WriteFile(path, []byte("# Old\n"), 0o644))

	doc := testutil.NewTestDocument(testutil.NewTestUser("New"))
	require.NoError(t, NewFileStore().Save(ctx, path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# New\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "brag.md", entries[0].Name())
}
