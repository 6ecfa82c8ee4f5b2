package listing_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"asset-registry/core/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_List(t *testing.T) {
	root := filepath.ToSlash(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(root, "textures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ship.obj"), []byte("o hull\n"), 0o644))

	entries, err := listing.NewOS().List(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	assert.Equal(t, listing.Entry{Path: root + "/ship.obj"}, entries[0])
	assert.Equal(t, listing.Entry{Path: root + "/textures", IsDir: true}, entries[1])
}

func TestOS_ListMissing(t *testing.T) {
	_, err := listing.NewOS().List(context.Background(), filepath.ToSlash(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOS_ListCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := listing.NewOS().List(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOS_Open(t *testing.T) {
	root := filepath.ToSlash(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))

	r, err := listing.NewOS().Open(context.Background(), root+"/a.txt")
	require.NoError(t, err)
	defer r.Close()

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}
