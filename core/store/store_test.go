package store_test

import (
	"context"
	"testing"

	"asset-registry/core/asset"
	"asset-registry/core/database"
	"asset-registry/core/identity"
	"asset-registry/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := store.New(db, zap.NewNop())
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	entries := []asset.Metadata{
		{Path: "project/b.png", ID: identity.Generate(), Type: asset.TypeTexture},
		{Path: "project", ID: identity.Generate(), Type: asset.TypeDirectory},
		{Path: asset.EmbeddedPath("project/a.obj", "hull"), ID: identity.Generate(), Type: asset.TypeMesh},
	}
	require.NoError(t, s.Save(ctx, entries))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, entries, loaded)
	assert.Equal(t, "<|project/a.obj|>hull", loaded[0].Path)

	t.Run("SaveReplaces", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, entries[:1]))
		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entries[:1], loaded)
	})

	t.Run("SaveEmpty", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, nil))
		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestStore_LoadSkipsInvalidRows(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	valid := asset.Metadata{Path: "project/a.png", ID: identity.Generate(), Type: asset.TypeTexture}
	require.NoError(t, s.Save(ctx, []asset.Metadata{valid}))

	require.NoError(t, s.DB().Create(&store.Entry{Path: "project/bad-id", ID: "nope", Type: "texture"}).Error)
	require.NoError(t, s.DB().Create(&store.Entry{Path: "project/bad-type", ID: identity.Generate().String(), Type: "sound"}).Error)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []asset.Metadata{valid}, loaded)
}

func TestStore_Schema(t *testing.T) {
	s := newStore(t)

	columns, err := database.GetTableColumns(s.DB(), store.TableName)
	require.NoError(t, err)
	assert.Empty(t, database.MissingColumns(columns, store.Columns...))
}
