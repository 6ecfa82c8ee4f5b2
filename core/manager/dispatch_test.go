package manager_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
	"asset-registry/core/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, newProject())

	t.Run("NoLoaderRegistered", func(t *testing.T) {
		_, err := m.LoadPath(ctx, "project/models/ship.obj")
		assert.ErrorIs(t, err, manager.ErrNoLoaderRegistered)
	})

	t.Run("DirectoryNotLoadable", func(t *testing.T) {
		_, err := m.Load(ctx, m.Root())
		assert.ErrorIs(t, err, manager.ErrNotLoadable)
	})

	t.Run("UnclassifiedNotLoadable", func(t *testing.T) {
		_, err := m.LoadPath(ctx, "project/readme.md")
		assert.ErrorIs(t, err, manager.ErrNotLoadable)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := m.Load(ctx, identity.Generate())
		assert.ErrorIs(t, err, manager.ErrAssetNotFound)
	})

	t.Run("UnknownPath", func(t *testing.T) {
		_, err := m.LoadPath(ctx, "project/missing.png")
		assert.ErrorIs(t, err, manager.ErrAssetNotFound)
	})

	t.Run("LoaderFailure", func(t *testing.T) {
		m.RegisterLoader(asset.TypeTexture, manager.LoaderFunc(func(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
			return true, assert.AnError
		}))

		loaded, err := m.LoadPath(ctx, "project/textures/wood.png")
		assert.False(t, loaded)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, int64(1), m.Stats().LoadFailures)

		a, _ := m.Get(mustLookup(t, m, "project/textures/wood.png").ID)
		assert.False(t, a.Runtime.Loaded)
	})
}

func TestLoad_SingleFlight(t *testing.T) {
	m := newManager(t, newProject())

	var calls atomic.Int32
	release := make(chan struct{})
	m.RegisterLoader(asset.TypeTexture, manager.LoaderFunc(func(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
		calls.Add(1)
		<-release
		return true, nil
	}))

	md := mustLookup(t, m, "project/textures/wood.png")
	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loaded, err := m.Load(context.Background(), md.ID)
			assert.NoError(t, err)
			results[i] = loaded
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, loaded := range results {
		assert.True(t, loaded)
	}
	assert.Equal(t, int64(1), m.Stats().Loads)
}

func TestLoad_Timeout(t *testing.T) {
	m := newManager(t, newProject(), manager.WithConfig(manager.Config{LoadTimeoutSeconds: 5}))

	var deadline bool
	m.RegisterLoader(asset.TypeTexture, manager.LoaderFunc(func(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
		_, deadline = ctx.Deadline()
		return true, nil
	}))

	_, err := m.LoadPath(context.Background(), "project/textures/wood.png")
	require.NoError(t, err)
	assert.True(t, deadline)
}

func TestLoad_ReplacedWhileLoading(t *testing.T) {
	m := newManager(t, newProject())
	md := mustLookup(t, m, "project/textures/wood.png")
	parent := mustLookup(t, m, "project/textures")

	data := &closer{}
	m.RegisterLoader(asset.TypeTexture, manager.LoaderFunc(func(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
		a.Data = data
		_, err := m.Import(ctx, a.Metadata.Path, parent.ID)
		return true, err
	}))

	loaded, err := m.Load(context.Background(), md.ID)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, 1, data.closed)

	live, _ := m.Get(md.ID)
	assert.False(t, live.Runtime.Loaded)
	assert.Nil(t, live.Data)
}

func TestLoad_CallerCanceled(t *testing.T) {
	m := newManager(t, newProject())
	md := mustLookup(t, m, "project/textures/wood.png")

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	seen := make(chan error, 1)
	m.RegisterLoader(asset.TypeTexture, manager.LoaderFunc(func(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
		calls.Add(1)
		close(started)
		<-release
		seen <- ctx.Err()
		return true, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := m.Load(ctx, md.ID)
		first <- err
	}()
	<-started

	second := make(chan bool, 1)
	go func() {
		loaded, err := m.Load(context.Background(), md.ID)
		assert.NoError(t, err)
		second <- loaded
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(release)
	assert.True(t, <-second)
	assert.NoError(t, <-seen)
	assert.Equal(t, int32(1), calls.Load())

	live, _ := m.Get(md.ID)
	assert.True(t, live.Runtime.Loaded)

	t.Run("AlreadyCanceled", func(t *testing.T) {
		_, err := m.Load(ctx, md.ID)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls.Load())
	})
}
