package manager

import (
	"context"
	"fmt"

	"asset-registry/core/asset"
	"asset-registry/core/identity"

	"go.uber.org/zap"
)

// Loader materializes the data of an asset. It receives a private copy of the
// live asset, with Data cleared, and stores its output in a.Data. The output
// replaces the previous data of the live asset. The boolean reports whether the
// asset counts as loaded.
type Loader interface {
	Load(ctx context.Context, m *Manager, a *asset.Asset) (bool, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, m *Manager, a *asset.Asset) (bool, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, m *Manager, a *asset.Asset) (bool, error) {
	return f(ctx, m, a)
}

// RegisterLoader sets the loader for typ, replacing any previous one.
func (m *Manager) RegisterLoader(typ asset.Type, l Loader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaders[typ] = l
}

// Load dispatches the loader registered for the type of the asset with the
// given ID and returns whether it is now loaded. Concurrent calls for the same
// ID share a single loader invocation. The shared invocation is not canceled
// with any caller's ctx; a canceled caller returns ctx.Err() while the load goes
// on for the others, bounded by the configured load timeout.
//
// Directories and unclassified assets fail with ErrNotLoadable; a type without
// loader fails with ErrNoLoaderRegistered.
func (m *Manager) Load(ctx context.Context, id identity.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ch := m.inflight.DoChan(id.String(), func() (any, error) {
		return m.load(context.WithoutCancel(ctx), id)
	})
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, res.Err
		}
		return res.Val.(bool), nil
	}
}

// LoadPath is Load for a registered path.
func (m *Manager) LoadPath(ctx context.Context, path string) (bool, error) {
	md, ok := m.Lookup(path)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}
	return m.Load(ctx, md.ID)
}

func (m *Manager) load(ctx context.Context, id identity.ID) (bool, error) {
	m.mu.RLock()
	live, ok := m.assets[id]
	if !ok {
		m.mu.RUnlock()
		return false, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	if !live.Loadable() {
		m.mu.RUnlock()
		return false, fmt.Errorf("%w: %s (%s)", ErrNotLoadable, live.Metadata.Path, live.Metadata.Type)
	}
	loader, ok := m.loaders[live.Metadata.Type]
	if !ok {
		m.mu.RUnlock()
		return false, fmt.Errorf("%w: %s (%s)", ErrNoLoaderRegistered, live.Metadata.Path, live.Metadata.Type)
	}
	work := live.Clone()
	work.Data = nil
	m.mu.RUnlock()

	if m.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.loadTimeout)
		defer cancel()
	}

	loaded, err := loader.Load(ctx, m, work)
	loaded = loaded && err == nil

	m.mu.Lock()
	m.stats.Loads++
	if err != nil {
		m.stats.LoadFailures++
	}
	if current, ok := m.assets[id]; ok && current == live {
		if rerr := release(live); rerr != nil {
			m.logger.Warn("Failed to release previous asset data", zap.String("path", live.Metadata.Path), zap.Error(rerr))
		}
		live.Data = work.Data
		live.Runtime.Loaded = loaded
	} else {
		// Replaced or dropped while loading; the result belongs to nobody.
		if rerr := release(work); rerr != nil {
			m.logger.Warn("Failed to release orphaned asset data", zap.String("path", work.Metadata.Path), zap.Error(rerr))
		}
		loaded = false
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Error("Asset load failed", zap.String("path", work.Metadata.Path), zap.Error(err))
		return false, fmt.Errorf("failed to load %s: %w", work.Metadata.Path, err)
	}
	return loaded, nil
}
