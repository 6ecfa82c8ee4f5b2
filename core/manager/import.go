package manager

import (
	"context"
	"fmt"

	"asset-registry/core/asset"
	"asset-registry/core/identity"

	"go.uber.org/zap"
)

// Import resolves path with the type inferred from its extension and installs
// it as the live asset of its ID, replacing any previous instance. A valid parent
// must be a live directory; the asset is added to its children once.
func (m *Manager) Import(ctx context.Context, path string, parent identity.ID) (identity.ID, error) {
	if err := ctx.Err(); err != nil {
		return identity.None(), err
	}

	typ := asset.TypeFromPath(path)

	m.mu.Lock()
	defer m.mu.Unlock()

	if parent.IsValid() {
		if _, ok := m.parentDirLocked(parent); !ok {
			return identity.None(), fmt.Errorf("import %s: %w: %s", path, ErrParentNotFound, parent)
		}
	}

	a := m.resolveLocked(path, typ, parent)
	m.registerLocked(a)
	m.installLocked(a)
	if parent.IsValid() {
		m.attachLocked(parent, a.Metadata.ID)
	}

	m.logger.Debug("Imported asset",
		zap.String("path", path),
		zap.Stringer("type", a.Metadata.Type),
		zap.Stringer("id", a.Metadata.ID),
	)
	return a.Metadata.ID, nil
}

// CreateEmbeddedAsset gives a resource inside the file at parentPath its own
// stable ID. The synthetic path is resolved like any other path with the
// parent's ID as parent, its metadata is registered and copied onto data, and
// data's runtime fields are derived from the synthetic path. The cache is not
// touched; call Insert to install data.
func (m *Manager) CreateEmbeddedAsset(parentPath string, typ asset.Type, internalPath string, data *asset.Asset) (identity.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	host, ok := m.registry[parentPath]
	if !ok {
		return identity.None(), fmt.Errorf("embed %s: %w: %s", internalPath, ErrParentNotFound, parentPath)
	}

	placeholder := m.resolveLocked(asset.EmbeddedPath(parentPath, internalPath), typ, host.ID)
	m.registerLocked(placeholder)

	data.CopyMetadata(placeholder)
	loaded := data.Runtime.Loaded
	data.Runtime = placeholder.Runtime
	data.Runtime.Loaded = loaded

	return data.Metadata.ID, nil
}

// Insert installs a as the live asset of its ID, replacing any previous
// instance. a must carry registered metadata, as produced by CreateEmbeddedAsset.
func (m *Manager) Insert(a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	md, ok := m.registry[a.Metadata.Path]
	if !ok || md.ID != a.Metadata.ID || !a.Metadata.ID.IsValid() {
		return fmt.Errorf("insert %s: %w", a.Metadata.Path, ErrNotRegistered)
	}

	m.installLocked(a)
	if a.Runtime.Parent.IsValid() {
		m.attachLocked(a.Runtime.Parent, a.Metadata.ID)
	}
	return nil
}

// DropEmbedded removes the live embedded assets of host whose IDs are not in
// keep and returns how many were dropped. Their registry entries are pruned by
// the next Reconcile.
func (m *Manager) DropEmbedded(host identity.ID, keep []identity.ID) int {
	kept := make(map[identity.ID]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stale := make(map[identity.ID]struct{})
	for id, a := range m.assets {
		if a.Runtime.Parent != host || !asset.IsEmbedded(a.Metadata.Path) {
			continue
		}
		if _, ok := kept[id]; !ok {
			stale[id] = struct{}{}
		}
	}
	if len(stale) == 0 {
		return 0
	}

	dropped := m.dropLocked(stale)
	m.logger.Debug("Dropped stale embedded assets",
		zap.Stringer("host", host),
		zap.Int("dropped", dropped),
	)
	return dropped
}
