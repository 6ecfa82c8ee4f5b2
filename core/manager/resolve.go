package manager

import (
	"asset-registry/core/asset"
	"asset-registry/core/identity"

	"go.uber.org/zap"
)

// resolveLocked builds a fresh asset for path. The ID comes from the registry
// when the path is known, otherwise a new one is generated. A known path with a
// different registered type yields an asset of type None; the registry is not
// touched. Callers must hold m.mu for writing.
func (m *Manager) resolveLocked(path string, typ asset.Type, parent identity.ID) *asset.Asset {
	a := asset.New(typ)
	a.Metadata.Path = path
	a.Runtime = asset.Runtime(path, parent)

	md, ok := m.registry[path]
	if !ok {
		a.Metadata.ID = identity.Generate()
		a.Metadata.Type = typ
		return a
	}

	a.Metadata.ID = md.ID
	a.Metadata.Type = md.Type
	if md.Type != typ {
		m.stats.Mismatches++
		m.logger.Error("Asset type mismatch",
			zap.String("path", path),
			zap.Stringer("registered", md.Type),
			zap.Stringer("requested", typ),
		)
		a.Metadata.Type = asset.TypeNone
	}
	return a
}

// registerLocked inserts the metadata of a unless its path is already registered.
func (m *Manager) registerLocked(a *asset.Asset) {
	if _, ok := m.registry[a.Metadata.Path]; ok {
		return
	}
	m.registry[a.Metadata.Path] = a.Metadata
}

// installLocked makes a the live instance of its ID, releasing any previous instance.
func (m *Manager) installLocked(a *asset.Asset) {
	id := a.Metadata.ID
	if prev, ok := m.assets[id]; ok && prev != a {
		if err := release(prev); err != nil {
			m.logger.Warn("Failed to release replaced asset", zap.String("path", prev.Metadata.Path), zap.Error(err))
		}
	}
	m.assets[id] = a
	if _, ok := m.order[id]; !ok {
		m.seq++
		m.order[id] = m.seq
	}
}

// parentDirLocked returns the live directory for parent.
func (m *Manager) parentDirLocked(parent identity.ID) (*asset.Asset, bool) {
	dir, ok := m.assets[parent]
	if !ok || !dir.IsDirectory() {
		return nil, false
	}
	return dir, true
}

// attachLocked appends child to the parent directory's child list once.
func (m *Manager) attachLocked(parent, child identity.ID) {
	dir, ok := m.parentDirLocked(parent)
	if !ok || dir.HasChild(child) {
		return
	}
	dir.Children = append(dir.Children, child)
}

// dropLocked removes ids from the cache, along with anything parented to them.
func (m *Manager) dropLocked(ids map[identity.ID]struct{}) int {
	for grew := true; grew; {
		grew = false
		for id, a := range m.assets {
			if _, gone := ids[id]; gone {
				continue
			}
			if _, gone := ids[a.Runtime.Parent]; gone {
				ids[id] = struct{}{}
				grew = true
			}
		}
	}

	dropped := 0
	for id := range ids {
		a, ok := m.assets[id]
		if !ok {
			continue
		}
		if err := release(a); err != nil {
			m.logger.Warn("Failed to release dropped asset", zap.String("path", a.Metadata.Path), zap.Error(err))
		}
		delete(m.assets, id)
		delete(m.order, id)
		dropped++
	}
	return dropped
}
