package manager

import (
	"sort"

	"asset-registry/core/reconcile"

	"go.uber.org/zap"
)

// Reconcile rebuilds the sorted view and the directory child order, and prunes
// registry entries whose ID has no live asset. It holds the lock exclusively for
// the whole operation.
func (m *Manager) Reconcile() reconcile.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	plan := reconcile.BuildPlan(m.snapshotLocked())

	for _, p := range plan.Orphans {
		delete(m.registry, p)
	}
	for id, children := range plan.Children {
		m.assets[id].Children = children
	}
	m.sorted = plan.Sorted

	if plan.Summary.Orphans > 0 {
		m.logger.Info("Pruned orphaned registry entries", zap.Int("count", plan.Summary.Orphans))
	}
	return plan.Summary
}

// Plan computes what Reconcile would do without applying it. The sorted view and
// child lists are left out since they would reference live assets.
func (m *Manager) Plan() *reconcile.Plan {
	m.mu.RLock()
	defer m.mu.RUnlock()
	plan := reconcile.BuildPlan(m.snapshotLocked())
	plan.Sorted = nil
	plan.Children = nil
	return plan
}

// snapshotLocked lists live assets in encounter order. The registry map is shared, not copied.
func (m *Manager) snapshotLocked() reconcile.Snapshot {
	entries := make([]reconcile.Entry, 0, len(m.assets))
	for id, a := range m.assets {
		entries = append(entries, reconcile.Entry{ID: id, Asset: a})
	}
	sort.Slice(entries, func(i, j int) bool {
		return m.order[entries[i].ID] < m.order[entries[j].ID]
	})
	return reconcile.Snapshot{Registry: m.registry, Assets: entries}
}
