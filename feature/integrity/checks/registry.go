package checks

import (
	"asset-registry/core/asset"
	"asset-registry/core/manager"
	"asset-registry/core/reconcile"
)

// RegistryReport describes the consistency of the registry and the asset cache.
type RegistryReport struct {
	Status  string            `json:"status"` // "ok", "warning"
	Summary reconcile.Summary `json:"summary"`
	// Orphans are registry paths without a live asset; the next reconcile prunes them.
	Orphans []string `json:"orphans"`
	// Mismatched are paths whose live asset degraded to type none.
	Mismatched []string `json:"mismatched"`
	// Dangling maps directory paths to child IDs missing from the cache.
	Dangling map[string][]string `json:"dangling"`
	// Unloaded are loadable assets not loaded yet.
	Unloaded     []string `json:"unloaded"`
	WalkFailures int64    `json:"walk_failures"`
}

// CheckRegistry inspects m without modifying it.
func CheckRegistry(m *manager.Manager) *RegistryReport {
	plan := m.Plan()
	report := &RegistryReport{
		Status:       "ok",
		Summary:      plan.Summary,
		Orphans:      plan.Orphans,
		Mismatched:   plan.Mismatched,
		Dangling:     make(map[string][]string),
		Unloaded:     []string{},
		WalkFailures: m.Stats().WalkFailures,
	}
	if report.Mismatched == nil {
		report.Mismatched = []string{}
	}

	paths := make(map[string]string)
	for _, a := range m.Assets() {
		paths[a.Metadata.ID.String()] = a.Metadata.Path
		if a.Loadable() && !a.Runtime.Loaded {
			report.Unloaded = append(report.Unloaded, a.Metadata.Path)
		}
	}

	for dir, children := range plan.Dangling {
		key := paths[dir.String()]
		for _, c := range children {
			report.Dangling[key] = append(report.Dangling[key], c.String())
		}
	}

	if len(report.Orphans) > 0 || len(report.Mismatched) > 0 || len(report.Dangling) > 0 || report.WalkFailures > 0 {
		report.Status = "warning"
	}
	return report
}

// Directories returns the registered directory paths, embedded paths excluded.
func Directories(m *manager.Manager) []string {
	var dirs []string
	for _, md := range m.Registry() {
		if md.Type == asset.TypeDirectory && !asset.IsEmbedded(md.Path) {
			dirs = append(dirs, md.Path)
		}
	}
	return dirs
}
