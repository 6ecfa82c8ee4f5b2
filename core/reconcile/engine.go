package reconcile

import (
	"sort"
	"strings"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
)

// sortKey is computed once per entry before sorting.
type sortKey struct {
	typ      asset.Type
	filename string
}

func keyOf(a *asset.Asset) sortKey {
	return sortKey{
		typ:      a.Metadata.Type,
		filename: strings.ToLower(a.Runtime.Filename),
	}
}

func (k sortKey) less(o sortKey) bool {
	if k.typ != o.typ {
		return k.typ < o.typ
	}
	return k.filename < o.filename
}

// SortEntries returns a stably sorted copy of entries.
func SortEntries(entries []Entry) []Entry {
	type keyed struct {
		key   sortKey
		entry Entry
	}
	ks := make([]keyed, len(entries))
	for i, e := range entries {
		ks[i] = keyed{key: keyOf(e.Asset), entry: e}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].key.less(ks[j].key)
	})

	sorted := make([]Entry, len(ks))
	for i, k := range ks {
		sorted[i] = k.entry
	}
	return sorted
}

// BuildPlan computes the sorted view, the re-ordered child lists and the
// registry entries to prune. The snapshot is not modified.
func BuildPlan(s Snapshot) *Plan {
	sorted := SortEntries(s.Assets)

	rank := make(map[identity.ID]int, len(sorted))
	for i, e := range sorted {
		rank[e.ID] = i
	}

	plan := &Plan{
		Sorted:   sorted,
		Children: make(map[identity.ID][]identity.ID),
		Dangling: make(map[identity.ID][]identity.ID),
		Orphans:  []string{},
	}

	for _, e := range sorted {
		if !e.Asset.IsDirectory() {
			continue
		}
		plan.Summary.Directories++

		children := make([]identity.ID, 0, len(e.Asset.Children))
		for _, c := range e.Asset.Children {
			if _, ok := rank[c]; !ok {
				plan.Dangling[e.ID] = append(plan.Dangling[e.ID], c)
				plan.Summary.Dangling++
				continue
			}
			children = append(children, c)
		}
		sort.SliceStable(children, func(i, j int) bool {
			return rank[children[i]] < rank[children[j]]
		})
		plan.Children[e.ID] = children
	}

	for path, md := range s.Registry {
		if _, ok := rank[md.ID]; !ok {
			plan.Orphans = append(plan.Orphans, path)
		}
	}
	sort.Strings(plan.Orphans)

	for _, e := range sorted {
		if e.Asset.Metadata.Type != asset.TypeNone {
			continue
		}
		if md, ok := s.Registry[e.Asset.Metadata.Path]; ok && md.Type != asset.TypeNone {
			plan.Mismatched = append(plan.Mismatched, md.Path)
		}
	}

	plan.Summary.TotalAssets = len(sorted)
	plan.Summary.Registered = len(s.Registry)
	plan.Summary.Orphans = len(plan.Orphans)
	plan.Summary.Mismatches = len(plan.Mismatched)

	return plan
}
