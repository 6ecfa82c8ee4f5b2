// Package reconcile builds the derived views of the asset registry and plans
// registry garbage collection.
//
// The manager keeps two sources of truth: the path-keyed registry of durable
// metadata and the identity-keyed cache of live assets. Reconciliation looks at
// a consistent snapshot of both and produces a Plan:
//
//  1. Sorted view: every live asset ordered by type (declaration order), then
//     by lowercase filename. Ties keep encounter order (stable sort); sort keys
//     are computed once per entry.
//
//  2. Child lists: each directory's children re-ordered by their rank in the
//     sorted view. Children that no longer exist in the cache are reported as
//     dangling and dropped.
//
//  3. Orphans: registry paths whose identity has no live asset. Applying the
//     plan removes them from the registry.
//
// Building a plan never mutates the snapshot; the manager applies it while it
// holds exclusive access to both maps.
//
// # Usage
//
//	plan := reconcile.BuildPlan(snapshot)
//	for _, path := range plan.Orphans {
//	    delete(registry, path)
//	}
package reconcile
