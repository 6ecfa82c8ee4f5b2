// Package watch keeps a manager in sync with a local project folder by
// following file-system notifications.
//
// Events are debounced and coalesced into a batch of changes: a written or
// created file is re-imported, a created directory is synchronized, and a
// removal or rename re-synchronizes the parent directory so the vanished
// entries are dropped. Each applied batch ends with a Reconcile and an optional
// callback, used by the watch command to persist the registry.
package watch
