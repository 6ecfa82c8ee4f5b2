package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"asset-registry/core/asset"
	"asset-registry/core/manager"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher applies file-system events of a local project folder to a manager.
type Watcher struct {
	m        *manager.Manager
	fsw      *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	// OnApply runs after every applied batch.
	OnApply func(ctx context.Context, changes []Change)

	mu sync.Mutex
	// dirs maps cleaned OS paths of watched directories to registry paths.
	dirs map[string]string
}

// New creates a watcher for the directories registered in m.
func New(m *manager.Manager, cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		m:        m,
		fsw:      fsw,
		logger:   m.Logger().Named("watch"),
		debounce: cfg.Debounce(),
		dirs:     make(map[string]string),
	}
	if err := w.refresh(); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops the underlying notifications.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watched returns the number of watched directories.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirs)
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var pending []Change
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if c := w.classify(ev); c.Action != ActionNone {
				pending = append(pending, c)
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		case <-timer.C:
			batch := Coalesce(pending)
			pending = pending[:0]
			w.Apply(ctx, batch)
		}
	}
}

// Apply runs a batch of changes against the manager, reconciles and refreshes
// the set of watched directories.
func (w *Watcher) Apply(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	for _, c := range changes {
		if err := w.apply(ctx, c); err != nil {
			w.logger.Warn("Failed to apply change",
				zap.Stringer("action", c.Action),
				zap.String("path", c.Path),
				zap.Error(err),
			)
		}
	}

	summary := w.m.Reconcile()
	if err := w.refresh(); err != nil {
		w.logger.Warn("Failed to refresh watched directories", zap.Error(err))
	}

	w.logger.Info("Applied file changes",
		zap.Int("changes", len(changes)),
		zap.Int("assets", summary.TotalAssets),
		zap.Int("pruned", summary.Orphans),
	)
	if w.OnApply != nil {
		w.OnApply(ctx, changes)
	}
}

func (w *Watcher) apply(ctx context.Context, c Change) error {
	if c.Action == ActionImport {
		parent, ok := w.m.Lookup(path.Dir(c.Path))
		if ok && parent.Type == asset.TypeDirectory {
			_, err := w.m.Import(ctx, c.Path, parent.ID)
			return err
		}
		// Unknown parent: fall back to synchronizing it.
		c = Change{Action: ActionResync, Path: path.Dir(c.Path)}
	}

	for p := c.Path; ; p = path.Dir(p) {
		if _, ok := w.m.Lookup(p); ok || p == w.m.ProjectFolder() {
			_, err := w.m.Resync(ctx, p)
			// A file replaced by a directory is re-resolved from its parent.
			retry := errors.Is(err, manager.ErrParentNotFound) || errors.Is(err, manager.ErrNotDirectory)
			if retry && p != w.m.ProjectFolder() {
				continue
			}
			return err
		}
		if p == "." || p == "/" || path.Dir(p) == p {
			return fmt.Errorf("%s is outside of %s: %w", c.Path, w.m.ProjectFolder(), manager.ErrParentNotFound)
		}
	}
}

// classify resolves the event to a registry path and maps it to a change.
func (w *Watcher) classify(ev fsnotify.Event) Change {
	p, ok := w.registryPath(ev.Name)
	if !ok {
		return Change{}
	}

	isDir := false
	if info, err := os.Stat(ev.Name); err == nil {
		isDir = info.IsDir()
	}
	return Classify(ev.Op, p, isDir)
}

// registryPath converts an event name below a watched directory into the
// registry path of the entry.
func (w *Watcher) registryPath(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	name = filepath.Clean(name)
	if reg, ok := w.dirs[name]; ok {
		return reg, true
	}
	reg, ok := w.dirs[filepath.Dir(name)]
	if !ok {
		return "", false
	}
	return path.Join(reg, filepath.Base(name)), true
}

// refresh watches every registered directory and forgets the removed ones.
func (w *Watcher) refresh() error {
	want := make(map[string]string)
	for _, md := range w.m.Registry() {
		if md.Type != asset.TypeDirectory || asset.IsEmbedded(md.Path) {
			continue
		}
		want[filepath.Clean(filepath.FromSlash(md.Path))] = md.Path
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for osPath := range w.dirs {
		if _, ok := want[osPath]; !ok {
			_ = w.fsw.Remove(osPath)
			delete(w.dirs, osPath)
		}
	}

	var firstErr error
	for osPath, reg := range want {
		if _, ok := w.dirs[osPath]; ok {
			continue
		}
		if err := w.fsw.Add(osPath); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to watch %s: %w", reg, err)
			}
			continue
		}
		w.dirs[osPath] = reg
	}
	return firstErr
}
