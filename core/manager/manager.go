package manager

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"sync"
	"time"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
	"asset-registry/core/listing"
	"asset-registry/core/reconcile"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Manager is the asset registry of one project folder.
type Manager struct {
	projectFolder string
	fs            listing.FileSystem
	logger        *zap.Logger
	maxDepth      int
	fanOut        int
	loadTimeout   time.Duration

	mu       sync.RWMutex
	registry map[string]asset.Metadata
	assets   map[identity.ID]*asset.Asset
	// order records the first installation of every ID; it is the encounter
	// order used to break sort ties.
	order  map[identity.ID]uint64
	seq    uint64
	sorted []reconcile.Entry
	root   identity.ID
	stats  Stats

	loaders  map[asset.Type]Loader
	inflight singleflight.Group
}

// Stats holds counters since construction.
type Stats struct {
	Assets       int   `json:"assets"`
	Registered   int   `json:"registered"`
	Mismatches   int64 `json:"mismatches"`
	WalkFailures int64 `json:"walk_failures"`
	Loads        int64 `json:"loads"`
	LoadFailures int64 `json:"load_failures"`
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithConfig applies the limits of cfg. Root and Source are ignored.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		if cfg.MaxDepth > 0 {
			m.maxDepth = cfg.MaxDepth
		}
		if cfg.FanOut > 0 {
			m.fanOut = cfg.FanOut
		}
		m.loadTimeout = cfg.LoadTimeout()
	}
}

// WithSeed pre-populates the registry, typically from a persisted snapshot,
// so previously assigned IDs survive a restart.
func WithSeed(entries []asset.Metadata) Option {
	return func(m *Manager) {
		for _, md := range entries {
			if md.Path == "" || !md.ID.IsValid() {
				continue
			}
			m.registry[md.Path] = md
		}
	}
}

// WithLoader registers a loader for typ.
func WithLoader(typ asset.Type, l Loader) Option {
	return func(m *Manager) {
		m.loaders[typ] = l
	}
}

// New creates a manager for projectFolder, synchronizes the whole tree and
// reconciles. projectFolder is cleaned first, so "./game" and "game/" both
// register as "game". Listing failures below the root are logged and counted in Stats;
// only cancellation of ctx makes New fail.
func New(ctx context.Context, projectFolder string, fsys listing.FileSystem, opts ...Option) (*Manager, error) {
	projectFolder = path.Clean(projectFolder)
	m := &Manager{
		projectFolder: projectFolder,
		fs:            fsys,
		logger:        zap.NewNop(),
		maxDepth:      64,
		fanOut:        8,
		registry:      make(map[string]asset.Metadata),
		assets:        make(map[identity.ID]*asset.Asset),
		order:         make(map[identity.ID]uint64),
		loaders:       make(map[asset.Type]Loader),
	}
	for _, opt := range opts {
		opt(m)
	}

	start := time.Now()
	root, err := m.SyncDirectory(ctx, projectFolder, identity.None())
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, werr := range multierr.Errors(err) {
		m.logger.Warn("Directory walk failed", zap.Error(werr))
	}

	m.mu.Lock()
	m.root = root
	m.mu.Unlock()

	summary := m.Reconcile()
	m.logger.Info("Asset registry synchronized",
		zap.String("project", projectFolder),
		zap.Int("assets", summary.TotalAssets),
		zap.Int("directories", summary.Directories),
		zap.Int("pruned", summary.Orphans),
		zap.Duration("elapsed", time.Since(start)),
	)

	return m, nil
}

// ProjectFolder returns the root path given at construction.
func (m *Manager) ProjectFolder() string {
	return m.projectFolder
}

// FileSystem returns the listing capability the manager scans, for loaders to open files.
func (m *Manager) FileSystem() listing.FileSystem {
	return m.fs
}

// Logger returns the manager's logger.
func (m *Manager) Logger() *zap.Logger {
	return m.logger
}

// Root returns the ID of the project folder.
func (m *Manager) Root() identity.ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// Get returns a copy of the live asset with the given ID.
func (m *Manager) Get(id identity.ID) (*asset.Asset, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

// Lookup returns the registry metadata of path.
func (m *Manager) Lookup(path string) (asset.Metadata, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	md, ok := m.registry[path]
	return md, ok
}

// Children returns copies of the live children of a directory, in child-list order.
func (m *Manager) Children(id identity.ID) ([]*asset.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir, ok := m.assets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	if !dir.IsDirectory() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir.Metadata.Path)
	}

	children := make([]*asset.Asset, 0, len(dir.Children))
	for _, c := range dir.Children {
		if a, ok := m.assets[c]; ok {
			children = append(children, a.Clone())
		}
	}
	return children, nil
}

// Registry returns a copy of the registry sorted by path.
func (m *Manager) Registry() []asset.Metadata {
	m.mu.RLock()
	entries := make([]asset.Metadata, 0, len(m.registry))
	for _, md := range m.registry {
		entries = append(entries, md)
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}

// Sorted returns the sorted view as built by the last Reconcile, with copied assets.
// It does not reflect mutations made since.
func (m *Manager) Sorted() []reconcile.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	view := make([]reconcile.Entry, len(m.sorted))
	for i, e := range m.sorted {
		view[i] = reconcile.Entry{ID: e.ID, Asset: e.Asset.Clone()}
	}
	return view
}

// Assets returns copies of every live asset in encounter order.
func (m *Manager) Assets() []*asset.Asset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := m.snapshotLocked().Assets
	out := make([]*asset.Asset, len(entries))
	for i, e := range entries {
		out[i] = e.Asset.Clone()
	}
	return out
}

// Len returns the number of live assets.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.assets)
}

// Stats returns a snapshot of the counters.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.stats
	s.Assets = len(m.assets)
	s.Registered = len(m.registry)
	return s
}

// Close releases every live asset. The registry is kept so it can still be persisted.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs error
	for id, a := range m.assets {
		errs = multierr.Append(errs, release(a))
		delete(m.assets, id)
	}
	m.sorted = nil
	return errs
}

// release frees loader output that holds resources.
func release(a *asset.Asset) error {
	if c, ok := a.Data.(io.Closer); ok {
		a.Data = nil
		return c.Close()
	}
	return nil
}
