package manager

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"asset-registry/core/asset"
	"asset-registry/core/identity"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// syncState is shared by every goroutine of one SyncDirectory call.
type syncState struct {
	mu      sync.Mutex
	touched map[identity.ID]struct{}
	errs    error
}

func (s *syncState) touch(id identity.ID) {
	s.mu.Lock()
	s.touched[id] = struct{}{}
	s.mu.Unlock()
}

func (s *syncState) report(err error) {
	s.mu.Lock()
	s.errs = multierr.Append(s.errs, err)
	s.mu.Unlock()
}

// SyncDirectory rebuilds the subtree rooted at dirPath from the file system and
// returns the directory's ID. Known paths keep their IDs. Assets of a previous
// scan of this subtree that were not found again are dropped from the cache
// (their registry entries go at the next Reconcile).
//
// The returned error combines one *WalkError per subtree that could not be
// listed; those subtrees are left empty and the rest of the walk completes.
// Cancellation of ctx and an unknown parent are returned as is.
func (m *Manager) SyncDirectory(ctx context.Context, dirPath string, parent identity.ID) (identity.ID, error) {
	m.mu.RLock()
	previous := m.subtreeLocked(dirPath)
	m.mu.RUnlock()

	st := &syncState{touched: make(map[identity.ID]struct{})}
	id, err := m.syncDir(ctx, dirPath, parent, 0, st)
	if err != nil {
		return id, err
	}

	stale := make(map[identity.ID]struct{})
	for pid := range previous {
		if _, ok := st.touched[pid]; !ok {
			stale[pid] = struct{}{}
		}
	}

	m.mu.Lock()
	m.stats.WalkFailures += int64(len(multierr.Errors(st.errs)))
	dropped := 0
	if len(stale) > 0 {
		dropped = m.dropLocked(stale)
	}
	m.mu.Unlock()

	m.logger.Debug("Directory synchronized",
		zap.String("path", dirPath),
		zap.Int("touched", len(st.touched)),
		zap.Int("dropped", dropped),
	)
	return id, st.errs
}

// Resync synchronizes the directory at dirPath below its registered parent and
// reconciles. The project folder itself is synchronized as the root. dirPath
// must lie below the project folder and must not be registered as a file.
func (m *Manager) Resync(ctx context.Context, dirPath string) (identity.ID, error) {
	dirPath = path.Clean(dirPath)
	if !m.contains(dirPath) {
		return identity.None(), fmt.Errorf("resync %s: %w: %s", dirPath, ErrOutsideProject, m.projectFolder)
	}
	if md, ok := m.Lookup(dirPath); ok && md.Type != asset.TypeDirectory {
		return identity.None(), fmt.Errorf("resync %s: %w", dirPath, ErrNotDirectory)
	}

	parent := identity.None()
	if dirPath != m.projectFolder {
		md, ok := m.Lookup(path.Dir(dirPath))
		if !ok || md.Type != asset.TypeDirectory {
			return identity.None(), fmt.Errorf("resync %s: %w", dirPath, ErrParentNotFound)
		}
		parent = md.ID
	}

	id, err := m.SyncDirectory(ctx, dirPath, parent)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return id, ctxErr
	}
	m.Reconcile()
	return id, err
}

// contains reports whether the clean path p is the project folder or below it.
func (m *Manager) contains(p string) bool {
	root := m.projectFolder
	switch {
	case p == root:
		return true
	case path.IsAbs(p) != path.IsAbs(root):
		return false
	case root == ".":
		return p != ".." && !strings.HasPrefix(p, "../")
	case root == "/":
		return true
	default:
		return strings.HasPrefix(p, root+"/")
	}
}

// syncDir installs the directory asset for dirPath, then walks its entries.
// Only cancellation and an unknown parent are returned; listing failures go to st.
func (m *Manager) syncDir(ctx context.Context, dirPath string, parent identity.ID, depth int, st *syncState) (identity.ID, error) {
	if err := ctx.Err(); err != nil {
		return identity.None(), err
	}

	m.mu.Lock()
	if parent.IsValid() {
		if _, ok := m.parentDirLocked(parent); !ok {
			m.mu.Unlock()
			return identity.None(), fmt.Errorf("sync %s: %w: %s", dirPath, ErrParentNotFound, parent)
		}
	}
	dir := m.resolveLocked(dirPath, asset.TypeDirectory, parent)
	dir.Runtime.Loaded = true
	m.registerLocked(dir)
	m.installLocked(dir)
	if parent.IsValid() {
		m.attachLocked(parent, dir.Metadata.ID)
	}
	id := dir.Metadata.ID
	m.mu.Unlock()
	st.touch(id)

	if depth >= m.maxDepth {
		st.report(&WalkError{Path: dirPath, Err: ErrMaxDepth})
		return id, nil
	}

	entries, err := m.fs.List(ctx, dirPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return id, ctxErr
		}
		st.report(&WalkError{Path: dirPath, Err: err})
		return id, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.fanOut)
	for _, e := range entries {
		if e.IsDir {
			g.Go(func() error {
				_, err := m.syncDir(gctx, e.Path, id, depth+1, st)
				return err
			})
			continue
		}

		fid, err := m.Import(gctx, e.Path, id)
		if err != nil {
			if ctxErr := gctx.Err(); ctxErr != nil {
				break
			}
			st.report(&WalkError{Path: e.Path, Err: err})
			continue
		}
		st.touch(fid)
	}

	if err := g.Wait(); err != nil {
		return id, err
	}
	return id, ctx.Err()
}

// subtreeLocked collects the IDs below the live directory registered at dirPath.
func (m *Manager) subtreeLocked(dirPath string) map[identity.ID]struct{} {
	ids := make(map[identity.ID]struct{})
	md, ok := m.registry[dirPath]
	if !ok {
		return ids
	}

	stack := []identity.ID{md.ID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dir, ok := m.assets[id]
		if !ok || !dir.IsDirectory() {
			continue
		}
		for _, c := range dir.Children {
			if _, seen := ids[c]; seen {
				continue
			}
			ids[c] = struct{}{}
			stack = append(stack, c)
		}
	}
	return ids
}
