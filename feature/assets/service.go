package assets

import (
	"context"
	"errors"
	"fmt"
	"path"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
	"asset-registry/core/manager"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Saver persists the registry after a mutation.
type Saver interface {
	Save(ctx context.Context, entries []asset.Metadata) error
}

// Service exposes the registry operations used by the HTTP handler.
type Service struct {
	manager *manager.Manager
	saver   Saver
	logger  *zap.Logger
}

// NewService creates a new assets service. saver may be nil.
func NewService(m *manager.Manager, saver Saver, logger *zap.Logger) *Service {
	return &Service{manager: m, saver: saver, logger: logger}
}

// List returns the sorted view, optionally restricted to one type.
func (s *Service) List(typ *asset.Type) []AssetView {
	entries := s.manager.Sorted()
	views := make([]AssetView, 0, len(entries))
	for _, e := range entries {
		if typ != nil && e.Asset.Metadata.Type != *typ {
			continue
		}
		views = append(views, NewAssetView(e.Asset))
	}
	return views
}

// Get returns one live asset.
func (s *Service) Get(id identity.ID) (AssetView, error) {
	a, ok := s.manager.Get(id)
	if !ok {
		return AssetView{}, fmt.Errorf("%w: %s", manager.ErrAssetNotFound, id)
	}
	return NewAssetView(a), nil
}

// Children returns the children of a directory.
func (s *Service) Children(id identity.ID) ([]AssetView, error) {
	children, err := s.manager.Children(id)
	if err != nil {
		return nil, err
	}
	views := make([]AssetView, len(children))
	for i, c := range children {
		views[i] = NewAssetView(c)
	}
	return views, nil
}

// Registry returns the registry sorted by path.
func (s *Service) Registry() []asset.Metadata {
	return s.manager.Registry()
}

// Sync re-synchronizes dirPath, or the whole project when empty, and reconciles.
// Walk failures are reported in the result, not as an error.
func (s *Service) Sync(ctx context.Context, dirPath string) (*SyncResult, error) {
	if dirPath == "" {
		dirPath = s.manager.ProjectFolder()
	}

	before := len(s.manager.Registry())
	id, err := s.manager.Resync(ctx, dirPath)

	result := &SyncResult{Path: dirPath, Failures: []string{}}
	for _, e := range multierr.Errors(err) {
		var werr *manager.WalkError
		if !errors.As(e, &werr) {
			return nil, err
		}
		result.Failures = append(result.Failures, werr.Error())
	}

	registered := s.manager.Registry()
	result.ID = id.String()
	result.Assets = s.manager.Len()
	result.Pruned = max(0, before-len(registered))

	s.persist(ctx, registered)
	return result, nil
}

// Import imports one file. Without parent the enclosing directory is looked up by path.
func (s *Service) Import(ctx context.Context, req ImportRequest) (identity.ID, error) {
	if req.Path == "" {
		return identity.None(), errors.New("path is required")
	}
	req.Path = path.Clean(req.Path)

	parent := identity.None()
	if req.Parent != "" {
		id, err := identity.Parse(req.Parent)
		if err != nil {
			return identity.None(), fmt.Errorf("invalid parent: %w", err)
		}
		parent = id
	} else if md, ok := s.manager.Lookup(path.Dir(req.Path)); ok {
		parent = md.ID
	}

	id, err := s.manager.Import(ctx, req.Path, parent)
	if err != nil {
		return identity.None(), err
	}

	s.manager.Reconcile()
	s.persist(ctx, s.manager.Registry())
	return id, nil
}

// Load dispatches the loader of one asset. Loaders may register or drop
// embedded assets, so the registry is reconciled and persisted afterwards.
func (s *Service) Load(ctx context.Context, id identity.ID) (AssetView, error) {
	before, live := len(s.manager.Registry()), s.manager.Len()
	if _, err := s.manager.Load(ctx, id); err != nil {
		return AssetView{}, err
	}

	if len(s.manager.Registry()) != before || s.manager.Len() != live {
		s.manager.Reconcile()
		s.persist(ctx, s.manager.Registry())
	}
	return s.Get(id)
}

func (s *Service) persist(ctx context.Context, entries []asset.Metadata) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(ctx, entries); err != nil {
		s.logger.Warn("Failed to persist registry", zap.Error(err))
	}
}
