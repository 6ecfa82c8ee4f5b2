package cmd

import (
	"context"
	"fmt"

	"asset-registry/core/asset"
	"asset-registry/core/config"
	"asset-registry/core/database"
	"asset-registry/core/listing"
	"asset-registry/core/logger"
	"asset-registry/core/manager"
	"asset-registry/core/serializer"
	"asset-registry/core/storage"
	"asset-registry/core/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// session holds everything a command needs to work on one project.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	manager *manager.Manager
	// client and db are nil when the project is local or persistence is off.
	client storage.Client
	db     *gorm.DB
	store  *store.Store
}

// openSession loads the configuration, connects the optional collaborators,
// seeds the registry from the store and synchronizes the project.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if rootFlag != "" {
		cfg.Project.Root = rootFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{cfg: cfg, logger: logg}

	fsys, err := s.fileSystem(ctx)
	if err != nil {
		return nil, err
	}

	var seed []asset.Metadata
	if cfg.Project.Persist {
		seed = s.connectStore(ctx)
	}

	opts := []manager.Option{
		manager.WithLogger(logger.WithManager(logg, cfg.Project.Root)),
		manager.WithConfig(cfg.Project),
		manager.WithSeed(seed),
	}
	opts = append(opts, serializer.Loaders(cfg.Serializer)...)

	m, err := manager.New(ctx, cfg.Project.Root, fsys, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to synchronize %s: %w", cfg.Project.Root, err)
	}
	s.manager = m
	s.save(ctx)
	return s, nil
}

func (s *session) fileSystem(ctx context.Context) (listing.FileSystem, error) {
	if s.cfg.Project.Source == manager.SourceLocal {
		return listing.NewOS(), nil
	}

	client, err := storage.NewClient(s.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	bucket := listing.NewBucket(client, s.cfg.Storage.Bucket)
	if err := bucket.Verify(ctx); err != nil {
		return nil, err
	}
	s.client = client
	return bucket, nil
}

// connectStore opens the registry store. A failure disables persistence for
// the session instead of aborting it.
func (s *session) connectStore(ctx context.Context) []asset.Metadata {
	db, err := database.Connect(s.cfg.Database)
	if err != nil {
		s.logger.Warn("Optional database connection failed, registry will not be persisted", zap.Error(err))
		return nil
	}

	st := store.New(db, s.logger.Named("store"))
	if err := st.Migrate(ctx); err != nil {
		s.logger.Warn("Registry migration failed, registry will not be persisted", zap.Error(err))
		return nil
	}

	seed, err := st.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to load persisted registry", zap.Error(err))
	}

	s.db = db
	s.store = st
	s.logger.Info("Registry store connected",
		zap.String("driver", s.cfg.Database.Driver),
		zap.Int("entries", len(seed)),
	)
	return seed
}

// registrySaver is satisfied by *store.Store and consumed by the features.
type registrySaver interface {
	Save(ctx context.Context, entries []asset.Metadata) error
}

// saver returns the store, or a nil interface when persistence is off.
func (s *session) saver() registrySaver {
	if s.store == nil {
		return nil
	}
	return s.store
}

// save persists the current registry when a store is connected.
func (s *session) save(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.manager.Registry()); err != nil {
		s.logger.Warn("Failed to persist registry", zap.Error(err))
	}
}

// Close releases the cached assets and flushes the logger.
func (s *session) Close() {
	if err := s.manager.Close(); err != nil {
		s.logger.Warn("Failed to release assets", zap.Error(err))
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = s.logger.Sync()
}
