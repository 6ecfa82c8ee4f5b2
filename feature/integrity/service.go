package integrity

import (
	"context"
	"errors"

	"asset-registry/core/asset"
	"asset-registry/core/manager"
	"asset-registry/core/reconcile"
	"asset-registry/core/storage"
	"asset-registry/core/store"
	"asset-registry/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoStorage is returned by structure checks when the project is not read from a bucket.
	ErrNoStorage = errors.New("project is not backed by object storage")
	// ErrNoDatabase is returned by schema checks without a database connection.
	ErrNoDatabase = errors.New("no database connection")
)

// Saver persists the registry after a fix.
type Saver interface {
	Save(ctx context.Context, entries []asset.Metadata) error
}

// Service handles integrity checks.
type Service struct {
	manager *manager.Manager
	client  storage.Client
	bucket  string
	db      *gorm.DB
	saver   Saver
	logger  *zap.Logger
}

// NewService creates a new integrity service. client, db and saver may be nil.
func NewService(m *manager.Manager, client storage.Client, bucket string, db *gorm.DB, saver Saver, logger *zap.Logger) *Service {
	return &Service{
		manager: m,
		client:  client,
		bucket:  bucket,
		db:      db,
		saver:   saver,
		logger:  logger,
	}
}

// CheckRegistry inspects the registry without modifying it.
func (s *Service) CheckRegistry() *checks.RegistryReport {
	return checks.CheckRegistry(s.manager)
}

// FixRegistry reconciles and persists the pruned registry.
func (s *Service) FixRegistry(ctx context.Context) (reconcile.Summary, error) {
	summary := s.manager.Reconcile()
	if s.saver == nil {
		return summary, nil
	}
	return summary, s.saver.Save(ctx, s.manager.Registry())
}

// CheckStructure returns the registered directories missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.Directories(s.manager))
}

// CheckSchema verifies the registry table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db, store.Entry{})
}
