package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-registry/core/asset"
	"asset-registry/core/identity"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableName is the table holding the registry.
const TableName = "asset_registry"

// batchSize bounds the rows of one INSERT statement.
const batchSize = 500

// Columns lists the columns of the registry table.
var Columns = []string{"path", "id", "type", "updated_at"}

// Entry is the persisted form of asset.Metadata.
type Entry struct {
	Path      string    `gorm:"column:path;primaryKey;type:varchar(512)"`
	ID        string    `gorm:"column:id;type:char(36);not null;index"`
	Type      string    `gorm:"column:type;type:varchar(32);not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName implements gorm's tabler interface.
func (Entry) TableName() string {
	return TableName
}

// Store reads and writes the registry table.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New creates a store over db.
func New(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the registry table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Load returns the persisted registry ordered by path. Rows with an invalid ID
// or type are skipped and logged.
func (s *Store) Load(ctx context.Context) ([]asset.Metadata, error) {
	var rows []Entry
	if err := s.db.WithContext(ctx).Order("path").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	entries := make([]asset.Metadata, 0, len(rows))
	for _, row := range rows {
		md, err := row.metadata()
		if err != nil {
			s.logger.Warn("Skipping invalid registry row", zap.String("path", row.Path), zap.Error(err))
			continue
		}
		entries = append(entries, md)
	}
	return entries, nil
}

// Save replaces the persisted registry with entries.
func (s *Store) Save(ctx context.Context, entries []asset.Metadata) error {
	now := time.Now().UTC()
	rows := make([]Entry, 0, len(entries))
	for _, md := range entries {
		rows = append(rows, Entry{
			Path:      md.Path,
			ID:        md.ID.String(),
			Type:      md.Type.String(),
			UpdatedAt: now,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Entry{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}

	s.logger.Debug("Registry saved", zap.Int("entries", len(rows)))
	return nil
}

func (e Entry) metadata() (asset.Metadata, error) {
	id, err := identity.Parse(e.ID)
	if err != nil {
		return asset.Metadata{}, err
	}
	if !id.IsValid() {
		return asset.Metadata{}, errors.New("nil id")
	}
	typ, err := asset.ParseType(e.Type)
	if err != nil {
		return asset.Metadata{}, err
	}
	return asset.Metadata{Path: e.Path, ID: id, Type: typ}, nil
}
