package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one named collection.
type kvEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:64"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// KVStore persists collections in an on-device sqlite file.
type KVStore struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and migrates the table.
func Open(path string) (*KVStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	return NewKVStore(db)
}

// NewKVStore wraps an existing gorm connection.
func NewKVStore(db *gorm.DB) (*KVStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrating kv_entries: %w", err)
	}
	return &KVStore{db: db}, nil
}

var _ portsrepo.KVStoreFacade = (*KVStore)(nil)

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&kvEntry{}).Error; err != nil {
		return fmt.Errorf("removing key %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *KVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
