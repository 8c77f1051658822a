package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainRepo "ayurcare/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one persisted key slot when the postgres driver is selected.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     []byte    `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (domainRepo.KeyValueStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv schema: %w", err)
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrKeyNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
