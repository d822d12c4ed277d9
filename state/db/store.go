// Package db provides a store backend persisted in SQLite using GORM.
package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/govm-net/nftmint/state"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultDBPath = "./state.db"
)

// Record is one state entry in the database
type Record struct {
	Key   string `gorm:"column:record_key;primaryKey;size:255"`
	Value []byte `gorm:"column:record_value;type:blob;not null"`
}

// TableName specifies the table name for Record
func (Record) TableName() string {
	return "records"
}

// Store implements state.TxStore using SQLite with GORM
type Store struct {
	db *gorm.DB
}

func init() {
	state.Register(state.DBBackendType, New)
}

// New creates a new SQLite-backed store. The database path is taken
// from the "db_path" parameter, defaulting to ./state.db.
func New(params map[string]any) (state.TxStore, error) {
	if params == nil {
		params = make(map[string]any)
	}
	dbPath := defaultDBPath
	if path, ok := params["db_path"].(string); ok && path != "" {
		dbPath = path
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gdb.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: gdb}, nil
}

// Get implements state.Store
func (s *Store) Get(key string, value any) (bool, error) {
	var rec Record
	result := s.db.Where("record_key = ?", key).First(&rec)
	if result.Error == gorm.ErrRecordNotFound {
		return false, nil
	}
	if result.Error != nil {
		return false, fmt.Errorf("failed to get record %q: %w", key, result.Error)
	}
	if err := json.Unmarshal(rec.Value, value); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}
	return true, nil
}

// Set implements state.Store
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}

	// Update or create the record
	result := s.db.Where("record_key = ?", key).
		Assign(Record{Value: raw}).
		FirstOrCreate(&Record{
			Key:   key,
			Value: raw,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set record %q: %w", key, result.Error)
	}
	return nil
}

// Has implements state.Store
func (s *Store) Has(key string) (bool, error) {
	var count int64
	result := s.db.Model(&Record{}).Where("record_key = ?", key).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check record %q: %w", key, result.Error)
	}
	return count > 0, nil
}

// Delete implements state.Store
func (s *Store) Delete(key string) error {
	result := s.db.Where("record_key = ?", key).Delete(&Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete record %q: %w", key, result.Error)
	}
	return nil
}

// Transaction implements state.TxStore using a native GORM transaction
func (s *Store) Transaction(fn func(s state.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Close implements state.TxStore
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
