package statestore

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one persisted key/value pair. The value is always the JSON
// encoding of whatever the owning cell keeps under the key.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// TableName keeps the table name stable regardless of gorm's pluralization.
func (Entry) TableName() string {
	return "state_entries"
}

// Store is the durable key/value backing for state cells. One store serves
// the whole process; cells partition it by key.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open connects to the sqlite database at dsn and migrates the state table.
func Open(dsn string, logger *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return NewStore(db, logger)
}

// NewStore wraps an existing database handle and migrates the state table.
func NewStore(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state table: %w", err)
	}
	return &Store{db: db, logger: logger.Named("statestore")}, nil
}

// read returns the raw JSON stored under key. ok is false when the key has
// never been written.
func (s *Store) read(key string) (value string, ok bool) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		return "", false
	}
	return e.Value, true
}

// write upserts the raw JSON under key. Failures are logged, not returned:
// the in-memory value stays authoritative for the rest of the session and
// durability is best-effort.
func (s *Store) write(key, value string) {
	e := Entry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
	if err != nil {
		s.logger.Error("Failed to persist state entry",
			zap.String("key", key), zap.Error(err))
	}
}
