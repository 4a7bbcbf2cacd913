package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"versekeeper/internal/entities"
)

// Database wraps the sqlite store behind the annotation collections. Each
// collection lives in a single row of the collections table as one JSON blob;
// mutations are whole-collection read-modify-write. That keeps collections
// independent on disk: a failed write can only affect the one collection
// being mutated. Single-writer, last-write-wins.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Collection{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReadCollection returns the serialized blob stored under key, or nil if the
// collection has never been written.
func (d *Database) ReadCollection(key string) ([]byte, error) {
	var collection entities.Collection
	err := d.DB.Where("key = ?", key).First(&collection).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}
	return []byte(collection.Value), nil
}

// WriteCollection replaces the blob stored under key.
func (d *Database) WriteCollection(key string, value []byte) error {
	var collection entities.Collection
	result := d.DB.Where("key = ?", key).First(&collection)

	if result.Error == gorm.ErrRecordNotFound {
		collection = entities.Collection{
			Key:   key,
			Value: string(value),
		}
		if err := d.DB.Create(&collection).Error; err != nil {
			return fmt.Errorf("write collection %s: %w", key, err)
		}
		return nil
	} else if result.Error != nil {
		return fmt.Errorf("write collection %s: %w", key, result.Error)
	}

	collection.Value = string(value)
	if err := d.DB.Save(&collection).Error; err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

// HasCollection reports whether any blob has ever been stored under key. It
// distinguishes "never initialized" from "initialized but empty", which the
// palette seeding relies on.
func (d *Database) HasCollection(key string) (bool, error) {
	var count int64
	err := d.DB.Model(&entities.Collection{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check collection %s: %w", key, err)
	}
	return count > 0, nil
}
