package postgres

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres for postgres:// URLs and key=value DSNs, and to
// sqlite for everything else (a file path or file: URI).
func Open(dsn string) (*gorm.DB, error) {
	dialector := dialectorFor(dsn)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", dialector.Name(), err)
	}
	if dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db: sqlite handle: %w", err)
		}
		// sqlite serializes writers anyway; one connection also keeps
		// :memory: databases from splitting per connection.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates the recipe and review tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&RecipeModel{}, &ReviewModel{}); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}

func dialectorFor(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn)
	default:
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	}
}
