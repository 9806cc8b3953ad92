package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/config"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(nil),
		TranslateError: true,
	}
}

// Open connects to the store selected by conf.Driver.
func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	switch conf.Driver {
	case config.DriverPostgres:
		return OpenPostgres(conf.Postgres)
	case config.DriverSQLite:
		return OpenSQLite(conf.SQLite.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// OpenSQLite opens the local database file at path with foreign keys on. The
// pool is capped at one connection so all writes go through a single writer.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
}

// OpenSQLiteInMemory opens a private in-memory database identified by name.
func OpenSQLiteInMemory(name string) (*gorm.DB, error) {
	return openSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name))
}

func openSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DB, conf.SSLMode,
	)

	return OpenPostgresWithURL(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return db, nil
}
