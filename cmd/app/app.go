package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/config"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/db"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/logger"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	config.Watch(configPath, func(updated *config.AppConfig) {
		if err := logger.SetLevel(updated.Logging.Level); err != nil {
			zap.L().Error("failed to apply log level", zap.Error(err))
			return
		}
		zap.L().Info("log level changed", zap.Stringer("level", logger.Level()))
	})

	database, err := openDatabase(conf.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = db.Prepare(database); err != nil {
		return fmt.Errorf("failed to prepare database -> %w", err)
	}

	s := api.NewServer(conf, database)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr), zap.String("driver", conf.Database.Driver))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openDatabase prefers DATABASE_URL, which always points at Postgres.
func openDatabase(conf *config.DatabaseConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		conf.Driver = config.DriverPostgres
		return db.OpenPostgresWithURL(dbURL)
	}

	return db.Open(conf)
}
