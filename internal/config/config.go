package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Logging  *LoggingConfig  `mapstructure:"logging"`
	Database *DatabaseConfig `mapstructure:"database"`
	Payment  *PaymentConfig  `mapstructure:"payment"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	Driver   string          `mapstructure:"driver"`
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type PaymentConfig struct {
	FlatFeeCents int64 `mapstructure:"flat_fee_cents"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.token_ttl", 24*time.Hour)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("logging.level", "info")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.sqlite.path", "vaccination_system.db")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", "5432")
	v.SetDefault("database.postgres.user", "")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.db", "")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("payment.flat_fee_cents", 5000)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the YAML file at path. Environment variables such as
// API_JWT_SIGNING_KEY or DATABASE_DRIVER override file values. A missing file
// is not an error; defaults and the environment are used instead.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		if !isMissingFile(err) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	return decode(v)
}

// Watch reloads path on every change and hands the new config to onChange.
func Watch(path string, onChange func(*AppConfig)) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("config file not watched", zap.String("path", path), zap.Error(err))
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		conf, err := decode(v)
		if err != nil {
			zap.L().Error("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
		onChange(conf)
	})
	v.WatchConfig()
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *AppConfig) validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.API.JWTSigningKey == "" {
		return fmt.Errorf("api.jwt_signing_key is required")
	}

	if c.Payment.FlatFeeCents <= 0 {
		return fmt.Errorf("payment.flat_fee_cents must be positive")
	}

	return nil
}
