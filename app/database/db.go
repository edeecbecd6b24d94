package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	"github.com/joefazee/holidays/models"

	// drivers for golang-migrate and database/sql
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver     string `env:"DB_DRIVER" env-default:"postgres" validate:"oneof=postgres sqlite"`
	Host       string `env:"DB_HOST"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	User       string `env:"DB_USER"`
	Password   string `env:"DB_PASSWORD"`
	Database   string `env:"DB_NAME"`
	UseSSL     bool   `env:"DB_SSL_MODE"`
	LogQuery   bool   `env:"DB_LOG_QUERY"`
	SQLitePath string `env:"DB_SQLITE_PATH" env-default:"holidays.db"`
}

func (c *Config) Validate() error {
	if c.Driver == DriverSQLite {
		if c.SQLitePath == "" {
			return models.ErrDatabaseCredentialNotConfigured
		}
		return nil
	}
	if c.Host == "" ||
		c.Password == "" || c.Database == "" || c.User == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}
	return nil
}

// DSN returns the postgres connection string in URL form, as golang-migrate expects it.
func (c *Config) DSN() string {
	sslMode := "disable"
	if c.UseSSL {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslMode)
}

// SQLiteDSN returns SQLitePath with foreign keys switched on.
func (c *Config) SQLiteDSN() string {
	sep := "?"
	if strings.Contains(c.SQLitePath, "?") {
		sep = "&"
	}
	return c.SQLitePath + sep + "_pragma=foreign_keys(1)"
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &gorm.Config{TranslateError: true}
	if !c.LogQuery {
		cfg.Logger = gLogger.Discard
	}

	var dialector gorm.Dialector
	switch c.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(c.SQLiteDSN())
	default:
		dialector = postgres.Open(c.DSN())
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	if c.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return db, AutoMigrate(db)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// AutoMigrate creates the schema from the models. Used for sqlite, which the SQL migrations do not target.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Event{})
}

// Migrate applies (up) or reverts (down) the SQL migrations found in dir against postgres.
func Migrate(c *Config, dir string, up bool) error {
	if c.Driver == DriverSQLite {
		return errors.New("sql migrations target postgres; sqlite schemas are created on connect")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	m, err := migrate.New("file://"+dir, c.DSN())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
