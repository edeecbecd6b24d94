package suites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/joefazee/holidays/app/database"

	// drivers for golang-migrate and database/sql
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Drivers a RepositoryTestSuite can run against.
const (
	SQLite   = database.DriverSQLite
	Postgres = database.DriverPostgres
)

// RepositoryTestSuite gives repository tests a migrated database.
// SQLite runs in memory; Postgres runs in a container and is skipped with -short.
type RepositoryTestSuite struct {
	suite.Suite
	Driver         string
	Container      *PostgresContainer
	DB             *gorm.DB
	SQLDB          *sql.DB
	MigrationsPath string

	// Tables are emptied before each test, in order.
	Tables []string
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.T().Helper()

	if suite.Driver == "" {
		suite.Driver = SQLite
	}
	if len(suite.Tables) == 0 {
		suite.Tables = []string{"events", "users"}
	}

	switch suite.Driver {
	case Postgres:
		if testing.Short() {
			suite.T().Skip("Skipping postgres integration tests in short mode")
		}
		suite.setupPostgres()
	default:
		suite.setupSQLite()
	}

	suite.T().Cleanup(suite.cleanup)
}

func (suite *RepositoryTestSuite) setupSQLite() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", suite.T().Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		suite.T().Fatalf("Failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		suite.T().Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		suite.T().Fatalf("Failed to migrate sqlite: %v", err)
	}

	suite.DB = db
	suite.SQLDB = sqlDB
}

func (suite *RepositoryTestSuite) setupPostgres() {
	container, err := NewPostgresContainer(context.Background())
	if err != nil {
		suite.T().Fatalf("Failed to create postgres container: %v", err)
	}
	suite.Container = container

	sqlDB, err := sql.Open("postgres", container.ConnectionString)
	if err != nil {
		suite.T().Fatalf("Failed to open sql connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		suite.T().Fatalf("Failed to ping database: %v", err)
	}
	suite.SQLDB = sqlDB

	if err := suite.RunMigrations(); err != nil {
		suite.T().Fatalf("Failed to run migrations: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		suite.T().Fatalf("Failed to open gorm connection: %v", err)
	}
	suite.DB = gormDB
}

// RunMigrations applies the SQL migrations to the postgres container.
func (suite *RepositoryTestSuite) RunMigrations() error {
	if suite.MigrationsPath == "" {
		suite.MigrationsPath = findMigrationsPath()
	}
	if suite.MigrationsPath == "" {
		return errors.New("migrations path not found")
	}

	m, err := migrate.New("file://"+suite.MigrationsPath, suite.Container.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func findMigrationsPath() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}

func (suite *RepositoryTestSuite) BeforeTest(_, _ string) {
	if suite.DB == nil {
		return
	}
	for _, table := range suite.Tables {
		suite.DB.Exec(fmt.Sprintf(`DELETE FROM %q`, table))
	}
}

func (suite *RepositoryTestSuite) cleanup() {
	if suite.SQLDB != nil {
		_ = suite.SQLDB.Close()
	}
	if suite.Container != nil {
		_ = suite.Container.Terminate(context.Background())
	}
}

func (suite *RepositoryTestSuite) CountRecords(table string) int64 {
	var c int64
	suite.DB.Table(table).Count(&c)
	return c
}

func (suite *RepositoryTestSuite) AssertNoDBError(err error, args ...interface{}) {
	suite.Assert().NoError(err, args...)
}
