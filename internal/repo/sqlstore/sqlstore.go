package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/14kear/movie-voting/internal/config"
	"github.com/14kear/movie-voting/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Storage struct {
	db     *sql.DB
	driver string
	dsn    string
}

func New(cfg config.StorageConfig) (*Storage, error) {
	const op = "storage.sqlstore.New"

	db, err := sql.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite allows one writer at a time
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Storage{db: db, driver: cfg.Driver, dsn: cfg.URL}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.sqlstore.Ping"

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Migrator returns a migrate instance for the embedded schema of the storage driver.
// It runs on its own connection, so the caller must Close it.
func (s *Storage) Migrator() (*migrate.Migrate, error) {
	const op = "storage.sqlstore.Migrator"

	src, err := iofs.New(migrations.FS, s.driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var driver database.Driver
	switch s.driver {
	case config.DriverSQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		driver, err = migratepg.WithInstance(db, &migratepg.Config{})
	}
	if err != nil {
		db.Close()
		src.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, s.driver, driver)
	if err != nil {
		driver.Close()
		src.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// Migrate applies every pending up migration.
func (s *Storage) Migrate() error {
	const op = "storage.sqlstore.Migrate"

	m, err := s.Migrator()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// snapshotTxOptions makes the tally read and the vote count observe the same state.
func (s *Storage) snapshotTxOptions() *sql.TxOptions {
	if s.driver == config.DriverSQLite {
		return nil
	}
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}
