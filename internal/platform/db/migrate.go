package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// dialectMap: driver database/sql -> dialecto goose
var dialectMap = map[string]string{
	DriverSQLite: "sqlite3",
	DriverPgx:    "postgres",
}

// migrationsDirs: cada dialecto tiene su propio set de SQL (tipos distintos)
var migrationsDirs = map[string]string{
	DriverSQLite: "migrations/sqlite",
	DriverPgx:    "migrations/postgres",
}

func setupGoose(driver string) error {
	dialect, ok := dialectMap[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	dir, err := fs.Sub(migrationsFS, migrationsDirs[driver])
	if err != nil {
		return fmt.Errorf("migrations directory: %w", err)
	}
	goose.SetBaseFS(dir)
	goose.SetLogger(goose.NopLogger())
	return nil
}

func Migrate(db *sql.DB, driver string) error {
	if err := setupGoose(driver); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	v, _ := goose.GetDBVersion(db)
	slog.Info("migrations applied", "driver", driver, "version", v)
	return nil
}

func MigrateDown(db *sql.DB, driver string) error {
	if err := setupGoose(driver); err != nil {
		return err
	}
	if err := goose.Down(db, "."); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}

	slog.Info("rolled back one migration", "driver", driver)
	return nil
}
