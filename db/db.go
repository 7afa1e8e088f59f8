// Package db embeds the schema migrations for every supported relational driver.
package db

import (
	"database/sql"
	"embed"
	"fmt"

	"whatabook/internal/config"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var Migrations embed.FS

// Dir returns the embedded migration directory for driver.
func Dir(driver config.Driver) string {
	return "migrations/" + string(driver)
}

// Dialect maps a driver onto the goose dialect name.
func Dialect(driver config.Driver) (string, error) {
	switch driver {
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Prepare points goose at the embedded migrations for driver.
func Prepare(driver config.Driver) (string, error) {
	dialect, err := Dialect(driver)
	if err != nil {
		return "", err
	}
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return "", err
	}
	return Dir(driver), nil
}

// Up applies every pending migration.
func Up(sqlDB *sql.DB, driver config.Driver) error {
	dir, err := Prepare(driver)
	if err != nil {
		return err
	}
	return goose.Up(sqlDB, dir)
}
