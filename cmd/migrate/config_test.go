package main

import (
	"path/filepath"
	"testing"

	"whatabook/internal/config"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir(config.DriverMySQL); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	want := filepath.Join("db", "migrations", "postgres")
	if got := migrationsDir(config.DriverPostgres); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
