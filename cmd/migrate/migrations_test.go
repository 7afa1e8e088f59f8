package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"whatabook/db"
	"whatabook/internal/config"
	"whatabook/internal/sqlstore"
	"whatabook/internal/testutil"

	"github.com/pressly/goose/v3"
)

func TestCollectMigrations_ParsesEveryDialect(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))

	goose.SetBaseFS(nil)
	for _, driver := range []config.Driver{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		dir := filepath.Join(repoRoot, "db", "migrations", string(driver))
		if _, err := goose.CollectMigrations(dir, 0, goose.MaxVersion); err != nil {
			t.Fatalf("expected %s migrations to parse, got error: %v", driver, err)
		}
	}
}

func TestRun_UpDownSQLite(t *testing.T) {
	settings := testutil.SQLiteSettings(t)
	provider, err := sqlstore.Open(settings)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer provider.Close()

	goose.SetLogger(goose.NopLogger())
	dir, err := db.Prepare(config.DriverSQLite)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	if err := run("up", provider, dir); err != nil {
		t.Fatalf("up: %v", err)
	}
	var teams int
	if err := provider.DB().QueryRow("SELECT COUNT(*) FROM teams").Scan(&teams); err != nil || teams != 2 {
		t.Fatalf("expected 2 seeded teams, got %d (%v)", teams, err)
	}

	if err := run("down", provider, dir); err != nil {
		t.Fatalf("down: %v", err)
	}
	if err := provider.DB().QueryRow("SELECT COUNT(*) FROM teams").Scan(&teams); err != nil || teams != 0 {
		t.Fatalf("expected the seed to be rolled back, got %d (%v)", teams, err)
	}

	if err := run("sideways", provider, dir); err == nil {
		t.Fatal("expected an unknown command to fail")
	}
}
