// Package testutil builds migrated stores for package tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"whatabook/db"
	"whatabook/internal/config"
	"whatabook/internal/sqlstore"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// SQLiteSettings returns settings for a fresh database file under t.TempDir().
func SQLiteSettings(t testing.TB) config.Settings {
	t.Helper()
	return config.Settings{Connection: config.Connection{
		Driver:   config.DriverSQLite,
		Database: filepath.Join(t.TempDir(), "whatabook.db"),
		Timeout:  5 * time.Second,
	}}
}

// SQLiteFile creates a SQLite file carrying every schema and seed migration and returns its path.
func SQLiteFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whatabook.db")

	raw, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, db.Up(raw, config.DriverSQLite))
	require.NoError(t, raw.Close())
	return path
}

// SQLite returns a provider over a fresh SQLiteFile.
func SQLite(t testing.TB) *sqlstore.Provider {
	t.Helper()
	settings := SQLiteSettings(t)
	settings.Connection.Database = SQLiteFile(t)

	p, err := sqlstore.Open(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// CommandEnv points the commands at path through the environment, keeping logs
// and settings lookups inside a temporary directory.
func CommandEnv(t *testing.T, path string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("WHATABOOK_CONFIG", "")
	t.Setenv("LOG_FILE", filepath.Join(dir, "test.log"))
	t.Setenv("STORE_DRIVER", string(config.DriverSQLite))
	t.Setenv("STORE_DATABASE", path)
}

// Exec runs statements directly against the provider's database, outside the executor.
func Exec(t testing.TB, p *sqlstore.Provider, statements ...string) {
	t.Helper()
	for _, s := range statements {
		_, err := p.DB().Exec(s)
		require.NoError(t, err, s)
	}
}
