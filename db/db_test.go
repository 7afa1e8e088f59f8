package db

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"whatabook/internal/config"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrations_HaveGooseDirectives(t *testing.T) {
	for _, driver := range []config.Driver{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		entries, err := fs.ReadDir(Migrations, Dir(driver))
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		for _, e := range entries {
			b, err := fs.ReadFile(Migrations, Dir(driver)+"/"+e.Name())
			require.NoError(t, err)
			assert.Contains(t, string(b), "-- +goose Up", "%s/%s", driver, e.Name())
			assert.Contains(t, string(b), "-- +goose Down", "%s/%s", driver, e.Name())
		}
	}
}

func TestMigrations_SameVersionsForEveryDriver(t *testing.T) {
	names := func(driver config.Driver) []string {
		entries, err := fs.ReadDir(Migrations, Dir(driver))
		require.NoError(t, err)
		var out []string
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}
	assert.Equal(t, names(config.DriverSQLite), names(config.DriverMySQL))
	assert.Equal(t, names(config.DriverSQLite), names(config.DriverPostgres))
}

func TestDialect(t *testing.T) {
	d, err := Dialect(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", d)

	_, err = Dialect("oracle")
	assert.Error(t, err)
}

func TestUp_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")
	raw, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer raw.Close()

	goose.SetLogger(goose.NopLogger())
	require.NoError(t, Up(raw, config.DriverSQLite))

	counts := map[string]int{"users": 3, "books": 9, "stores": 1, "wishlists": 3, "teams": 2, "players": 6}
	for table, want := range counts {
		var got int
		require.NoError(t, raw.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&got))
		assert.Equal(t, want, got, table)
	}

	var n int
	require.NoError(t, raw.QueryRow("SELECT COUNT(*) FROM wishlists WHERE user_id = 1 AND book_id = 1").Scan(&n))
	assert.Zero(t, n)

	_, err = raw.Exec("INSERT INTO wishlists (user_id, book_id) VALUES (1, 4)")
	require.Error(t, err)
	assert.True(t, strings.Contains(strings.ToLower(err.Error()), "unique"))
}
