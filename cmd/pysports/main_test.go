package main

import (
	"bytes"
	"testing"

	"whatabook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommands_SQLite(t *testing.T) {
	testutil.CommandEnv(t, testutil.SQLiteFile(t))

	out, err := execute(t, "teams")
	require.NoError(t, err)
	assert.Contains(t, out, "-- DISPLAYING TEAM RECORDS --\n  Team ID: 1\n  Team Name: Team Gandalf\n")

	out, err = execute(t, "add-player", "--first", "Smeagol", "--last", "Shire Folk", "--team", "1")
	require.NoError(t, err)
	assert.Equal(t, "Inserted player Smeagol Shire Folk with player_id 7\n", out)

	_, err = execute(t, "move-player", "--player", "7", "--team", "2")
	require.NoError(t, err)

	out, err = execute(t, "roster")
	require.NoError(t, err)
	assert.Contains(t, out, "  First Name: Smeagol\n  Last Name: Shire Folk\n  Team Name: Team Sauron\n")

	out, err = execute(t, "delete-player", "Smeagol")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 1 player(s) named Smeagol\n", out)

	out, err = execute(t, "players")
	require.NoError(t, err)
	assert.NotContains(t, out, "Smeagol")
}

func TestCommands_MissingCredentials(t *testing.T) {
	testutil.CommandEnv(t, "unused")
	t.Setenv("STORE_DRIVER", "mysql")
	t.Setenv("STORE_HOST", "localhost:3306")
	t.Setenv("STORE_USER", "")
	t.Setenv("STORE_PASSWORD", "")

	_, err := execute(t, "teams")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_PASSWORD")
}
