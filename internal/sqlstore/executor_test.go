package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"whatabook/internal/config"
	"whatabook/internal/dberr"
	"whatabook/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockExecutor(t *testing.T) (*Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewExecutor(NewProvider(db, config.DriverMySQL, time.Second)), mock
}

func TestExecutor_Read(t *testing.T) {
	ctx := context.Background()
	const stmt = "SELECT book_id, book_name FROM books b WHERE b.book_id NOT IN (SELECT book_id FROM wishlists WHERE user_id = ?)"

	t.Run("binds parameters and returns records in order", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery(regexp.QuoteMeta(stmt)).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"book_id", "book_name"}).
				AddRow(int64(2), "The Hobbit").
				AddRow(int64(3), "Dune"))

		records, err := exec.Read(ctx, store.Query{Name: "whatabook.get_books_to_add", Statement: stmt, Args: []any{int64(1)}})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"book_id", "book_name"}, records[0].Fields)
		assert.Equal(t, "Dune", records[1].Values[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery(regexp.QuoteMeta(stmt)).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"book_id", "book_name"}))

		records, err := exec.Read(ctx, store.Query{Name: "q", Statement: stmt, Args: []any{int64(9)}})
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("malformed query is a query error", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery("SELEC").WillReturnError(&mysql.MySQLError{Number: 1064, Message: "You have an error in your SQL syntax"})

		_, err := exec.Read(ctx, store.Query{Name: "q", Statement: "SELEC * FROM books"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, dberr.ErrQuery))

		var myErr *mysql.MySQLError
		assert.True(t, errors.As(err, &myErr))
	})

	t.Run("empty statement", func(t *testing.T) {
		exec, _ := newMockExecutor(t)
		_, err := exec.Read(ctx, store.Query{Name: "q"})
		assert.ErrorIs(t, err, dberr.ErrQuery)
	})
}

func TestExecutor_Write(t *testing.T) {
	ctx := context.Background()
	const stmt = "INSERT INTO wishlists (user_id, book_id) VALUES (?, ?)"

	t.Run("commits and reports the generated id", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(stmt)).
			WithArgs(int64(1), int64(4)).
			WillReturnResult(sqlmock.NewResult(12, 1))
		mock.ExpectCommit()

		res, err := exec.Write(ctx, store.Query{Name: "whatabook.add_book_to_wishlist", Statement: stmt, Args: []any{int64(1), int64(4)}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Affected)
		assert.Equal(t, int64(12), res.InsertedID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on constraint violation", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(stmt)).
			WithArgs(int64(1), int64(999)).
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})
		mock.ExpectRollback()

		_, err := exec.Write(ctx, store.Query{Name: "q", Statement: stmt, Args: []any{int64(1), int64(999)}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, dberr.ErrQuery))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update reports no inserted id", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE players").
			WithArgs(int64(2), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := exec.Write(ctx, store.Query{Name: "q", Statement: "UPDATE players SET team_id = ? WHERE player_id = ?", Args: []any{int64(2), int64(7)}})
		require.NoError(t, err)
		assert.Nil(t, res.InsertedID)
		assert.Equal(t, int64(1), res.Affected)
	})
}

func TestRebind(t *testing.T) {
	const q = "SELECT '?' FROM players WHERE team_id = ? AND first_name = ?"
	assert.Equal(t, q, Rebind(config.DriverMySQL, q))
	assert.Equal(t, q, Rebind(config.DriverSQLite, q))
	assert.Equal(t, "SELECT '?' FROM players WHERE team_id = $1 AND first_name = $2", Rebind(config.DriverPostgres, q))
}
