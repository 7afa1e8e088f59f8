package sqlstore

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"whatabook/internal/dberr"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"mysql access denied", &mysql.MySQLError{Number: 1045}, dberr.ErrConnectivity},
		{"mysql unknown database", &mysql.MySQLError{Number: 1049}, dberr.ErrConfiguration},
		{"mysql syntax", &mysql.MySQLError{Number: 1064}, dberr.ErrQuery},
		{"mysql duplicate", fmt.Errorf("wrapped: %w", &mysql.MySQLError{Number: 1062}), dberr.ErrQuery},
		{"postgres bad password", &pgconn.PgError{Code: pgerrcode.InvalidPassword}, dberr.ErrConnectivity},
		{"postgres unknown database", &pgconn.PgError{Code: pgerrcode.InvalidCatalogName}, dberr.ErrConfiguration},
		{"postgres connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, dberr.ErrConnectivity},
		{"postgres unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, dberr.ErrQuery},
		{"bad conn", driver.ErrBadConn, dberr.ErrConnectivity},
		{"invalid conn", mysql.ErrInvalidConn, dberr.ErrConnectivity},
		{"deadline", context.DeadlineExceeded, dberr.ErrConnectivity},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, dberr.ErrConnectivity},
		{"unknown", errors.New("boom"), dberr.ErrQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err, dberr.ErrQuery)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestClassify_KeepsTaxonomyErrors(t *testing.T) {
	orig := dberr.NotFound("op", "books")
	assert.Same(t, orig, classify("other", orig, dberr.ErrQuery))
	assert.Nil(t, classify("op", nil, dberr.ErrQuery))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "The supplied username or password are invalid", Describe(dberr.Connectivity("op", &mysql.MySQLError{Number: 1045})))
	assert.Equal(t, "The specified database does not exist", Describe(&mysql.MySQLError{Number: 1049}))
	assert.Equal(t, "The specified database does not exist", Describe(&pgconn.PgError{Code: pgerrcode.InvalidCatalogName}))
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
