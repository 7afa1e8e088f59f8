package sqlstore

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"whatabook/internal/dberr"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// MySQL server error numbers.
const (
	erDBAccessDenied     = 1044
	erAccessDenied       = 1045
	erBadDB              = 1049
	erAccessDeniedNoPass = 1698
)

// classify maps a driver error onto the taxonomy. Errors that match no known
// shape get the fallback kind.
func classify(op string, err error, fallback error) error {
	if err == nil {
		return nil
	}

	var de *dberr.Error
	if errors.As(err, &de) {
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erAccessDenied, erDBAccessDenied, erAccessDeniedNoPass:
			return dberr.Connectivity(op, err)
		case erBadDB:
			return dberr.New(dberr.ErrConfiguration, op, err)
		default:
			return dberr.Query(op, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.InvalidPassword, pgErr.Code == pgerrcode.InvalidAuthorizationSpecification:
			return dberr.Connectivity(op, err)
		case pgErr.Code == pgerrcode.InvalidCatalogName:
			return dberr.New(dberr.ErrConfiguration, op, err)
		case pgerrcode.IsConnectionException(pgErr.Code):
			return dberr.Connectivity(op, err)
		default:
			return dberr.Query(op, err)
		}
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, mysql.ErrInvalidConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &connectErr),
		errors.As(err, &netErr):
		return dberr.Connectivity(op, err)
	}

	return dberr.New(fallback, op, err)
}

// Describe renders a one-line explanation of err for a terminal user.
func Describe(err error) string {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erAccessDenied, erDBAccessDenied, erAccessDeniedNoPass:
			return "The supplied username or password are invalid"
		case erBadDB:
			return "The specified database does not exist"
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidPassword, pgerrcode.InvalidAuthorizationSpecification:
			return "The supplied username or password are invalid"
		case pgerrcode.InvalidCatalogName:
			return "The specified database does not exist"
		}
	}
	return err.Error()
}

var errEmptyStatement = errors.New("empty statement")
