// Package sqlstore is the relational Connection Provider and Query Executor.
//
// A Provider is opened once by the entry point and closed at shutdown. Every operation
// acquires its own connection through With and releases it before returning; the
// underlying *sql.DB keeps no idle connections, so nothing is reused between operations.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"whatabook/internal/config"
	"whatabook/internal/dberr"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

type Provider struct {
	db      *sql.DB
	driver  config.Driver
	timeout time.Duration
	source  string
}

// Open validates the settings and prepares a Provider. It does not dial the store,
// so configuration problems surface before any network traffic.
func Open(s config.Settings) (*Provider, error) {
	const op = "sqlstore.Open"

	if err := s.ValidateRelational(); err != nil {
		return nil, err
	}

	var (
		db     *sql.DB
		source string
		err    error
	)
	switch s.Connection.Driver {
	case config.DriverMySQL:
		cfg := mysqlConfig(s)
		source = cfg.FormatDSN()
		db, err = sql.Open("mysql", source)
	case config.DriverPostgres:
		source = postgresURL(s)
		var cfg *pgx.ConnConfig
		cfg, err = pgx.ParseConfig(source)
		if err == nil {
			db = stdlib.OpenDB(*cfg)
		}
	case config.DriverSQLite:
		source = s.Connection.Database
		db, err = sql.Open("sqlite", source+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	}
	if err != nil {
		return nil, dberr.Configuration(op, "%s data source: %v", s.Connection.Driver, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	p := NewProvider(db, s.Connection.Driver, s.Connection.Timeout)
	p.source = config.RedactDSN(source)
	log.Debug().Str("driver", string(p.driver)).Str("source", p.source).Msg("sqlstore: provider opened")
	return p, nil
}

// NewProvider wraps an already opened database handle.
func NewProvider(db *sql.DB, driver config.Driver, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Provider{db: db, driver: driver, timeout: timeout}
}

func mysqlConfig(s config.Settings) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = s.Secrets.User
	cfg.Passwd = s.Secrets.Password
	cfg.Net = "tcp"
	cfg.Addr = s.Connection.Host
	cfg.DBName = s.Connection.Database
	cfg.Timeout = s.Connection.Timeout
	// report matched rather than changed rows, like the other drivers
	cfg.ClientFoundRows = true
	cfg.ParseTime = true
	if s.Connection.RaiseOnWarnings {
		// strict mode turns truncation and conversion warnings into errors
		cfg.Params = map[string]string{"sql_mode": "'STRICT_ALL_TABLES'"}
	}
	return cfg
}

func postgresURL(s config.Settings) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.Secrets.User, s.Secrets.Password),
		Host:   s.Connection.Host,
		Path:   "/" + s.Connection.Database,
	}
	q := u.Query()
	q.Set("connect_timeout", fmt.Sprint(int(s.Connection.Timeout.Seconds())))
	u.RawQuery = q.Encode()
	return u.String()
}

// Driver reports which relational backend the provider talks to.
func (p *Provider) Driver() config.Driver {
	return p.driver
}

// DB exposes the handle for schema migrations.
func (p *Provider) DB() *sql.DB {
	return p.db
}

// With acquires a connection, runs fn and releases the connection exactly once,
// whether fn succeeds, fails or panics.
func (p *Provider) With(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.db.Conn(ctx)
	if err != nil {
		err = classify("sqlstore.Acquire", err, dberr.ErrConnectivity)
		log.Warn().Err(err).Str("driver", string(p.driver)).Msg("sqlstore: acquire failed")
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = dberr.Connectivity("sqlstore.Release", cerr)
		}
	}()

	return fn(ctx, conn)
}

// Ping checks that the store is reachable with the configured credentials.
func (p *Provider) Ping(ctx context.Context) error {
	return p.With(ctx, func(ctx context.Context, conn *sql.Conn) error {
		if err := conn.PingContext(ctx); err != nil {
			return classify("sqlstore.Ping", err, dberr.ErrConnectivity)
		}
		return nil
	})
}

func (p *Provider) Close() error {
	log.Debug().Str("driver", string(p.driver)).Msg("sqlstore: provider closed")
	return p.db.Close()
}
