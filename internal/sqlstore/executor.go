package sqlstore

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"whatabook/internal/config"
	"whatabook/internal/dberr"
	"whatabook/internal/store"

	"github.com/rs/zerolog/log"
)

// Executor runs catalog queries through a Provider.
type Executor struct {
	p *Provider
}

func NewExecutor(p *Provider) *Executor {
	return &Executor{p: p}
}

var _ store.Executor = (*Executor)(nil)

func (e *Executor) Read(ctx context.Context, q store.Query) ([]store.Record, error) {
	if q.Statement == "" {
		return nil, dberr.Query(q.Name, errEmptyStatement)
	}

	start := time.Now()
	records := []store.Record{}
	err := e.p.With(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, Rebind(e.p.driver, q.Statement), q.Args...)
		if err != nil {
			return classify(q.Name, err, dberr.ErrQuery)
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return classify(q.Name, err, dberr.ErrQuery)
		}

		for rows.Next() {
			values := make([]any, len(cols))
			dest := make([]any, len(cols))
			for i := range values {
				dest[i] = &values[i]
			}
			if err := rows.Scan(dest...); err != nil {
				return classify(q.Name, err, dberr.ErrQuery)
			}
			records = append(records, store.Record{Fields: cols, Values: values})
		}
		return classify(q.Name, rows.Err(), dberr.ErrQuery)
	})
	if err != nil {
		log.Warn().Err(err).Str("query", q.Name).Msg("sqlstore: read failed")
		return nil, err
	}

	log.Debug().Str("query", q.Name).Int("rows", len(records)).Dur("took", time.Since(start)).Msg("sqlstore: read")
	return records, nil
}

// Write runs one statement inside its own transaction, so either its whole effect
// is committed or none of it is.
func (e *Executor) Write(ctx context.Context, q store.Query) (store.Result, error) {
	if q.Statement == "" {
		return store.Result{}, dberr.Query(q.Name, errEmptyStatement)
	}

	start := time.Now()
	var result store.Result
	err := e.p.With(ctx, func(ctx context.Context, conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return classify(q.Name, err, dberr.ErrQuery)
		}
		defer func() { _ = tx.Rollback() }()

		res, err := tx.ExecContext(ctx, Rebind(e.p.driver, q.Statement), q.Args...)
		if err != nil {
			return classify(q.Name, err, dberr.ErrQuery)
		}
		if n, err := res.RowsAffected(); err == nil {
			result.Affected = n
		}
		if id, err := res.LastInsertId(); err == nil && id != 0 {
			result.InsertedID = id
		}
		return classify(q.Name, tx.Commit(), dberr.ErrQuery)
	})
	if err != nil {
		log.Warn().Err(err).Str("query", q.Name).Msg("sqlstore: write failed")
		return store.Result{}, err
	}

	log.Debug().Str("query", q.Name).Int64("affected", result.Affected).Dur("took", time.Since(start)).Msg("sqlstore: write")
	return result, nil
}

// Rebind rewrites ? placeholders into the driver's native form.
func Rebind(driver config.Driver, query string) string {
	if driver != config.DriverPostgres {
		return query
	}

	var (
		b     strings.Builder
		n     int
		quote rune
	)
	b.Grow(len(query) + 8)
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '?':
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
