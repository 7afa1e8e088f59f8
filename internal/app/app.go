// Package app holds the start-up steps shared by the commands.
package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"whatabook/internal/catalog"
	"whatabook/internal/config"
	"whatabook/internal/docstore"
	"whatabook/internal/logging"
	"whatabook/internal/pysports"
	"whatabook/internal/sqlstore"
	"whatabook/internal/whatabook"

	"github.com/rs/zerolog/log"
)

// QuerySections are the facades that accept query overrides.
var QuerySections = []string{whatabook.Section, pysports.Section}

// Env is the loaded settings plus the log output to close on exit.
type Env struct {
	Settings config.Settings
	logs     io.Closer
}

// Setup loads .env files, starts logging and reads the settings.
// An empty path falls back to WHATABOOK_CONFIG, then to config.yaml when it exists.
func Setup(path string, verbose bool) (*Env, error) {
	config.LoadEnvFiles()

	opts := logging.OptionsFromEnv()
	opts.Verbose = verbose
	logs := logging.Apply(opts)

	s, err := config.Load(settingsPath(path))
	if err == nil {
		err = catalog.CheckSections(s.Queries, QuerySections...)
	}
	if err != nil {
		log.Error().Err(err).Msg("app: settings rejected")
		_ = logs.Close()
		return nil, err
	}
	return &Env{Settings: s, logs: logs}, nil
}

func settingsPath(flag string) string {
	if flag != "" {
		return flag
	}
	p := config.Path()
	if os.Getenv("WHATABOOK_CONFIG") == "" {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			return ""
		}
	}
	return p
}

func (e *Env) Close() error {
	return e.logs.Close()
}

// OpenSQL opens the relational provider and checks that the store answers.
func (e *Env) OpenSQL(ctx context.Context) (*sqlstore.Provider, error) {
	p, err := sqlstore.Open(e.Settings)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		_ = p.Close()
		return nil, err
	}
	log.Info().Str("driver", string(p.Driver())).Str("database", e.Settings.Connection.Database).Msg("app: relational store ready")
	return p, nil
}

// OpenDocument opens the document provider and checks that the deployment answers.
func (e *Env) OpenDocument(ctx context.Context) (*docstore.Provider, error) {
	p, err := docstore.Open(ctx, e.Settings)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		_ = p.Close(ctx)
		return nil, err
	}
	log.Info().Str("database", e.Settings.Document.Database).Msg("app: document store ready")
	return p, nil
}
