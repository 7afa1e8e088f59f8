package main

import (
	"os"
	"path/filepath"
	"strings"

	"whatabook/internal/config"

	"github.com/rs/zerolog/log"
)

// migrationsDir is where 'create' writes new files for driver.
func migrationsDir(driver config.Driver) string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("db", "migrations", string(driver))
}

// gooseLogger routes goose progress through zerolog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	log.Info().Msgf(strings.TrimSpace(format), v...)
}

func (gooseLogger) Fatalf(format string, v ...any) {
	log.Fatal().Msgf(strings.TrimSpace(format), v...)
}
