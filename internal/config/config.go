// Package config loads the connection settings shared by every command.
//
// Settings come from a YAML file, then from the environment, which always wins.
// The store credentials are only ever read from the environment (or a .env file).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"whatabook/internal/dberr"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Driver names a relational backend.
type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DefaultTimeout bounds a single store operation.
const DefaultTimeout = 5 * time.Second

// Connection is the flat relational connection section.
type Connection struct {
	Driver          Driver        `yaml:"driver" env:"STORE_DRIVER"`
	Host            string        `yaml:"host" env:"STORE_HOST"`
	Database        string        `yaml:"database" env:"STORE_DATABASE"`
	RaiseOnWarnings bool          `yaml:"raise_on_warnings" env:"STORE_RAISE_ON_WARNINGS"`
	Timeout         time.Duration `yaml:"timeout" env:"STORE_TIMEOUT"`
}

// Document is the MongoDB connection section.
type Document struct {
	URL      string `yaml:"url" env:"MONGO_URL"`
	Database string `yaml:"database" env:"MONGO_DATABASE"`
}

// Secrets are supplied out-of-band and never read from the settings file.
type Secrets struct {
	User     string `env:"STORE_USER"`
	Password string `env:"STORE_PASSWORD"`
}

type Settings struct {
	Connection Connection                   `yaml:"connection"`
	Document   Document                     `yaml:"document"`
	Queries    map[string]map[string]string `yaml:"queries"`
	Secrets    Secrets                      `yaml:"-"`
}

// LoadEnvFiles reads .env and .env.local if present.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Path returns the settings file to read: WHATABOOK_CONFIG or config.yaml.
func Path() string {
	if v := os.Getenv("WHATABOOK_CONFIG"); v != "" {
		return v
	}
	return "config.yaml"
}

// Load reads the settings file at path (skipped when path is empty) and applies the environment.
// Unknown keys in the file are rejected.
func Load(path string) (Settings, error) {
	LoadEnvFiles()

	s := Settings{
		Connection: Connection{Driver: DriverMySQL, Timeout: DefaultTimeout},
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Settings{}, dberr.Configuration("config.Load", "settings file %s does not exist", path)
			}
			return Settings{}, dberr.New(dberr.ErrConfiguration, "config.Load", err)
		}
		if err := decode(b, &s); err != nil {
			return Settings{}, dberr.Configuration("config.Load", "parse %s: %v", path, err)
		}
	}

	if err := ParseEnv(&s); err != nil {
		return Settings{}, dberr.New(dberr.ErrConfiguration, "config.Load", err)
	}

	s.Connection.Driver = Driver(strings.ToLower(string(s.Connection.Driver)))
	if s.Connection.Timeout <= 0 {
		s.Connection.Timeout = DefaultTimeout
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func decode(b []byte, s *Settings) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ValidateRelational fails with ErrConfiguration naming every missing relational setting.
func (s Settings) ValidateRelational() error {
	var missing []string

	switch s.Connection.Driver {
	case DriverMySQL, DriverPostgres:
		if s.Connection.Host == "" {
			missing = append(missing, "connection.host")
		}
		if s.Secrets.User == "" {
			missing = append(missing, "STORE_USER")
		}
		if s.Secrets.Password == "" {
			missing = append(missing, "STORE_PASSWORD")
		}
	case DriverSQLite:
	default:
		return dberr.Configuration("config.ValidateRelational", "unsupported driver %q", s.Connection.Driver)
	}
	if s.Connection.Database == "" {
		missing = append(missing, "connection.database")
	}

	if len(missing) > 0 {
		return dberr.Configuration("config.ValidateRelational", "missing settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateDocument fails with ErrConfiguration naming every missing document-store setting.
func (s Settings) ValidateDocument() error {
	var missing []string
	if s.Document.URL == "" {
		missing = append(missing, "document.url")
	}
	if s.Document.Database == "" {
		missing = append(missing, "document.database")
	}
	if s.Secrets.User == "" {
		missing = append(missing, "STORE_USER")
	}
	if s.Secrets.Password == "" {
		missing = append(missing, "STORE_PASSWORD")
	}
	if len(missing) > 0 {
		return dberr.Configuration("config.ValidateDocument", "missing settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// RedactDSN hides the credentials of a URL-style connection string.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		start = 0
	} else {
		start += len(marker)
	}
	end := strings.LastIndex(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
