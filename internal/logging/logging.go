package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultLogFilePath = "whatabook.log"
	DefaultMaxSizeMB   = 10
	DefaultMaxBackups  = 3
	DefaultMaxAgeDays  = 14
)

// Options controls where diagnostics go. Report text never goes through the logger.
type Options struct {
	Level   string
	File    string
	Verbose bool
}

// OptionsFromEnv reads LOG_LEVEL and LOG_FILE.
func OptionsFromEnv() Options {
	return Options{
		Level: os.Getenv("LOG_LEVEL"),
		File:  os.Getenv("LOG_FILE"),
	}
}

// Apply sets the global level and output writers (rotating file, plus stderr when verbose).
// It returns the file writer so the caller can close it on shutdown.
func Apply(opts Options) io.Closer {
	zerolog.SetGlobalLevel(parseLevel(opts.Level))

	path := opts.File
	if path == "" {
		path = DefaultLogFilePath
	}

	var writers []io.Writer
	if opts.Verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	var fileWriter *lumberjack.Logger
	if err := ensureLogDir(path); err == nil {
		fileWriter = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAgeDays,
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		log.Logger = zerolog.Nop()
		return io.NopCloser(nil)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if fileWriter == nil {
		return io.NopCloser(nil)
	}
	return fileWriter
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
