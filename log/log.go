// Package log provides a small structured-logging wrapper around zerolog,
// shared by the verification engine and the CLI.
package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	Init(LevelInfo, "stderr")
}

// Init (re)configures the package-level logger. output is "stdout", "stderr",
// or a file path opened in append mode.
func Init(level, output string) {
	var out *os.File
	switch output {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			panic(fmt.Sprintf("cannot open log output %q: %v", output, err))
		}
		out = f
	}

	l := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger()

	switch level {
	case LevelDebug:
		l = l.Level(zerolog.DebugLevel)
	case LevelInfo, "":
		l = l.Level(zerolog.InfoLevel)
	case LevelWarn:
		l = l.Level(zerolog.WarnLevel)
	case LevelError:
		l = l.Level(zerolog.ErrorLevel)
	default:
		panic(fmt.Sprintf("invalid log level: %q", level))
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debugw logs msg at debug level with alternating key/value pairs.
func Debugw(msg string, kv ...any) { get().Debug().Fields(kv).Msg(msg) }

// Infow logs msg at info level with alternating key/value pairs.
func Infow(msg string, kv ...any) { get().Info().Fields(kv).Msg(msg) }

// Warnw logs msg at warn level with alternating key/value pairs.
func Warnw(msg string, kv ...any) { get().Warn().Fields(kv).Msg(msg) }

// Errorw logs err alongside msg at error level with alternating key/value pairs.
func Errorw(err error, msg string, kv ...any) { get().Error().Err(err).Fields(kv).Msg(msg) }

// Fatalf logs at error level and terminates the process. Used only by the
// CLI entry point, never by library code.
func Fatalf(format string, args ...any) {
	get().Error().Msgf(format, args...)
	os.Exit(1)
}
