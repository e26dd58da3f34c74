// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used throughout the bot.
//
// The Logger type embeds zerolog.Logger so the full zerolog API is available
// directly. Application code passes *Logger by pointer and obtains
// event-scoped loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// upstream API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout for the given role
// label (e.g. "bot", "migrator"). Every entry carries the role, a timestamp
// and a "func" caller field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with extra context fields without
// touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped logger attached to the request's
// context by the trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. If none was attached,
// zerolog falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
