// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout vikeypass.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Secrets and master keys must never be passed to a logger; log account
// names and outcomes only.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label (e.g. "serve")
// writing JSON lines to os.Stdout.
//
// Every entry carries a "role" field, a timestamp, and a "func" caller field
// with the fully-qualified function name. level is a zerolog level name
// ("debug", "info", ...); unknown or empty values mean info.
func NewLogger(role, level string) *Logger {
	configureGlobals(level)
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but appends to the file at path so
// that interactive screens are not overwritten by log lines. The parent
// directory is created if needed. If the file cannot be opened the logger
// falls back to os.Stderr; the returned close function is always safe to
// call.
func NewClientLogger(role, level, path string) (*Logger, func() error) {
	configureGlobals(level)

	if path == "" {
		return newLogger(os.Stderr, role), func() error { return nil }
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return newLogger(os.Stderr, role), func() error { return nil }
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(os.Stderr, role), func() error { return nil }
	}

	return newLogger(logFile, role), logFile.Close
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger attached to the request's context
// and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper. If none is attached zerolog returns its default logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
