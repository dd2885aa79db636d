// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers used across go-data-pengguna.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API is
// available directly. Request-scoped loggers are obtained via FromContext
// or FromRequest.
package logger

import (
	"context"
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

// NewLogger constructs a JSON logger writing to stdout for the given role
// label (e.g. "pengguna-server"). The caller field records the
// fully-qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewClientLogger constructs a logger for the TUI client. The terminal is
// owned by bubbletea, so output goes to a "logs" file next to the
// executable, falling back to stdout if the file cannot be opened.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	var out *os.File
	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "logs")
		out, err = os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	if err != nil || out == nil {
		out = os.Stdout
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest extracts the request-scoped logger attached by the trace-id
// middleware, falling back to zerolog's global logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx by zerolog's WithContext.
// If none is attached, zerolog returns its global logger, so the result is
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
