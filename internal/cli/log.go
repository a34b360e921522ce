// Package cli implements the tableau command-line interface.
//
// The commands read table descriptions, render them with pkg/table, and
// convert descriptions between formats. The CLI is built using cobra and
// logs through charmbracelet/log.
//
// # Commands
//
//   - render: Draw a table description as text
//   - convert: Re-encode a description as JSON, TOML or YAML
//   - styles: Show every border style
//   - demo: Draw the built-in sample tables
//   - config: Show the config file location and effective settings
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Rendered tables go to standard output and
// log lines to standard error, so output can be piped.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with "15:04:05.00"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step and logs its duration when done.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the time elapsed since newProgress, rounded to the
// millisecond. Example output: "Rendered 12 rows (3ms)"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default()
// when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
