// Package log provides leveled, colored diagnostics for commitheat.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type ctxKey struct{}

// Logger writes diagnostics to a stream kept apart from rendered output.
type Logger struct {
	out     io.Writer
	verbose bool

	info  *color.Color
	warn  *color.Color
	err   *color.Color
	debug *color.Color
}

// New creates a new logger writing to out.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
		info:    color.New(color.FgBlue),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		debug:   color.New(color.Faint),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, false)
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Discard()
}

// Infof writes an informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.write(l.info, format, args...)
}

// Warnf writes a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(l.warn, "warning: "+format, args...)
}

// Errorf writes an error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(l.err, "error: "+format, args...)
}

// Debugf writes a message only when verbose mode is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l.verbose {
		l.write(l.debug, format, args...)
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) write(c *color.Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	c.Fprint(l.out, msg)
}
